package scan

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msimms/gitstats/lib/classify"
	"github.com/msimms/gitstats/lib/consoles"
	"github.com/msimms/gitstats/lib/model"
	"github.com/msimms/gitstats/lib/tally"
)

func TestProcessOutputCountsOnlyAcceptedLines(t *testing.T) {
	t.Parallel()

	output := []byte("" +
		"a (Ann 2020-01-01 00:00:00 1) #include <stdio.h>\n" +
		"b (Ann 2020-01-01 00:00:00 2) \n" +
		"c (Bo 2020-01-01 00:00:00 3) /* header */\n" +
		"d (Bo 2020-01-01 00:00:00 4) int main() {\n" +
		"e (Bo 2020-01-01 00:00:00 5)   return 0;\n" +
		"no header here\n" +
		"f (Jos\xc3\xa9 2020-01-01 00:00:00 6)   exit(1);\n")

	stats := &Stats{}
	result := tally.New()
	err := ProcessOutput(output, model.NewFileContext(".c"), DefaultOptions(), result, stats, consoles.NewWriterConsole(io.Discard, false))
	require.NoError(t, err)

	assert.Equal(t, []model.AuthorCount{{Author: "Bo", Lines: 1}}, result.Report(tally.OrderFirstSeen))
	assert.Equal(t, 8, stats.LinesRead)
	assert.Equal(t, 5, stats.LinesParsed)
	assert.Equal(t, 4, stats.LinesFiltered)
	assert.Equal(t, 1, stats.LinesCounted)
}

func TestProcessOutputNoFilters(t *testing.T) {
	t.Parallel()

	output := []byte("" +
		"a (Ann 2020-01-01 00:00:00 1) // x\n" +
		"b (Ann 2020-01-01 00:00:00 2)  \n")

	opts := DefaultOptions()
	opts.Filters = classify.Filters{}

	result := tally.New()
	err := ProcessOutput(output, model.NewFileContext(".c"), opts, result, &Stats{}, consoles.NewWriterConsole(io.Discard, false))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Get("Ann"))
}

func TestProcessOutputEndExclusive(t *testing.T) {
	t.Parallel()

	output := []byte("" +
		"a (Ann 2020-12-31 23:59:59 1) x = 1\n" +
		"b (Bo 2021-01-01 00:00:00 2) y = 2\n")

	opts := DefaultOptions()
	var err error
	opts.Window, err = model.ParseTimeWindow("2020-01-01", "2021-01-01")
	require.NoError(t, err)

	stats := &Stats{}
	result := tally.New()
	err = ProcessOutput(output, model.NewFileContext(".py"), opts, result, stats, consoles.NewWriterConsole(io.Discard, false))
	require.NoError(t, err)

	assert.Equal(t, []model.AuthorCount{{Author: "Ann", Lines: 1}}, result.Report(tally.OrderFirstSeen))
	assert.Equal(t, 1, stats.LinesOutOfWindow)
}
