package scan

import (
	"github.com/pkg/errors"

	"github.com/msimms/gitstats/lib/annotate"
	"github.com/msimms/gitstats/lib/blame"
	"github.com/msimms/gitstats/lib/consoles"
	"github.com/msimms/gitstats/lib/model"
	"github.com/msimms/gitstats/lib/tally"
)

// ProcessOutput feeds one file's annotation output through the parser, the
// content filters and the time window, recording accepted lines in result.
func ProcessOutput(output []byte, file *model.FileContext, opts *Options, result *tally.Tally, stats *Stats, console consoles.Console) error {
	for _, raw := range annotate.SplitLines(output) {
		stats.LinesRead++

		record, ok, err := blame.Parse(raw)
		if err != nil {
			var tsErr *blame.TimestampError
			if opts.LenientTimestamps && errors.As(err, &tsErr) {
				stats.BadTimestamps++
				console.Verbosef("Skipping line: %v\n", err)
				continue
			}

			return err
		}
		if !ok {
			continue
		}

		stats.LinesParsed++

		if !opts.Filters.Accept(record.Content, file) {
			stats.LinesFiltered++
			continue
		}

		if !opts.Window.Contains(record.Timestamp) {
			stats.LinesOutOfWindow++
			continue
		}

		result.Record(record.Author)
		stats.LinesCounted++
	}

	return nil
}
