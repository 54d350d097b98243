package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msimms/gitstats/lib/model"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	ta := New()
	for _, a := range []string{"A", "B", "A"} {
		ta.Record(a)
	}

	assert.Equal(t, []model.AuthorCount{{Author: "A", Lines: 2}, {Author: "B", Lines: 1}}, ta.Report(OrderFirstSeen))
	assert.Equal(t, 3, ta.Total())
	assert.Equal(t, 2, ta.Len())
	assert.Equal(t, 0, ta.Get("C"))
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	ta := New()

	assert.Empty(t, ta.Report(OrderName))
	assert.Equal(t, 0, ta.Total())
}

func TestReportOrders(t *testing.T) {
	t.Parallel()

	ta := New()
	for _, a := range []string{"Zed", "Amy", "Bob", "Amy", "Zed", "Zed"} {
		ta.Record(a)
	}

	assert.Equal(t, []model.AuthorCount{{Author: "Zed", Lines: 3}, {Author: "Amy", Lines: 2}, {Author: "Bob", Lines: 1}}, ta.Report(OrderFirstSeen))
	assert.Equal(t, []model.AuthorCount{{Author: "Amy", Lines: 2}, {Author: "Bob", Lines: 1}, {Author: "Zed", Lines: 3}}, ta.Report(OrderName))
	assert.Equal(t, []model.AuthorCount{{Author: "Zed", Lines: 3}, {Author: "Amy", Lines: 2}, {Author: "Bob", Lines: 1}}, ta.Report(OrderLines))
}

func TestReportLinesTieBreak(t *testing.T) {
	t.Parallel()

	ta := New()
	ta.Record("b")
	ta.Record("a")

	assert.Equal(t, []model.AuthorCount{{Author: "a", Lines: 1}, {Author: "b", Lines: 1}}, ta.Report(OrderLines))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := New()
	a.Record("A")

	b := New()
	b.Record("B")
	b.Record("A")
	b.Record("A")

	a.Merge(b)

	assert.Equal(t, []model.AuthorCount{{Author: "A", Lines: 3}, {Author: "B", Lines: 1}}, a.Report(OrderFirstSeen))
	assert.Equal(t, 4, a.Total())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	ta := New()
	ta.Record("Ann")
	ta.Record("Bo")
	ta.Record("Ann")

	f := ta.Filter(func(author string) bool { return author == "Ann" })

	assert.Equal(t, []model.AuthorCount{{Author: "Ann", Lines: 2}}, f.Report(OrderFirstSeen))
	assert.Equal(t, 3, ta.Total())
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]Order{"": OrderFirstSeen, "first-seen": OrderFirstSeen, "name": OrderName, "lines": OrderLines} {
		o, err := ParseOrder(s)
		require.NoError(t, err)
		assert.Equal(t, want, o)
	}

	_, err := ParseOrder("random")
	assert.Error(t, err)
}
