package tally

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/msimms/gitstats/lib/model"
)

type Order int

const (
	// OrderFirstSeen lists authors in the order their first line was counted.
	OrderFirstSeen Order = iota
	OrderName
	// OrderLines lists authors with more lines first, then by name.
	OrderLines
)

func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "first-seen":
		return OrderFirstSeen, nil
	case "name":
		return OrderName, nil
	case "lines":
		return OrderLines, nil
	default:
		return OrderFirstSeen, fmt.Errorf("unknown sort order: %v", s)
	}
}

// Tally counts lines per author. It is not safe for concurrent use; shards can be
// combined with Merge.
type Tally struct {
	counts map[string]int
	order  []string
}

func New() *Tally {
	return &Tally{
		counts: map[string]int{},
	}
}

func (t *Tally) Record(author string) {
	t.Add(author, 1)
}

func (t *Tally) Add(author string, lines int) {
	if _, ok := t.counts[author]; !ok {
		t.order = append(t.order, author)
	}
	t.counts[author] += lines
}

func (t *Tally) Get(author string) int {
	return t.counts[author]
}

func (t *Tally) Len() int {
	return len(t.order)
}

func (t *Tally) Total() int {
	return lo.Sum(lo.Values(t.counts))
}

func (t *Tally) Merge(other *Tally) {
	for _, author := range other.order {
		t.Add(author, other.counts[author])
	}
}

// Filter returns a new tally with only the authors accepted by keep.
func (t *Tally) Filter(keep func(author string) bool) *Tally {
	result := New()
	for _, author := range t.order {
		if keep(author) {
			result.Add(author, t.counts[author])
		}
	}
	return result
}

func (t *Tally) Report(order Order) []model.AuthorCount {
	result := lo.Map(t.order, func(author string, _ int) model.AuthorCount {
		return model.AuthorCount{Author: author, Lines: t.counts[author]}
	})

	switch order {
	case OrderName:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Author < result[j].Author
		})
	case OrderLines:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].Lines != result[j].Lines {
				return result[i].Lines > result[j].Lines
			}
			return result[i].Author < result[j].Author
		})
	}

	return result
}
