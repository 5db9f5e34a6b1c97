// Package merge combines per-worker tables into one global table.
package merge

import (
	"github.com/hupe1980/wordcount/internal/arena"
	"github.com/hupe1980/wordcount/internal/table"
)

// Capacity returns the global table capacity for tables: the summed unique
// counts doubled and rounded up to a power of two.
func Capacity(tables []*table.Table) int {
	unique := 0
	for _, t := range tables {
		unique += t.Len()
	}
	return table.NextPow2(unique * 2)
}

// Footprint returns the word bytes the global arena needs to hold every
// source word without overflowing.
func Footprint(tables []*table.Table) int {
	n := 0
	for _, t := range tables {
		n += t.Arena().Footprint()
	}
	return n
}

// Merge sums the counts of tables into a new table whose words live in a.
// Sources are only read and may be released as soon as Merge returns. The
// result does not depend on the order of tables.
func Merge(tables []*table.Table, a *arena.Arena, opts ...table.Option) (*table.Table, error) {
	global, err := table.New(Capacity(tables), a, opts...)
	if err != nil {
		return nil, err
	}

	for _, t := range tables {
		for e := range t.Each {
			global.Add(e.Hash, e.FP, e.Word, e.Count)
		}
	}
	return global, nil
}
