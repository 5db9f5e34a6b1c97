package topk

import (
	"slices"

	"github.com/hupe1980/wordcount/internal/table"
)

// HeapThreshold is the unique-word count above which Select uses the
// bounded heap instead of a full sort.
const HeapThreshold = 10_000

// Select returns at most k entries of t in rank order. Word slices alias the
// table's arena.
func Select(t *table.Table, k int) []table.Entry {
	if t.Len() > HeapThreshold {
		return SelectHeap(t, k)
	}
	return SelectSort(t, k)
}

// SelectSort ranks every entry and keeps the first k.
func SelectSort(t *table.Table, k int) []table.Entry {
	if k <= 0 {
		return nil
	}
	entries := t.Entries()
	slices.SortFunc(entries, Compare)
	return slices.Clip(entries[:min(k, len(entries))])
}

// SelectHeap streams the entries through a bounded heap of size k.
func SelectHeap(t *table.Table, k int) []table.Entry {
	if k <= 0 {
		return nil
	}
	h := newBoundedHeap(min(k, t.Len()))
	if h.k == 0 {
		return []table.Entry{}
	}
	for e := range t.Each {
		h.push(e)
	}
	return h.drain()
}
