package topk

import (
	"bytes"

	"github.com/hupe1980/wordcount/internal/table"
)

// Compare orders a before b when a ranks higher: larger count first, then
// smaller word bytes.
func Compare(a, b table.Entry) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	default:
		return bytes.Compare(a.Word, b.Word)
	}
}

// boundedHeap keeps the k best entries seen so far. The root is the worst of
// them, so a new entry only has to beat the root to get in.
// It is value-based and does not implement container/heap.
type boundedHeap struct {
	items []table.Entry
	k     int
}

func newBoundedHeap(k int) *boundedHeap {
	return &boundedHeap{items: make([]table.Entry, 0, k), k: k}
}

// less reports whether items[i] ranks below items[j].
func (h *boundedHeap) less(i, j int) bool {
	return Compare(h.items[i], h.items[j]) > 0
}

func (h *boundedHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// push offers e. When the heap is full, e replaces the root only if it ranks
// higher.
func (h *boundedHeap) push(e table.Entry) {
	if len(h.items) < h.k {
		h.items = append(h.items, e)
		h.siftUp(len(h.items) - 1)
		return
	}
	if Compare(e, h.items[0]) < 0 {
		h.items[0] = e
		h.siftDown(0)
	}
}

// pop removes and returns the worst entry.
func (h *boundedHeap) pop() table.Entry {
	n := len(h.items) - 1
	e := h.items[0]
	h.items[0] = h.items[n]
	h.items = h.items[:n]
	if n > 0 {
		h.siftDown(0)
	}
	return e
}

func (h *boundedHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *boundedHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(right, left) {
			child = right
		}
		if !h.less(child, i) {
			break
		}
		h.swap(i, child)
		i = child
	}
}

// drain empties the heap into best-first order.
func (h *boundedHeap) drain() []table.Entry {
	out := make([]table.Entry, len(h.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = h.pop()
	}
	return out
}
