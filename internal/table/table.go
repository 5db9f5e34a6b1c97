package table

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/wordcount/internal/arena"
)

// ErrTableFull reports a probe sequence that visited every slot. The growth
// policy keeps the load factor below 0.7, so this is an invariant violation.
var ErrTableFull = errors.New("table: no free slot")

const (
	// MinCapacity is the floor for heuristically sized tables.
	MinCapacity = 1 << 16
	// MaxWordLen is the longest word an entry can describe.
	MaxWordLen = math.MaxUint16

	minSlots = 8
	// Grow once len/cap exceeds loadNum/loadDen.
	loadNum = 7
	loadDen = 10
	// Heuristic sizing: about one word per avgWordBytes input bytes and one
	// unique word per uniqueRatio words.
	avgWordBytes = 5
	uniqueRatio  = 10
)

var entrySize = int64(unsafe.Sizeof(Entry{}))

// Entry is one occupied slot. A zero Count marks an empty slot.
type Entry struct {
	Word  []byte
	Count uint64
	Hash  uint32
	Len   uint16
	FP    uint16
}

// Table is an open-addressing word-count table.
type Table struct {
	slots    []Entry
	mask     uint32
	len      int
	total    uint64
	grows    int
	arena    *arena.Arena
	acquirer arena.MemoryAcquirer
	reserved int64
}

// Option is a configuration option for Table.
type Option func(*Table)

// WithMemoryAcquirer accounts slot array memory with acquirer.
func WithMemoryAcquirer(acquirer arena.MemoryAcquirer) Option {
	return func(t *Table) {
		t.acquirer = acquirer
	}
}

// New creates a Table with at least capacity slots (rounded up to a power of
// two) that stores word bytes in a. The table takes ownership of a.
func New(capacity int, a *arena.Arena, opts ...Option) (*Table, error) {
	if a == nil {
		return nil, errors.New("table: nil arena")
	}
	t := &Table{arena: a}
	for _, opt := range opts {
		opt(t)
	}

	n := NextPow2(max(capacity, minSlots))
	if err := t.reserve(n); err != nil {
		return nil, fmt.Errorf("%w: %d slots: %w", arena.ErrExhausted, n, err)
	}
	t.slots = make([]Entry, n)
	t.mask = uint32(n - 1)
	return t, nil
}

// NextPow2 returns the smallest power of two >= n (1 for n <= 1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// CapacityFor returns the initial capacity for a worker scanning
// partitionBytes of input.
func CapacityFor(partitionBytes int) int {
	est := partitionBytes / avgWordBytes / uniqueRatio * 2
	return max(NextPow2(est), MinCapacity)
}

func (t *Table) reserve(slots int) error {
	if t.acquirer == nil {
		return nil
	}
	n := int64(slots) * entrySize
	if err := t.acquirer.AcquireMemory(n); err != nil {
		return err
	}
	t.reserved += n
	return nil
}

func (t *Table) release(slots int) {
	if t.acquirer == nil {
		return
	}
	n := int64(slots) * entrySize
	t.acquirer.ReleaseMemory(n)
	t.reserved -= n
}

// Increment counts one occurrence of word. h and fp must be the hash and
// fingerprint of word. Zero-length words are ignored.
func (t *Table) Increment(h uint32, fp uint16, word []byte) {
	t.Add(h, fp, word, 1)
}

// Add counts count occurrences of word.
func (t *Table) Add(h uint32, fp uint16, word []byte, count uint64) {
	if len(word) == 0 || count == 0 {
		return
	}
	if len(word) > MaxWordLen {
		panic(fmt.Sprintf("table: word length %d exceeds %d", len(word), MaxWordLen))
	}
	n := uint16(len(word))

	i := h & t.mask
	for range len(t.slots) {
		e := &t.slots[i]
		if e.Count == 0 {
			e.Word = t.arena.Copy(word)
			e.Count = count
			e.Hash = h
			e.Len = n
			e.FP = fp
			t.len++
			t.total += count
			if t.len*loadDen > len(t.slots)*loadNum {
				t.grow()
			}
			return
		}
		if e.Hash == h && e.Len == n && e.FP == fp && bytes.Equal(e.Word, word) {
			e.Count += count
			t.total += count
			return
		}
		i = (i + 1) & t.mask
	}
	panic(ErrTableFull)
}

func (t *Table) grow() {
	old := t.slots
	n := len(old) * 2
	if err := t.reserve(n); err != nil {
		panic(fmt.Errorf("%w: growing to %d slots: %w", arena.ErrExhausted, n, err))
	}

	t.slots = make([]Entry, n)
	t.mask = uint32(n - 1)
	for k := range old {
		e := &old[k]
		if e.Count == 0 {
			continue
		}
		i := e.Hash & t.mask
		for t.slots[i].Count != 0 {
			i = (i + 1) & t.mask
		}
		t.slots[i] = *e
	}
	t.release(len(old))
	t.grows++
}

// Lookup returns the count of word, if present.
func (t *Table) Lookup(h uint32, fp uint16, word []byte) (uint64, bool) {
	if len(word) == 0 || len(word) > MaxWordLen || t.slots == nil {
		return 0, false
	}
	n := uint16(len(word))
	i := h & t.mask
	for range len(t.slots) {
		e := &t.slots[i]
		if e.Count == 0 {
			return 0, false
		}
		if e.Hash == h && e.Len == n && e.FP == fp && bytes.Equal(e.Word, word) {
			return e.Count, true
		}
		i = (i + 1) & t.mask
	}
	return 0, false
}

// Len returns the number of distinct words.
func (t *Table) Len() int { return t.len }

// Total returns the sum of all counts.
func (t *Table) Total() uint64 { return t.total }

// Cap returns the slot count.
func (t *Table) Cap() int { return len(t.slots) }

// Grows returns how many times the table doubled.
func (t *Table) Grows() int { return t.grows }

// Arena returns the arena holding the word bytes.
func (t *Table) Arena() *arena.Arena { return t.arena }

// Each calls yield for every occupied entry in slot order until yield
// returns false. It can be used as an iter.Seq.
func (t *Table) Each(yield func(Entry) bool) {
	for i := range t.slots {
		if t.slots[i].Count == 0 {
			continue
		}
		if !yield(t.slots[i]) {
			return
		}
	}
}

// Entries returns the occupied entries. Word slices alias the arena and are
// valid until Release.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.len)
	for e := range t.Each {
		out = append(out, e)
	}
	return out
}

// Release frees the slot array and the arena. The table must not be used
// afterwards. Release is idempotent.
func (t *Table) Release() {
	if t.slots != nil {
		t.release(len(t.slots))
		t.slots = nil
	}
	if t.arena != nil {
		t.arena.Free()
		t.arena = nil
	}
}
