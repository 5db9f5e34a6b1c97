package arena

import (
	"errors"
	"fmt"

	"github.com/hupe1980/wordcount/internal/mmap"
)

// MemoryAcquirer is an interface for reserving memory.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

// ErrExhausted reports that neither the region nor the overflow path could
// obtain memory.
var ErrExhausted = errors.New("arena: memory exhausted")

const (
	// DefaultRegionSize is the default size of the backing region (32MB).
	DefaultRegionSize = 32 << 20
	// DefaultAlignment is the allocation alignment (8 bytes).
	DefaultAlignment = 8
	// minRegionSize keeps tiny regions from being all overhead.
	minRegionSize = 4 << 10
)

// Stats tracks arena memory usage.
type Stats struct {
	RegionBytes    uint64 // Size of the fixed region
	BytesUsed      uint64 // Bytes requested by allocations (before alignment)
	BytesWasted    uint64 // Alignment padding inside the region
	OverflowAllocs uint64 // Allocations served from the heap
	OverflowBytes  uint64 // Bytes served from the heap
	TotalAllocs    uint64 // All allocations
	OffHeap        bool   // Region is an anonymous mapping
}

// Arena is a bump allocator over a fixed region with heap overflow.
type Arena struct {
	region   []byte
	mapping  *mmap.Mapping // nil when the region lives on the heap
	used     int
	overflow [][]byte
	spilled  int // aligned size of the overflow spans
	acquirer MemoryAcquirer
	reserved int64
	heapOnly bool
	freed    bool
	stats    Stats
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithMemoryAcquirer accounts region and overflow memory with acquirer.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// WithHeapRegion keeps the region on the Go heap instead of mapping it.
func WithHeapRegion() Option {
	return func(a *Arena) {
		a.heapOnly = true
	}
}

// New creates an Arena with a region of regionSize bytes, rounded up to the
// alignment. A non-positive size selects DefaultRegionSize.
func New(regionSize int, opts ...Option) (*Arena, error) {
	if regionSize <= 0 {
		regionSize = DefaultRegionSize
	}
	regionSize = max(alignUp(regionSize), minRegionSize)

	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.reserve(int64(regionSize)); err != nil {
		return nil, fmt.Errorf("%w: region of %d bytes: %w", ErrExhausted, regionSize, err)
	}

	if !a.heapOnly {
		if m, err := mmap.MapAnon(regionSize); err == nil {
			_ = m.Advise(mmap.AccessHugePage)
			a.mapping = m
			a.region = m.Bytes()
			a.stats.OffHeap = true
		}
	}
	if a.region == nil {
		a.region = make([]byte, regionSize)
	}
	a.stats.RegionBytes = uint64(regionSize)

	return a, nil
}

func alignUp(n int) int {
	const mask = DefaultAlignment - 1
	return (n + mask) &^ mask
}

func (a *Arena) reserve(n int64) error {
	if a.acquirer == nil {
		return nil
	}
	if err := a.acquirer.AcquireMemory(n); err != nil {
		return err
	}
	a.reserved += n
	return nil
}

// Alloc returns a zeroed span of n bytes that stays valid until Free.
// Region spans start on 8-byte boundaries. Alloc panics with ErrExhausted if
// the overflow path cannot reserve memory.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if a.freed {
		panic("arena: alloc after free")
	}

	a.stats.TotalAllocs++
	a.stats.BytesUsed += uint64(n)

	aligned := alignUp(n)
	if a.used+aligned <= len(a.region) {
		start := a.used
		a.used += aligned
		a.stats.BytesWasted += uint64(aligned - n)
		return a.region[start : start+n : start+n]
	}

	// Region exhausted: the span goes to the heap and is tracked until Free.
	if err := a.reserve(int64(n)); err != nil {
		panic(fmt.Errorf("%w: overflow of %d bytes: %w", ErrExhausted, n, err))
	}
	buf := make([]byte, n)
	a.overflow = append(a.overflow, buf)
	a.stats.OverflowAllocs++
	a.stats.OverflowBytes += uint64(n)
	a.spilled += aligned
	return buf
}

// Copy allocates len(src) bytes and copies src into them.
func (a *Arena) Copy(src []byte) []byte {
	dst := a.Alloc(len(src))
	copy(dst, src)
	return dst
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	return a.stats
}

// Footprint returns the region bytes an arena needs to hold a copy of every
// span allocated so far without overflowing.
func (a *Arena) Footprint() int {
	return a.used + a.spilled
}

// Free releases the region and every overflow allocation at once.
// All slices returned by Alloc become invalid. Free is idempotent.
func (a *Arena) Free() {
	if a.freed {
		return
	}
	a.freed = true

	if a.mapping != nil {
		_ = a.mapping.Close()
		a.mapping = nil
	}
	a.region = nil
	a.overflow = nil
	a.used = 0
	a.spilled = 0

	if a.acquirer != nil && a.reserved > 0 {
		a.acquirer.ReleaseMemory(a.reserved)
		a.reserved = 0
	}
}

// Usage returns the region usage percentage.
func (a *Arena) Usage() float64 {
	if a.stats.RegionBytes == 0 {
		return 0
	}
	return float64(a.used) / float64(a.stats.RegionBytes) * 100
}

func (a *Arena) String() string {
	return fmt.Sprintf(
		"Arena{region: %.2f MB, used: %.2f MB, wasted: %.2f KB, overflow: %d allocs/%.2f KB, usage: %.1f%%}",
		float64(a.stats.RegionBytes)/(1024*1024),
		float64(a.stats.BytesUsed)/(1024*1024),
		float64(a.stats.BytesWasted)/1024,
		a.stats.OverflowAllocs,
		float64(a.stats.OverflowBytes)/1024,
		a.Usage(),
	)
}
