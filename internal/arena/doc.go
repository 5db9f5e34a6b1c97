// Package arena provides the per-worker word storage allocator.
//
// An Arena owns one fixed-size region, preferably an off-heap anonymous
// mapping, and bump-allocates 8-byte aligned spans from it. Allocations that
// do not fit the remaining region fall back to individual heap allocations
// that the arena tracks until Free. Nothing is freed individually.
//
// # Ownership
//
// An Arena belongs to exactly one table and is used by one goroutine at a
// time; it performs no synchronization. Every slice it returns becomes invalid
// after Free.
//
// # Failure
//
// Reservations go through an optional MemoryAcquirer. If the acquirer refuses
// memory for an allocation the arena panics with ErrExhausted: running out of
// memory mid-run is resource exhaustion and is never retried.
package arena
