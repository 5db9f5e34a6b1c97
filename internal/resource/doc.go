// Package resource tracks and limits the memory reserved by counting runs.
//
// Arenas and tables reserve their backing memory through a Controller before
// allocating it. With a hard limit configured, a reservation that would exceed
// the limit fails immediately with ErrMemoryLimitExceeded; the caller treats
// that as resource exhaustion.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(32 << 20); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(32 << 20)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
