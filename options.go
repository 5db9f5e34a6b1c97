package wordcount

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/wordcount/internal/arena"
	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/table"
	"github.com/hupe1980/wordcount/internal/tokenizer"
)

// HashAlgorithm selects the word hash.
type HashAlgorithm = hash.Algorithm

const (
	// HashAuto uses CRC32C on CPUs with CRC32 instructions and FNV-1a otherwise.
	HashAuto = hash.Auto
	// HashCRC32C is CRC32-Castagnoli with a 64-bit finalizer.
	HashCRC32C = hash.CRC32C
	// HashFNV1a is FNV-1a with a 64-bit finalizer.
	HashFNV1a = hash.FNV1a
	// HashXXH3 is xxh3-64 folded to 32 bits.
	HashXXH3 = hash.XXH3
)

// ParseHashAlgorithm parses "auto", "crc32c", "fnv1a" or "xxh3".
func ParseHashAlgorithm(s string) (HashAlgorithm, bool) {
	return hash.ParseAlgorithm(s)
}

// Kernel selects the tokenizer implementation.
type Kernel = tokenizer.Kind

const (
	// KernelAuto uses the wide kernel on accelerated CPUs.
	KernelAuto = tokenizer.KindAuto
	// KernelScalar scans one byte at a time.
	KernelScalar = tokenizer.KindScalar
	// KernelWide classifies 64-byte windows.
	KernelWide = tokenizer.KindWide
)

// ParseKernel parses "auto", "scalar" or "wide".
func ParseKernel(s string) (Kernel, bool) {
	return tokenizer.ParseKind(s)
}

const (
	// DefaultMaxWordLen is the default maximum stored word length.
	DefaultMaxWordLen = tokenizer.DefaultMaxWordLen
	// DefaultTopK is the default number of ranked words.
	DefaultTopK = 10
	// DefaultArenaSize is the default per-worker arena region (32MB).
	DefaultArenaSize = arena.DefaultRegionSize
)

type options struct {
	workers          int
	maxWordLen       int
	topK             int
	hash             HashAlgorithm
	kernel           Kernel
	arenaSize        int
	initialCapacity  int
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures the Engine.
type Option func(*options)

// WithWorkers sets the number of concurrent workers.
// Defaults to runtime.GOMAXPROCS(0). Small inputs may use fewer.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxWordLen sets the maximum stored word length. Longer runs are stored
// truncated and still count once. Must be in [1, 65535].
func WithMaxWordLen(n int) Option {
	return func(o *options) {
		o.maxWordLen = n
	}
}

// WithTopK sets how many ranked words the Result carries.
// Zero returns counts only.
func WithTopK(k int) Option {
	return func(o *options) {
		o.topK = k
	}
}

// WithHashAlgorithm selects the word hash.
func WithHashAlgorithm(alg HashAlgorithm) Option {
	return func(o *options) {
		o.hash = alg
	}
}

// WithKernel forces a tokenizer kernel.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithArenaSize sets the per-worker arena region size in bytes.
// Regions are further capped by the partition size.
func WithArenaSize(bytes int) Option {
	return func(o *options) {
		o.arenaSize = bytes
	}
}

// WithInitialCapacity fixes the initial per-worker table capacity instead of
// deriving it from the partition size.
func WithInitialCapacity(slots int) Option {
	return func(o *options) {
		o.initialCapacity = slots
	}
}

// WithMemoryLimit bounds the memory held by arenas and tables.
// Zero disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wordcount.BasicMetricsCollector{}
//	eng, _ := wordcount.New(wordcount.WithMetricsCollector(metrics))
//	// ... run eng.Count ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		maxWordLen:       DefaultMaxWordLen,
		topK:             DefaultTopK,
		arenaSize:        DefaultArenaSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o *options) validate() error {
	if o.workers <= 0 {
		return &ConfigError{Option: "workers", Value: o.workers, cause: ErrInvalidWorkers}
	}
	if o.maxWordLen <= 0 || o.maxWordLen > table.MaxWordLen {
		return &ConfigError{Option: "max word length", Value: o.maxWordLen, cause: ErrInvalidMaxWordLen}
	}
	if o.topK < 0 {
		return &ConfigError{Option: "top-k", Value: o.topK, cause: ErrInvalidTopK}
	}
	if o.arenaSize <= 0 {
		return &ConfigError{Option: "arena size", Value: o.arenaSize, cause: ErrInvalidArenaSize}
	}
	return nil
}
