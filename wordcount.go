package wordcount

import (
	"context"
	"time"

	"github.com/hupe1980/wordcount/internal/arena"
	"github.com/hupe1980/wordcount/internal/merge"
	"github.com/hupe1980/wordcount/internal/partition"
	"github.com/hupe1980/wordcount/internal/resource"
	"github.com/hupe1980/wordcount/internal/simd"
	"github.com/hupe1980/wordcount/internal/table"
	"github.com/hupe1980/wordcount/internal/tokenizer"
	"github.com/hupe1980/wordcount/internal/topk"
)

// WordCount is one ranked word.
type WordCount struct {
	Word  string
	Count uint64
}

// RunStats describes how a Count call was executed.
type RunStats struct {
	Workers int           // Workers actually used (small inputs use fewer)
	Kernel  Kernel        // Tokenizer kernel
	Hash    HashAlgorithm // Resolved word hash
	ISA     string        // Active vector ISA

	Partition time.Duration // Tokenization phase, all workers
	Merge     time.Duration
	Select    time.Duration
	Total     time.Duration

	ArenaBytes     uint64 // Word bytes stored by the workers
	OverflowAllocs uint64 // Worker allocations that spilled to the heap
	TableGrows     int    // Worker table doublings
	PeakMemory     int64  // Peak accounted arena and table memory
}

// Result is the outcome of a Count call.
type Result struct {
	// TotalWords is the number of word occurrences, the sum of all counts.
	TotalWords uint64
	// UniqueWords is the number of distinct words.
	UniqueWords int
	// Top holds at most top-K words by descending count, ties by word.
	Top   []WordCount
	Stats RunStats
}

// Percent returns Top[i]'s share of TotalWords in percent.
func (r *Result) Percent(i int) float64 {
	if r.TotalWords == 0 || i < 0 || i >= len(r.Top) {
		return 0
	}
	return float64(r.Top[i].Count) * 100 / float64(r.TotalWords)
}

// Engine counts words. It is immutable after New and safe for concurrent use.
type Engine struct {
	opts options
	tok  tokenizer.Tokenizer
	hash HashAlgorithm
}

// New creates an Engine.
func New(optFns ...Option) (*Engine, error) {
	opts := applyOptions(optFns)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	alg := opts.hash.Resolve(simd.HasCRC32())
	tok := tokenizer.New(tokenizer.Config{
		MaxWordLen: opts.maxWordLen,
		Hash:       alg,
		Kind:       opts.kernel,
	})

	return &Engine{opts: opts, tok: tok, hash: alg}, nil
}

// Count counts the words of data with a one-off Engine.
func Count(ctx context.Context, data []byte, optFns ...Option) (*Result, error) {
	e, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	return e.Count(ctx, data)
}

// Kernel returns the tokenizer kernel the engine uses.
func (e *Engine) Kernel() Kernel { return e.tok.Kind() }

// Hash returns the resolved word hash.
func (e *Engine) Hash() HashAlgorithm { return e.hash }

// Count counts the words of data. data is only read.
//
// ctx is checked before workers start; a started run always completes.
// Exhausting the memory limit after workers started panics.
func (e *Engine) Count(ctx context.Context, data []byte) (*Result, error) {
	start := time.Now()
	res, err := e.count(ctx, data)
	elapsed := time.Since(start)

	var words uint64
	if res != nil {
		res.Stats.Total = elapsed
		words = res.TotalWords
	}
	e.opts.metricsCollector.RecordRun(len(data), words, elapsed, err)
	e.opts.logger.LogRun(ctx, len(data), res, err)

	return res, err
}

func (e *Engine) count(ctx context.Context, data []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Top: []WordCount{},
		Stats: RunStats{
			Kernel: e.tok.Kind(),
			Hash:   e.hash,
			ISA:    simd.ActiveISA().String(),
		},
	}

	units := partition.Plan(data, e.opts.workers)
	res.Stats.Workers = len(units)
	if len(units) == 0 {
		return res, nil
	}

	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: e.opts.memoryLimit})

	phase := time.Now()
	sched := partition.NewScheduler(e.tok, e.newWorkerTable(ctrl), partition.WithObserver(func(r partition.Report) {
		e.opts.metricsCollector.RecordWorker(r.Unit.Len(), r.Words, r.Duration)
		e.opts.logger.LogPartition(ctx, r.Unit.ID, r.Unit.Start, r.Unit.End, r.Words, r.Unique, r.Duration)
	}))
	tables, err := sched.Run(ctx, data, units)
	if err != nil {
		return nil, translateError(err)
	}
	res.Stats.Partition = time.Since(phase)

	for _, t := range tables {
		st := t.Arena().Stats()
		res.Stats.ArenaBytes += st.BytesUsed
		res.Stats.OverflowAllocs += st.OverflowAllocs
		res.Stats.TableGrows += t.Grows()
	}

	phase = time.Now()
	global, err := e.merge(tables, ctrl)
	for _, t := range tables {
		t.Release()
	}
	if err != nil {
		return nil, translateError(err)
	}
	defer global.Release()
	res.Stats.Merge = time.Since(phase)
	e.opts.metricsCollector.RecordMerge(len(tables), global.Len(), res.Stats.Merge)
	e.opts.logger.LogMerge(ctx, len(tables), global.Len(), res.Stats.Merge)

	res.TotalWords = global.Total()
	res.UniqueWords = global.Len()

	phase = time.Now()
	top := topk.Select(global, e.opts.topK)
	res.Top = make([]WordCount, len(top))
	for i, entry := range top {
		// Copy out of the arena before the global table is released.
		res.Top[i] = WordCount{Word: string(entry.Word), Count: entry.Count}
	}
	res.Stats.Select = time.Since(phase)
	res.Stats.PeakMemory = ctrl.PeakMemoryUsage()

	return res, nil
}

// newWorkerTable returns the factory for per-worker tables. The arena region
// never exceeds the partition it stores words from.
func (e *Engine) newWorkerTable(ctrl *resource.Controller) partition.TableFactory {
	return func(u partition.WorkUnit) (*table.Table, error) {
		a, err := arena.New(min(e.opts.arenaSize, u.Len()), arena.WithMemoryAcquirer(ctrl))
		if err != nil {
			return nil, err
		}

		capacity := e.opts.initialCapacity
		if capacity <= 0 {
			capacity = table.CapacityFor(u.Len())
		}
		t, err := table.New(capacity, a, table.WithMemoryAcquirer(ctrl))
		if err != nil {
			a.Free()
			return nil, err
		}
		return t, nil
	}
}

func (e *Engine) merge(tables []*table.Table, ctrl *resource.Controller) (*table.Table, error) {
	a, err := arena.New(max(merge.Footprint(tables), 1), arena.WithMemoryAcquirer(ctrl))
	if err != nil {
		return nil, err
	}
	global, err := merge.Merge(tables, a, table.WithMemoryAcquirer(ctrl))
	if err != nil {
		a.Free()
		return nil, err
	}
	return global, nil
}
