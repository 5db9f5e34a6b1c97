package wordcount

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordcount/testutil"
)

func generateText(seed uint64, size int) []byte {
	rng := testutil.NewRNG(seed)
	return rng.Text(size, rng.Vocabulary(2000, 12), 1.0)
}

func TestCount_Examples(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		res, err := Count(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, res.TotalWords)
		assert.Zero(t, res.UniqueWords)
		assert.NotNil(t, res.Top)
		assert.Empty(t, res.Top)
		assert.Zero(t, res.Stats.Workers)
	})

	t.Run("no letters", func(t *testing.T) {
		res, err := Count(ctx, []byte("1234 !!! \xff\xfe 5678"))
		require.NoError(t, err)
		assert.Zero(t, res.TotalWords)
		assert.Zero(t, res.UniqueWords)
		assert.Empty(t, res.Top)
	})

	t.Run("sentence", func(t *testing.T) {
		res, err := Count(ctx, []byte("it's a cat. A CAT!"), WithTopK(2))
		require.NoError(t, err)
		assert.Equal(t, uint64(6), res.TotalWords)
		assert.Equal(t, 4, res.UniqueWords)
		assert.Equal(t, []WordCount{{"a", 2}, {"cat", 2}}, res.Top)
	})

	t.Run("case folding", func(t *testing.T) {
		res, err := Count(ctx, []byte("Apple apple APPLE"))
		require.NoError(t, err)
		assert.Equal(t, []WordCount{{"apple", 3}}, res.Top)
	})

	t.Run("repeated word", func(t *testing.T) {
		res, err := Count(ctx, []byte(strings.Repeat("the ", 10000)), WithWorkers(8))
		require.NoError(t, err)
		assert.Equal(t, uint64(10000), res.TotalWords)
		assert.Equal(t, 1, res.UniqueWords)
		assert.Equal(t, []WordCount{{"the", 10000}}, res.Top)
		assert.Greater(t, res.Stats.Workers, 1)
	})

	t.Run("long run truncated", func(t *testing.T) {
		res, err := Count(ctx, []byte(strings.Repeat("x", 500)), WithMaxWordLen(100))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.TotalWords)
		assert.Equal(t, []WordCount{{strings.Repeat("x", 100), 1}}, res.Top)
	})

	t.Run("top zero", func(t *testing.T) {
		res, err := Count(ctx, []byte("a b c"), WithTopK(0))
		require.NoError(t, err)
		assert.Equal(t, uint64(3), res.TotalWords)
		assert.Empty(t, res.Top)
	})
}

func TestCount_Deterministic(t *testing.T) {
	ctx := context.Background()
	data := generateText(1, 512<<10)

	want, err := Count(ctx, data, WithWorkers(1), WithKernel(KernelScalar), WithTopK(100))
	require.NoError(t, err)
	require.Len(t, want.Top, 100)

	var sum uint64
	for _, wc := range want.Top {
		sum += wc.Count
	}
	assert.LessOrEqual(t, sum, want.TotalWords)

	for _, workers := range []int{2, 7, 16} {
		for _, kernel := range []Kernel{KernelScalar, KernelWide} {
			for _, alg := range []HashAlgorithm{HashCRC32C, HashFNV1a, HashXXH3} {
				got, err := Count(ctx, data,
					WithWorkers(workers), WithKernel(kernel), WithHashAlgorithm(alg), WithTopK(100))
				require.NoError(t, err)
				assert.Equal(t, want.TotalWords, got.TotalWords, "workers=%d kernel=%s hash=%s", workers, kernel, alg)
				assert.Equal(t, want.UniqueWords, got.UniqueWords)
				assert.Equal(t, want.Top, got.Top)
				assert.Equal(t, kernel, got.Stats.Kernel)
				assert.Equal(t, alg, got.Stats.Hash)
			}
		}
	}
}

func TestCount_MatchesReference(t *testing.T) {
	data := generateText(7, 256<<10)
	counts := testutil.ReferenceCount(data, DefaultMaxWordLen)

	res, err := Count(context.Background(), data, WithWorkers(8), WithTopK(25))
	require.NoError(t, err)

	assert.Equal(t, testutil.Total(counts), res.TotalWords)
	assert.Equal(t, len(counts), res.UniqueWords)

	want := testutil.ExactTopK(counts, 25)
	require.Len(t, res.Top, len(want))
	for i, wc := range want {
		assert.Equal(t, wc.Word, res.Top[i].Word, "rank %d", i+1)
		assert.Equal(t, wc.Count, res.Top[i].Count, "rank %d", i+1)
	}
}

func TestCount_SmallTablesGrow(t *testing.T) {
	data := generateText(2, 128<<10)

	want, err := Count(context.Background(), data, WithTopK(50))
	require.NoError(t, err)

	got, err := Count(context.Background(), data,
		WithTopK(50), WithInitialCapacity(8), WithArenaSize(64), WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, want.Top, got.Top)
	assert.Equal(t, want.UniqueWords, got.UniqueWords)
	assert.Positive(t, got.Stats.TableGrows)
	assert.Positive(t, got.Stats.OverflowAllocs)
}

func TestCount_MemoryLimit(t *testing.T) {
	data := generateText(3, 64<<10)

	_, err := Count(context.Background(), data, WithMemoryLimit(1024))
	require.ErrorIs(t, err, ErrMemoryLimit)

	res, err := Count(context.Background(), data, WithMemoryLimit(1<<30), WithWorkers(2))
	require.NoError(t, err)
	assert.Positive(t, res.Stats.PeakMemory)
	assert.LessOrEqual(t, res.Stats.PeakMemory, int64(1<<30))
}

func TestCount_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Count(ctx, []byte("hello world"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Reusable(t *testing.T) {
	e, err := New(WithWorkers(3), WithTopK(3))
	require.NoError(t, err)

	first, err := e.Count(context.Background(), []byte("b a b c b a"))
	require.NoError(t, err)
	second, err := e.Count(context.Background(), []byte("b a b c b a"))
	require.NoError(t, err)

	assert.Equal(t, []WordCount{{"b", 3}, {"a", 2}, {"c", 1}}, first.Top)
	assert.Equal(t, first.Top, second.Top)
	assert.Equal(t, e.Kernel(), first.Stats.Kernel)
	assert.Equal(t, e.Hash(), first.Stats.Hash)
	assert.NotEqual(t, HashAuto, e.Hash())
}

func TestResult_Percent(t *testing.T) {
	res := &Result{TotalWords: 8, Top: []WordCount{{"a", 2}, {"b", 1}}}

	assert.InDelta(t, 25.0, res.Percent(0), 1e-9)
	assert.InDelta(t, 12.5, res.Percent(1), 1e-9)
	assert.Zero(t, res.Percent(2))
	assert.Zero(t, res.Percent(-1))
	assert.Zero(t, (&Result{}).Percent(0))
}

func TestCount_MetricsAndLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	data := generateText(4, 64<<10)
	res, err := Count(context.Background(), data,
		WithWorkers(4), WithLogger(logger), WithMetricsCollector(metrics))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Zero(t, stats.RunErrors)
	assert.Equal(t, int64(len(data)), stats.BytesProcessed)
	assert.Equal(t, int64(res.TotalWords), stats.WordsCounted)
	assert.Equal(t, int64(res.Stats.Workers), stats.WorkerCount)
	assert.Equal(t, int64(1), stats.MergeCount)
	assert.Equal(t, int64(res.Stats.Workers), stats.MergedTables)

	out := logs.String()
	assert.Contains(t, out, `"msg":"count completed"`)
	assert.Contains(t, out, `"msg":"partition counted"`)
	assert.Contains(t, out, `"msg":"tables merged"`)
	assert.Equal(t, res.Stats.Workers, strings.Count(out, `"msg":"partition counted"`))
}

func TestCount_ErrorIsRecorded(t *testing.T) {
	var logs bytes.Buffer
	metrics := &BasicMetricsCollector{}

	_, err := Count(context.Background(), generateText(5, 16<<10),
		WithMemoryLimit(16),
		WithMetricsCollector(metrics),
		WithLogger(NewLogger(slog.NewTextHandler(&logs, nil))))
	require.Error(t, err)

	assert.Equal(t, int64(1), metrics.GetStats().RunErrors)
	assert.Contains(t, logs.String(), "count failed")
}

func BenchmarkCount(b *testing.B) {
	data := generateText(6, 8<<20)
	e, err := New()
	require.NoError(b, err)

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := e.Count(context.Background(), data); err != nil {
			b.Fatal(err)
		}
	}
}
