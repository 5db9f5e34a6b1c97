package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordcount/internal/arena"
	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/resource"
	"github.com/hupe1980/wordcount/internal/table"
	"github.com/hupe1980/wordcount/internal/tokenizer"
	"github.com/hupe1980/wordcount/testutil"
)

func build(t *testing.T, text string) *table.Table {
	t.Helper()
	a, err := arena.New(0, arena.WithHeapRegion())
	require.NoError(t, err)
	tbl, err := table.New(16, a)
	require.NoError(t, err)
	tokenizer.NewScalar(tokenizer.DefaultMaxWordLen, hash.CRC32C).Tokenize(tbl, []byte(text))
	return tbl
}

func toMap(tbl *table.Table) map[string]uint64 {
	out := make(map[string]uint64, tbl.Len())
	for e := range tbl.Each {
		out[string(e.Word)] = e.Count
	}
	return out
}

func mergeAll(t *testing.T, tables ...*table.Table) *table.Table {
	t.Helper()
	a, err := arena.New(Footprint(tables), arena.WithHeapRegion())
	require.NoError(t, err)
	global, err := Merge(tables, a)
	require.NoError(t, err)
	t.Cleanup(global.Release)
	return global
}

func TestMerge(t *testing.T) {
	a := build(t, "the cat sat on the mat")
	b := build(t, "The dog sat")
	c := build(t, "")
	defer a.Release()
	defer b.Release()
	defer c.Release()

	global := mergeAll(t, a, b, c)

	assert.Equal(t, map[string]uint64{
		"the": 3, "cat": 1, "sat": 2, "on": 1, "mat": 1, "dog": 1,
	}, toMap(global))
	assert.Equal(t, a.Total()+b.Total()+c.Total(), global.Total())
	assert.Equal(t, 6, global.Len())
}

func TestMerge_FootprintAvoidsOverflow(t *testing.T) {
	rng := testutil.NewRNG(3)
	vocab := rng.Vocabulary(3000, 12)

	var tables []*table.Table
	for range 2 {
		a, err := arena.New(1, arena.WithHeapRegion())
		require.NoError(t, err)
		tbl, err := table.New(16, a)
		require.NoError(t, err)
		t.Cleanup(tbl.Release)
		tokenizer.NewScalar(tokenizer.DefaultMaxWordLen, hash.CRC32C).Tokenize(tbl, rng.Text(64<<10, vocab, 0.5))
		require.Positive(t, a.Stats().OverflowAllocs)
		tables = append(tables, tbl)
	}

	global := mergeAll(t, tables...)
	assert.Zero(t, global.Arena().Stats().OverflowAllocs)
	assert.Equal(t, tables[0].Total()+tables[1].Total(), global.Total())
}

func TestMerge_OrderIndependent(t *testing.T) {
	texts := []string{
		"alpha beta gamma alpha",
		"gamma gamma delta",
		"beta epsilon alpha zeta",
	}
	forward := make([]*table.Table, len(texts))
	backward := make([]*table.Table, len(texts))
	for i, s := range texts {
		forward[i] = build(t, s)
		backward[len(texts)-1-i] = build(t, s)
	}

	g1 := mergeAll(t, forward...)
	g2 := mergeAll(t, backward...)

	assert.Equal(t, toMap(g1), toMap(g2))
	assert.Equal(t, g1.Total(), g2.Total())

	for _, tbl := range append(forward, backward...) {
		tbl.Release()
	}
}

func TestMerge_SourcesReleasedFirst(t *testing.T) {
	a := build(t, "persistent words survive")
	b := build(t, "words")

	global := mergeAll(t, a, b)
	a.Release()
	b.Release()

	assert.Equal(t, map[string]uint64{"persistent": 1, "words": 2, "survive": 1}, toMap(global))
	assert.Zero(t, global.Arena().Stats().OverflowAllocs)
}

func TestMerge_Empty(t *testing.T) {
	global := mergeAll(t)
	assert.Zero(t, global.Len())
	assert.Zero(t, global.Total())
}

func TestMerge_MemoryLimit(t *testing.T) {
	a := build(t, "one two three")
	defer a.Release()

	c := resource.NewController(resource.Config{MemoryLimitBytes: 1})
	ar, err := arena.New(0, arena.WithHeapRegion())
	require.NoError(t, err)
	defer ar.Free()

	_, err = Merge([]*table.Table{a}, ar, table.WithMemoryAcquirer(c))
	require.ErrorIs(t, err, arena.ErrExhausted)
}

func TestCapacity(t *testing.T) {
	a := build(t, "a b c")
	b := build(t, "c d e f g")
	defer a.Release()
	defer b.Release()

	assert.Equal(t, 16, Capacity([]*table.Table{a, b}))
	assert.Equal(t, 1, Capacity(nil))
}
