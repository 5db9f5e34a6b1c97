package hash

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var algorithms = []Algorithm{CRC32C, FNV1a, XXH3}

func TestSum_Deterministic(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			assert.Equal(t, Sum(alg, []byte("cat")), Sum(alg, []byte("cat")))
			assert.NotEqual(t, Sum(alg, []byte("cat")), Sum(alg, []byte("cats")))
			assert.NotEqual(t, Sum(alg, []byte("a")), Sum(alg, []byte("aa")))
		})
	}
}

func TestSum_AlgorithmsDiffer(t *testing.T) {
	w := []byte("fallback")
	assert.NotEqual(t, Sum(CRC32C, w), Sum(FNV1a, w))
	assert.NotEqual(t, Sum(CRC32C, w), Sum(XXH3, w))
}

func TestState_MatchesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			st := NewState(alg)
			for i := 0; i < 500; i++ {
				word := make([]byte, rng.Intn(120))
				for j := range word {
					word[j] = byte('a' + rng.Intn(26))
				}
				st.Reset()
				for _, b := range word {
					st.Add(b)
				}
				require.Equal(t, Sum(alg, word), st.Sum32(word), "word %q", word)
			}
		})
	}
}

func TestState_AutoIsCRC32C(t *testing.T) {
	st := NewState(Auto)
	assert.Equal(t, CRC32C, st.Algorithm())
	assert.Equal(t, Sum(CRC32C, []byte("x")), Sum(Auto, []byte("x")))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, CRC32C, Auto.Resolve(true))
	assert.Equal(t, FNV1a, Auto.Resolve(false))
	assert.Equal(t, XXH3, XXH3.Resolve(true))
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range append(algorithms, Auto) {
		got, ok := ParseAlgorithm(alg.String())
		require.True(t, ok)
		assert.Equal(t, alg, got)
	}
	_, ok := ParseAlgorithm("md5")
	assert.False(t, ok)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, uint16(0x1234^0xabcd), Fingerprint(0xabcd1234))
}

// Low bits select table slots, so they must spread evenly across buckets.
func TestSum_Distribution(t *testing.T) {
	const buckets = 256
	const words = 64 * buckets

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			var counts [buckets]int
			for i := 0; i < words; i++ {
				w := []byte(fmt.Sprintf("w%d", i))
				counts[Sum(alg, w)&(buckets-1)]++
			}
			for b, c := range counts {
				assert.Greater(t, c, 16, "bucket %d underfilled", b)
				assert.Less(t, c, 160, "bucket %d overfilled", b)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	word := []byte("internationalization")
	for _, alg := range algorithms {
		b.Run(alg.String(), func(b *testing.B) {
			b.SetBytes(int64(len(word)))
			for i := 0; i < b.N; i++ {
				_ = Sum(alg, word)
			}
		})
	}
}
