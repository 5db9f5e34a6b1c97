package testutil

import (
	"bytes"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
)

// Separators are the non-letter byte sequences Text places between words.
var Separators = []string{" ", " ", " ", ", ", ". ", "\n", "\t", "'", "--", "\xe2\x80\x94", "42"}

// WordCount is a word with its exact occurrence count.
type WordCount struct {
	Word  string
	Count uint64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, which is how word frequencies in natural text behave.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sampleCDF(r.rand, zipfCDF(n, s))
}

// zipfCDF returns the cumulative, unnormalized Zipf weights for ranks 1..n.
func zipfCDF(n int, s float64) []float64 {
	cdf := make([]float64, max(n, 1))
	var cumulative float64
	for k := range cdf {
		cumulative += 1.0 / math.Pow(float64(k+1), s)
		cdf[k] = cumulative
	}
	return cdf
}

// sampleCDF draws an index by inverse transform (caller must hold lock).
func sampleCDF(rng *rand.Rand, cdf []float64) int {
	u := rng.Float64() * cdf[len(cdf)-1]
	return min(sort.SearchFloat64s(cdf, u), len(cdf)-1)
}

// Vocabulary generates n random words of 1..maxLen ASCII letters.
// Roughly one letter in ten is upper case.
func (r *RNG) Vocabulary(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	vocab := make([]string, n)
	var b strings.Builder
	for i := range vocab {
		b.Reset()
		for range 1 + r.rand.IntN(maxLen) {
			c := byte('a' + r.rand.IntN(26))
			if r.rand.IntN(10) == 0 {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
		}
		vocab[i] = b.String()
	}
	return vocab
}

// Text generates at least size bytes of words drawn from vocab with Zipf
// skew s, each followed by one of Separators.
func (r *RNG) Text(size int, vocab []string, s float64) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	cdf := zipfCDF(len(vocab), s)
	var buf bytes.Buffer
	buf.Grow(size + 64)
	for buf.Len() < size {
		buf.WriteString(vocab[sampleCDF(r.rand, cdf)])
		buf.WriteString(Separators[r.rand.IntN(len(Separators))])
	}
	return buf.Bytes()
}

// Noise generates n bytes biased towards a small lower-case alphabet so that
// long runs and repeated words occur, mixed with upper case, digits,
// punctuation and non-ASCII bytes.
func (r *RNG) Noise(n int) []byte {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .,;'\n\t0123456789\x80\xff"

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		if r.rand.IntN(4) > 0 {
			out[i] = 'a' + byte(r.rand.IntN(3))
		} else {
			out[i] = alphabet[r.rand.IntN(len(alphabet))]
		}
	}
	return out
}

// ReferenceCount counts words byte by byte for ground truth.
// A word is a maximal run of ASCII letters, lower-cased and truncated to maxLen.
func ReferenceCount(data []byte, maxLen int) map[string]uint64 {
	out := make(map[string]uint64)
	var word []byte
	flush := func() {
		if len(word) > 0 {
			if len(word) > maxLen {
				word = word[:maxLen]
			}
			out[string(word)]++
			word = word[:0]
		}
	}
	for _, c := range data {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			word = append(word, c|0x20)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// ExactTopK returns the k most frequent words ordered by count descending,
// ties broken by ascending byte order.
func ExactTopK(counts map[string]uint64, k int) []WordCount {
	results := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		results = append(results, WordCount{Word: w, Count: c})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Word < results[j].Word
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// Total sums all counts.
func Total(counts map[string]uint64) uint64 {
	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}
