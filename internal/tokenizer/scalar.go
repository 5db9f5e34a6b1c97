package tokenizer

import (
	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/table"
)

// Scalar is the byte-at-a-time tokenizer.
type Scalar struct {
	maxLen int
	alg    hash.Algorithm
}

// NewScalar returns a Scalar tokenizer. alg must already be resolved.
func NewScalar(maxLen int, alg hash.Algorithm) *Scalar {
	return &Scalar{maxLen: maxLen, alg: alg}
}

// Kind returns KindScalar.
func (s *Scalar) Kind() Kind { return KindScalar }

// Tokenize counts the words of data into dst.
func (s *Scalar) Tokenize(dst *table.Table, data []byte) {
	r := newRun(dst, s.maxLen, s.alg)
	scan(&r, data)
	r.flush()
}

// scan feeds data to r one byte at a time, flushing on every separator.
func scan(r *run, data []byte) {
	for _, c := range data {
		if (c|0x20)-'a' < 26 {
			r.letter(c)
		} else if r.n > 0 {
			r.flush()
		}
	}
}
