package tokenizer

import (
	"math/bits"

	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/simd"
	"github.com/hupe1980/wordcount/internal/table"
)

// Wide is the 64-byte window tokenizer.
type Wide struct {
	maxLen int
	alg    hash.Algorithm
}

// NewWide returns a Wide tokenizer. alg must already be resolved.
func NewWide(maxLen int, alg hash.Algorithm) *Wide {
	return &Wide{maxLen: maxLen, alg: alg}
}

// Kind returns KindWide.
func (w *Wide) Kind() Kind { return KindWide }

// Tokenize counts the words of data into dst.
func (w *Wide) Tokenize(dst *table.Table, data []byte) {
	r := newRun(dst, w.maxLen, w.alg)

	i := 0
	for ; i+simd.WindowSize <= len(data); i += simd.WindowSize {
		window := data[i : i+simd.WindowSize]
		m := simd.LetterMask64(window)

		switch m {
		case 0:
			r.flush()
			continue
		case ^uint64(0):
			r.letters(window)
			continue
		}

		pos := 0
		for pos < simd.WindowSize {
			rest := m >> pos
			if rest == 0 {
				r.flush()
				break
			}
			if gap := bits.TrailingZeros64(rest); gap > 0 {
				r.flush()
				pos += gap
			}
			n := simd.RunLength(m, pos)
			r.letters(window[pos : pos+n])
			pos += n
		}
		// A run touching the last byte stays open for the next window.
	}

	scan(&r, data[i:])
	r.flush()
}
