package tokenizer

import (
	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/table"
)

// run accumulates the current word: its lowercased prefix (at most maxLen
// bytes) and the incremental hash of that prefix.
type run struct {
	dst *table.Table
	buf []byte
	n   int
	st  hash.State
}

func newRun(dst *table.Table, maxLen int, alg hash.Algorithm) run {
	return run{
		dst: dst,
		buf: make([]byte, maxLen),
		st:  hash.NewState(alg),
	}
}

// letter appends one letter; letters past maxLen are dropped.
func (r *run) letter(c byte) {
	if r.n == len(r.buf) {
		return
	}
	c |= 0x20
	r.buf[r.n] = c
	r.st.Add(c)
	r.n++
}

// letters appends a span of letters.
func (r *run) letters(p []byte) {
	room := len(r.buf) - r.n
	if len(p) > room {
		p = p[:room]
	}
	for _, c := range p {
		c |= 0x20
		r.buf[r.n] = c
		r.st.Add(c)
		r.n++
	}
}

// flush counts the pending word, if any, and resets the run.
func (r *run) flush() {
	if r.n == 0 {
		return
	}
	word := r.buf[:r.n]
	h := r.st.Sum32(word)
	r.dst.Increment(h, hash.Fingerprint(h), word)
	r.n = 0
	r.st.Reset()
}
