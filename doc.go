// Package wordcount provides a concurrent word-frequency counting engine.
//
// The engine counts case-insensitive ASCII words in a byte buffer and returns
// the total, the number of distinct words and the most frequent words.
//
// # Quick Start
//
//	data, _ := os.ReadFile("book.txt")
//	res, err := wordcount.Count(ctx, data, wordcount.WithTopK(10))
//	if err != nil {
//	    return err
//	}
//	for i, wc := range res.Top {
//	    fmt.Printf("%2d. %-20s %8d %6.2f%%\n", i+1, wc.Word, wc.Count, res.Percent(i))
//	}
//
// # Words
//
// A word is a maximal run of the letters A-Z and a-z. Every other byte is a
// separator, including digits, punctuation and all bytes >= 0x80, so "it's"
// counts "it" and "s". Words are lowercased. Runs longer than WithMaxWordLen
// are stored truncated and still count as one occurrence.
//
// # Pipeline
//
//	buffer ─▶ word-aligned cuts ─▶ N workers (tokenizer ─▶ private table)
//	       ─▶ join ─▶ merge into global table ─▶ top-K
//
// Each worker owns its table and arena, so the counting phase needs no locks.
// The buffer is only read. Tables are merged on one goroutine after every
// worker finished; the result does not depend on the worker count.
//
// # Kernels
//
// On CPUs with AVX2, AVX-512 or NEON the tokenizer classifies 64-byte windows
// at a time; elsewhere it scans byte by byte. Both produce the same counts.
// Set WORDCOUNT_SIMD=generic or build with -tags noasm to force the scalar
// kernel, or use WithKernel.
//
// # Resource Exhaustion
//
// With WithMemoryLimit every arena region, overflow allocation and table slot
// array is accounted. Count returns an error wrapping ErrMemoryLimit when the
// initial tables do not fit. Running out of memory once workers are counting
// is fatal and panics; there is no retry.
package wordcount
