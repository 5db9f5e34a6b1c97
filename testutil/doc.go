// Package testutil provides testing utilities for wordcount.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded text corpora, computing exact
// word counts, and verifying top-k selections.
//
// # Corpus Generation
//
//	rng := testutil.NewRNG(seed)
//	vocab := rng.Vocabulary(2000, 12)
//	data := rng.Text(1<<20, vocab, 1.1) // Zipf-distributed words
//	noise := rng.Noise(4096)            // letters mixed with separators and high bytes
//
// # Exact Counting (Ground Truth)
//
//	counts := testutil.ReferenceCount(data, 100)
//	top := testutil.ExactTopK(counts, 10)
package testutil
