// Package tokenizer splits a byte buffer into words and counts them into a
// table.Table.
//
// A word is a maximal run of ASCII letters (A-Z, a-z); every other byte,
// including all bytes >= 0x80, separates words. Letters are lowercased with
// b|0x20 before they are hashed and stored. Runs longer than MaxWordLen are
// truncated to their first MaxWordLen bytes and counted once.
//
// Two kernels produce identical tables for any input:
//
//   - Scalar classifies one byte at a time.
//   - Wide classifies 64-byte windows into a letter bitmask and walks the
//     runs with trailing-zero counts, carrying a run across windows.
//
// New picks Wide when the CPU reports a vector ISA (see internal/simd) unless
// a kind is forced.
package tokenizer
