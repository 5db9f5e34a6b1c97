// Package simd provides CPU capability detection and wide byte classifiers
// for the tokenizers.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (F+BW), AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the active ISA. Any non-generic ISA
// enables the wide tokenizer path. Set WORDCOUNT_SIMD=generic or build with
// -tags noasm to force the byte-at-a-time fallback.
//
// # Operations
//
//   - LetterMask64: classifies 64 bytes into a bitmask of ASCII letters.
//
// The classifier works on eight 64-bit lanes at a time (SWAR) so it needs no
// assembly and behaves identically on every platform.
package simd
