// Package hash provides the word hashes used by the counting tables.
//
// # Algorithms
//
//   - CRC32C: CRC32-Castagnoli of the word followed by a 64-bit avalanche.
//     Selected by default when the CPU has CRC32 instructions (SSE4.2, ARM CRC).
//   - FNV1a: FNV-1a 32-bit followed by the same avalanche. Used when no CRC
//     hardware is present.
//   - XXH3: xxh3 64-bit of the completed word, folded through the avalanche.
//
// All algorithms are pure functions of the word bytes. The incremental State
// produces the same value as Sum for the same byte sequence, which lets the
// tokenizers hash letters as they are consumed.
//
// # Fingerprints
//
// Every table entry carries a 16-bit fingerprint derived from the hash:
//
//	fp := uint16(h ^ h>>16)
//
// Lookups compare hash, length and fingerprint before touching word bytes.
package hash
