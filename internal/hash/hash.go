package hash

import (
	"hash/crc32"
	"strings"

	"github.com/zeebo/xxh3"
)

// Algorithm identifies a word hash function.
type Algorithm uint8

const (
	// Auto selects CRC32C when hardware CRC is available, FNV1a otherwise.
	Auto Algorithm = iota
	// CRC32C is CRC32-Castagnoli with a 64-bit finalizer.
	CRC32C
	// FNV1a is 32-bit FNV-1a with a 64-bit finalizer.
	FNV1a
	// XXH3 is xxh3-64 folded to 32 bits. It cannot be accumulated incrementally.
	XXH3
)

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// crc32cTable is the byte-at-a-time Castagnoli table. crc32.Checksum uses
// hardware instructions for whole spans; the table serves single-byte steps.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case CRC32C:
		return "crc32c"
	case FNV1a:
		return "fnv1a"
	case XXH3:
		return "xxh3"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses a name as produced by String.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, true
	case "crc32c", "crc":
		return CRC32C, true
	case "fnv1a", "fnv":
		return FNV1a, true
	case "xxh3":
		return XXH3, true
	default:
		return Auto, false
	}
}

// Resolve maps Auto onto a concrete algorithm. hardwareCRC reports whether the
// CPU provides CRC32 instructions.
func (a Algorithm) Resolve(hardwareCRC bool) Algorithm {
	if a != Auto {
		return a
	}
	if hardwareCRC {
		return CRC32C
	}
	return FNV1a
}

// Incremental reports whether State.Add accumulates the hash as bytes arrive.
func (a Algorithm) Incremental() bool {
	return a == CRC32C || a == FNV1a
}

// Sum hashes word with the given algorithm. Auto is treated as CRC32C.
func Sum(alg Algorithm, word []byte) uint32 {
	switch alg {
	case FNV1a:
		h := uint32(fnvOffset32)
		for _, b := range word {
			h ^= uint32(b)
			h *= fnvPrime32
		}
		return Finalize(uint64(h))
	case XXH3:
		return Finalize(xxh3.Hash(word))
	default:
		return Finalize(uint64(crc32.Checksum(word, crc32cTable)))
	}
}

// Finalize mixes a 64-bit accumulator down to 32 well-distributed bits
// (murmur3 fmix64).
func Finalize(h uint64) uint32 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return uint32(h)
}

// Fingerprint derives the 16-bit entry fingerprint from a hash.
func Fingerprint(h uint32) uint16 {
	return uint16(h ^ (h >> 16))
}
