package hash

// State accumulates a word hash one byte at a time.
//
// The zero value is not ready for use; call Reset (or NewState) first.
type State struct {
	alg Algorithm
	acc uint32
}

// NewState returns a reset State for alg. Auto is treated as CRC32C.
func NewState(alg Algorithm) State {
	if alg == Auto {
		alg = CRC32C
	}
	s := State{alg: alg}
	s.Reset()
	return s
}

// Algorithm returns the algorithm the state accumulates.
func (s *State) Algorithm() Algorithm {
	return s.alg
}

// Reset prepares the state for a new word.
func (s *State) Reset() {
	switch s.alg {
	case FNV1a:
		s.acc = fnvOffset32
	default:
		// Raw CRC register; crc32.Checksum starts from the inverted zero.
		s.acc = ^uint32(0)
	}
}

// Add folds one byte into the accumulator. It is a no-op for algorithms that
// are not incremental.
func (s *State) Add(b byte) {
	switch s.alg {
	case CRC32C:
		s.acc = crc32cTable[byte(s.acc)^b] ^ (s.acc >> 8)
	case FNV1a:
		s.acc ^= uint32(b)
		s.acc *= fnvPrime32
	}
}

// Sum32 returns the final hash. word must be the exact bytes passed to Add
// since the last Reset; it is only read by non-incremental algorithms.
func (s *State) Sum32(word []byte) uint32 {
	switch s.alg {
	case CRC32C:
		return Finalize(uint64(^s.acc))
	case FNV1a:
		return Finalize(uint64(s.acc))
	default:
		return Sum(s.alg, word)
	}
}
