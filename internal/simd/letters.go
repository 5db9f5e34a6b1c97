package simd

import (
	"encoding/binary"
	"math/bits"
)

// WindowSize is the number of bytes classified by LetterMask64.
const WindowSize = 64

const (
	lanes   = 0x0101010101010101
	highs   = 0x8080808080808080
	lows    = 0x7f7f7f7f7f7f7f7f
	caseBit = 0x2020202020202020

	// Adding these to a byte <= 0x7f sets its high bit exactly when the byte
	// is >= 'a' (resp. > 'z'). The sum never carries into the next lane.
	geA = (0x80 - 'a') * lanes
	gtZ = (0x80 - ('z' + 1)) * lanes

	// gather moves bit 8i of a lane mask to bit 56+i.
	gather = 0x0102040810204080
)

// LetterMask64 returns a mask whose bit i is set when p[i] is an ASCII letter
// (A-Z or a-z). Bytes >= 0x80 are never letters. p must hold at least
// WindowSize bytes.
func LetterMask64(p []byte) uint64 {
	_ = p[WindowSize-1]
	var m uint64
	for lane := 0; lane < WindowSize/8; lane++ {
		m |= letterMask8(binary.LittleEndian.Uint64(p[lane*8:])) << (lane * 8)
	}
	return m
}

// letterMask8 classifies the eight bytes of w (little endian) into 8 bits.
func letterMask8(w uint64) uint64 {
	y := (w | caseBit) & lows
	hi := (y + geA) &^ (y + gtZ) &^ w & highs
	return ((hi >> 7) * gather) >> 56
}

// letterMask64Generic is the byte-at-a-time reference for LetterMask64.
func letterMask64Generic(p []byte) uint64 {
	var m uint64
	for i := 0; i < WindowSize; i++ {
		if IsLetter(p[i]) {
			m |= 1 << i
		}
	}
	return m
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return (c|0x20)-'a' < 26
}

// RunLength returns the number of consecutive set bits of m starting at bit
// start.
func RunLength(m uint64, start int) int {
	return bits.TrailingZeros64(^(m >> start))
}
