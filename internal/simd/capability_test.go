package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		got, ok := ParseISA(isa.String())
		assert.True(t, ok)
		assert.Equal(t, isa, got)
	}

	got, ok := ParseISA(" AVX2 ")
	assert.True(t, ok)
	assert.Equal(t, AVX2, got)

	_, ok = ParseISA("mmx")
	assert.False(t, ok)
}

func TestActiveISAIsAvailable(t *testing.T) {
	assert.True(t, isISAAvailable(ActiveISA()))
	assert.Equal(t, ActiveISA() != Generic, Accelerated())
}
