package tokenizer

import (
	"strings"

	"github.com/hupe1980/wordcount/internal/hash"
	"github.com/hupe1980/wordcount/internal/simd"
	"github.com/hupe1980/wordcount/internal/table"
)

// DefaultMaxWordLen is the default maximum stored word length.
const DefaultMaxWordLen = 100

// Kind identifies a tokenizer kernel.
type Kind uint8

const (
	// KindAuto selects Wide on accelerated CPUs and Scalar otherwise.
	KindAuto Kind = iota
	// KindScalar is the byte-at-a-time kernel.
	KindScalar
	// KindWide is the 64-byte window kernel.
	KindWide
)

func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindScalar:
		return "scalar"
	case KindWide:
		return "wide"
	default:
		return "unknown"
	}
}

// ParseKind parses a kernel name as printed by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return KindAuto, true
	case "scalar":
		return KindScalar, true
	case "wide", "simd":
		return KindWide, true
	default:
		return KindAuto, false
	}
}

// Tokenizer counts the words of data into dst.
//
// Implementations are stateless between calls and safe for concurrent use
// with distinct tables.
type Tokenizer interface {
	Tokenize(dst *table.Table, data []byte)
	Kind() Kind
}

// Config configures a tokenizer.
type Config struct {
	// MaxWordLen is the maximum stored word length (default 100).
	MaxWordLen int
	// Hash is the word hash. Auto resolves against the CPU's CRC support.
	Hash hash.Algorithm
	// Kind forces a kernel. KindAuto picks by CPU capability.
	Kind Kind
}

// New returns the tokenizer selected by cfg.
func New(cfg Config) Tokenizer {
	maxLen := cfg.MaxWordLen
	if maxLen <= 0 {
		maxLen = DefaultMaxWordLen
	}
	maxLen = min(maxLen, table.MaxWordLen)
	alg := cfg.Hash.Resolve(simd.HasCRC32())

	kind := cfg.Kind
	if kind == KindAuto {
		kind = KindScalar
		if simd.Accelerated() {
			kind = KindWide
		}
	}

	if kind == KindWide {
		return &Wide{maxLen: maxLen, alg: alg}
	}
	return &Scalar{maxLen: maxLen, alg: alg}
}
