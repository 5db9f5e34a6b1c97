package wordcount

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"zero workers", WithWorkers(0), ErrInvalidWorkers},
		{"negative workers", WithWorkers(-2), ErrInvalidWorkers},
		{"negative top-k", WithTopK(-1), ErrInvalidTopK},
		{"zero max word", WithMaxWordLen(0), ErrInvalidMaxWordLen},
		{"huge max word", WithMaxWordLen(1 << 16), ErrInvalidMaxWordLen},
		{"zero arena", WithArenaSize(0), ErrInvalidArenaSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.ErrorIs(t, err, tt.want)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.NotEmpty(t, cfgErr.Option)
			assert.Contains(t, err.Error(), cfgErr.Option)
		})
	}
}

func TestApplyOptions_Defaults(t *testing.T) {
	o := applyOptions(nil)

	assert.Equal(t, runtime.GOMAXPROCS(0), o.workers)
	assert.Equal(t, DefaultMaxWordLen, o.maxWordLen)
	assert.Equal(t, DefaultTopK, o.topK)
	assert.Equal(t, DefaultArenaSize, o.arenaSize)
	assert.Equal(t, HashAuto, o.hash)
	assert.Equal(t, KernelAuto, o.kernel)
	assert.NotNil(t, o.logger)
	assert.NotNil(t, o.metricsCollector)
	require.NoError(t, o.validate())
}

func TestApplyOptions_NilValues(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})

	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}

func TestNew_ForcedKernel(t *testing.T) {
	for _, k := range []Kernel{KernelScalar, KernelWide} {
		e, err := New(WithKernel(k))
		require.NoError(t, err)
		assert.Equal(t, k, e.Kernel())
	}
}

func TestParse(t *testing.T) {
	alg, ok := ParseHashAlgorithm("xxh3")
	require.True(t, ok)
	assert.Equal(t, HashXXH3, alg)

	k, ok := ParseKernel("scalar")
	require.True(t, ok)
	assert.Equal(t, KernelScalar, k)

	_, ok = ParseKernel("gpu")
	assert.False(t, ok)
}
