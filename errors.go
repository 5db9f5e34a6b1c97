package wordcount

import (
	"errors"
	"fmt"

	"github.com/hupe1980/wordcount/internal/arena"
	"github.com/hupe1980/wordcount/internal/resource"
)

var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrInvalidTopK is returned when the top-K size is negative.
	ErrInvalidTopK = errors.New("top-k must not be negative")

	// ErrInvalidMaxWordLen is returned when the maximum word length is out of range.
	ErrInvalidMaxWordLen = errors.New("max word length out of range")

	// ErrInvalidArenaSize is returned when the arena region size is not positive.
	ErrInvalidArenaSize = errors.New("arena size must be positive")

	// ErrMemoryLimit is returned when the configured memory limit cannot
	// hold the initial tables of a run.
	ErrMemoryLimit = errors.New("memory limit exceeded")
)

// ConfigError reports an invalid option value.
//
// The sentinel error can be matched with errors.Is.
type ConfigError struct {
	Option string
	Value  any
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Option, e.Value, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, arena.ErrExhausted) || errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrMemoryLimit, err)
	}
	return err
}
