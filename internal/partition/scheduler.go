package partition

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/wordcount/internal/table"
	"github.com/hupe1980/wordcount/internal/tokenizer"
)

// TableFactory creates the private table for a unit.
type TableFactory func(u WorkUnit) (*table.Table, error)

// Report describes one finished worker.
type Report struct {
	Unit     WorkUnit
	Words    uint64
	Unique   int
	Duration time.Duration
}

// Scheduler runs one tokenizer worker per work unit.
type Scheduler struct {
	tok      tokenizer.Tokenizer
	newTable TableFactory
	observe  func(Report)
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithObserver registers fn to be called from each worker goroutine when it
// finishes. fn must be safe for concurrent use.
func WithObserver(fn func(Report)) SchedulerOption {
	return func(s *Scheduler) {
		s.observe = fn
	}
}

// NewScheduler creates a Scheduler.
func NewScheduler(tok tokenizer.Tokenizer, newTable TableFactory, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{tok: tok, newTable: newTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run tokenizes every unit of data concurrently and returns the per-unit
// tables in unit order. All tables are created before any worker starts; if
// one cannot be created the others are released and the error returned.
// ctx is only consulted before the workers are launched.
func (s *Scheduler) Run(ctx context.Context, data []byte, units []WorkUnit) ([]*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := make([]*table.Table, len(units))
	for i, u := range units {
		t, err := s.newTable(u)
		if err != nil {
			for _, created := range tables[:i] {
				created.Release()
			}
			return nil, err
		}
		tables[i] = t
	}

	var g errgroup.Group
	for i, u := range units {
		g.Go(func() error {
			start := time.Now()
			s.tok.Tokenize(tables[i], data[u.Start:u.End])
			if s.observe != nil {
				s.observe(Report{
					Unit:     u,
					Words:    tables[i].Total(),
					Unique:   tables[i].Len(),
					Duration: time.Since(start),
				})
			}
			return nil
		})
	}
	_ = g.Wait() // workers do not fail; exhaustion panics

	return tables, nil
}
