package storage

import (
	"fmt"

	"go.flashlog/internal/flash"
	"go.flashlog/internal/layout"
	"go.flashlog/internal/logger"
	"go.flashlog/internal/metrics"
)

// Store gives page-level access to a ring of log pages on a medium.
// It keeps no index: all state is derived from the pages themselves.
// A Store is not safe for concurrent use.
type Store struct {
	pager    *Pager
	layout   layout.Layout
	numPages int
	policy   TimestampPolicy
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func Open(medium flash.Medium, opts Options) (*Store, error) {
	lay, err := layout.New(opts.Format, medium.PageSize())
	if err != nil {
		return nil, err
	}

	pager, err := NewPager(medium, opts.ChunkSize, opts.Metrics)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	if opts.Format == layout.FormatV2 && medium.NumPages() > 1<<16 {
		return nil, fmt.Errorf("%d pages do not fit the 16-bit page number of %s", medium.NumPages(), opts.Format)
	}

	return &Store{
		pager:    pager,
		layout:   lay,
		numPages: medium.NumPages(),
		policy:   opts.Policy,
		log:      log,
		metrics:  opts.Metrics,
	}, nil
}

func (s *Store) Layout() layout.Layout { return s.layout }
func (s *Store) NumPages() int         { return s.numPages }
func (s *Store) Pager() *Pager         { return s.pager }
func (s *Store) Logger() *logger.Logger {
	return s.log
}

// Metrics may be nil.
func (s *Store) Metrics() *metrics.Metrics { return s.metrics }

// Next is the ring successor of page.
func (s *Store) Next(page int) int {
	page++
	if page >= s.numPages {
		page = 0
	}
	return page
}
