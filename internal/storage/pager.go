package storage

import (
	"fmt"

	"go.flashlog/internal/flash"
	"go.flashlog/internal/metrics"
)

// Pager moves bytes between the medium and memory. The medium's buffer
// primitive returns garbage above a small transfer size, so every
// transfer is split into chunks of at most chunkSize bytes, in order.
// There are no retries; bad content is caught by the layout predicates.
type Pager struct {
	medium    flash.Medium
	pageSize  int
	numPages  int
	chunkSize int
	metrics   *metrics.Metrics
}

func NewPager(medium flash.Medium, chunkSize int, m *metrics.Metrics) (*Pager, error) {
	if chunkSize <= 0 {
		chunkSize = medium.MaxChunk()
	}
	if chunkSize > medium.MaxChunk() {
		return nil, fmt.Errorf("%w: %d > %d", ErrChunkSize, chunkSize, medium.MaxChunk())
	}

	return &Pager{
		medium:    medium,
		pageSize:  medium.PageSize(),
		numPages:  medium.NumPages(),
		chunkSize: chunkSize,
		metrics:   m,
	}, nil
}

func (pager *Pager) checkRange(id, offset, size int) error {
	if id < 0 || id >= pager.numPages {
		return fmt.Errorf("%w: %d", ErrBadPage, id)
	}
	if offset < 0 || offset+size > pager.pageSize {
		return fmt.Errorf("%w: page=%d offset=%d size=%d", ErrOutsidePage, id, offset, size)
	}
	return nil
}

// ReadPage fills dst with the first len(dst) bytes of page id.
func (pager *Pager) ReadPage(id int, dst []byte) error {
	return pager.ReadAt(id, 0, dst)
}

func (pager *Pager) ReadAt(id, offset int, dst []byte) error {
	if err := pager.checkRange(id, offset, len(dst)); err != nil {
		return err
	}
	if err := pager.medium.SelectPageForRead(id); err != nil {
		return fmt.Errorf("select page %d: %w", id, err)
	}

	for len(dst) > 0 {
		n := min(len(dst), pager.chunkSize)
		if err := pager.medium.ReadChunk(offset, dst[:n]); err != nil {
			return fmt.Errorf("read page %d at %d: %w", id, offset, err)
		}
		pager.count(metrics.OpRead, n)
		offset += n
		dst = dst[n:]
	}
	return nil
}

// WriteAt loads page id into the buffer, patches src at offset and
// programs the page back.
func (pager *Pager) WriteAt(id, offset int, src []byte) error {
	if err := pager.checkRange(id, offset, len(src)); err != nil {
		return err
	}
	if err := pager.medium.SelectPageForRead(id); err != nil {
		return fmt.Errorf("select page %d: %w", id, err)
	}

	off := offset
	for rest := src; len(rest) > 0; {
		n := min(len(rest), pager.chunkSize)
		if err := pager.medium.WriteChunk(off, rest[:n]); err != nil {
			return fmt.Errorf("write page %d at %d: %w", id, off, err)
		}
		pager.count(metrics.OpWrite, n)
		off += n
		rest = rest[n:]
	}

	if err := pager.medium.CommitPage(id); err != nil {
		return fmt.Errorf("commit page %d: %w", id, err)
	}
	return nil
}

func (pager *Pager) ErasePage(id int) error {
	if err := pager.checkRange(id, 0, 0); err != nil {
		return err
	}
	if err := pager.medium.ErasePage(id); err != nil {
		return fmt.Errorf("erase page %d: %w", id, err)
	}
	if pager.metrics != nil {
		pager.metrics.PageErases.Inc()
	}
	return nil
}

func (pager *Pager) count(op string, n int) {
	if pager.metrics == nil {
		return
	}
	pager.metrics.ChunkTransfers.WithLabelValues(op).Inc()
	pager.metrics.BytesTransferred.WithLabelValues(op).Add(float64(n))
}
