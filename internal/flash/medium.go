// Package flash models a page-erasable storage medium that is accessed
// through a single internal page buffer, the way serial dataflash chips
// are driven.
package flash

import "fmt"

// Erased is the value of every byte of an erased page.
const Erased byte = 0xFF

// DefaultMaxChunk is the largest transfer the buffer primitives accept.
// Larger transfers return corrupted data on the real part.
const DefaultMaxChunk = 16

// Medium is the driver surface the log store is built on.
//
// All buffer transfers go through the one working buffer: SelectPageForRead
// replaces its contents, ReadChunk and WriteChunk operate on it and
// CommitPage programs it back. Callers must not assume the buffer survives
// a select of a different page.
type Medium interface {
	SelectPageForRead(page int) error
	ReadChunk(offset int, dst []byte) error
	WriteChunk(offset int, src []byte) error
	CommitPage(page int) error
	ErasePage(page int) error

	PageSize() int
	NumPages() int
	MaxChunk() int
}

// Geometry describes the shape of a medium.
type Geometry struct {
	PageSize int
	NumPages int
	MaxChunk int
}

func (g Geometry) Validate() error {
	if g.PageSize <= 0 || g.NumPages <= 0 || g.MaxChunk <= 0 {
		return fmt.Errorf("%w: page_size=%d nr_pages=%d chunk=%d", ErrBadGeometry, g.PageSize, g.NumPages, g.MaxChunk)
	}
	return nil
}

// pageBuffer is the working buffer shared by the medium implementations.
type pageBuffer struct {
	data     []byte
	selected int
	maxChunk int
}

func newPageBuffer(pageSize, maxChunk int) pageBuffer {
	return pageBuffer{
		data:     make([]byte, pageSize),
		selected: -1,
		maxChunk: maxChunk,
	}
}

func (b *pageBuffer) check(offset, n int) error {
	if b.selected < 0 {
		return ErrNoPageSelected
	}
	if n > b.maxChunk {
		return fmt.Errorf("%w: %d > %d", ErrChunkTooLarge, n, b.maxChunk)
	}
	if offset < 0 || offset+n > len(b.data) {
		return fmt.Errorf("%w: offset=%d len=%d", ErrOffsetOutOfRange, offset, n)
	}
	return nil
}

func (b *pageBuffer) read(offset int, dst []byte) error {
	if err := b.check(offset, len(dst)); err != nil {
		return err
	}
	copy(dst, b.data[offset:offset+len(dst)])
	return nil
}

func (b *pageBuffer) write(offset int, src []byte) error {
	if err := b.check(offset, len(src)); err != nil {
		return err
	}
	copy(b.data[offset:], src)
	return nil
}

func checkPage(page, numPages int) error {
	if page < 0 || page >= numPages {
		return fmt.Errorf("%w: %d (pages=%d)", ErrPageOutOfRange, page, numPages)
	}
	return nil
}

func fillErased(buf []byte) {
	for i := range buf {
		buf[i] = Erased
	}
}
