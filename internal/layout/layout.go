package layout

import "fmt"

// Layout binds a format to a page size.
type Layout struct {
	Format   Format
	PageSize int
}

func New(format Format, pageSize int) (Layout, error) {
	if !format.Valid() {
		return Layout{}, fmt.Errorf("%w: %d", ErrUnknownFormat, uint32(format))
	}
	if pageSize < format.HeaderSize()+format.RecordSize() {
		return Layout{}, fmt.Errorf("%w: %d bytes for %s", ErrPageTooSmall, pageSize, format)
	}
	return Layout{Format: format, PageSize: pageSize}, nil
}

func (l Layout) HeaderSize() int { return l.Format.HeaderSize() }
func (l Layout) RecordSize() int { return l.Format.RecordSize() }

func (l Layout) RecordsPerPage() int {
	return (l.PageSize - l.HeaderSize()) / l.RecordSize()
}

// RecordOffset is the byte offset of slot nth within any page.
func (l Layout) RecordOffset(nth int) int {
	return l.HeaderSize() + nth*l.RecordSize()
}

// InBounds reports whether slot nth lies entirely inside the page.
func (l Layout) InBounds(nth int) bool {
	return nth >= 0 && nth < l.RecordsPerPage()
}
