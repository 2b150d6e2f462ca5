package storage

import (
	"fmt"

	"go.flashlog/internal/layout"
)

// InBounds reports whether slot nth fits inside a page. ReadRecord
// returns false both for empty slots and out-of-range ones; this is how
// callers tell the two apart.
func (s *Store) InBounds(nth int) bool {
	return s.layout.InBounds(nth)
}

func (s *Store) RecordsPerPage() int {
	return s.layout.RecordsPerPage()
}

// ReadRecord decodes slot nth of page into rec and reports whether it
// holds a valid record. An out-of-range slot is not read at all; rec gets
// the sentinel timestamp.
func (s *Store) ReadRecord(page, nth int, rec *layout.Record) (bool, error) {
	if !s.layout.InBounds(nth) {
		rec.Timestamp = layout.Sentinel
		return false, nil
	}

	buf := make([]byte, s.layout.RecordSize())
	if err := s.pager.ReadAt(page, s.layout.RecordOffset(nth), buf); err != nil {
		rec.Timestamp = layout.Sentinel
		return false, err
	}
	if err := s.layout.DecodeRecord(buf, rec); err != nil {
		return false, err
	}
	return layout.IsValidRecord(rec), nil
}

// WriteRecord stores rec in slot nth of page. With FormatV2 the record is
// stamped with page.
func (s *Store) WriteRecord(page, nth int, rec *layout.Record) error {
	if !s.layout.InBounds(nth) {
		return fmt.Errorf("%w: slot %d of %d", ErrBoundary, nth, s.layout.RecordsPerPage())
	}

	out := *rec
	if s.layout.Format == layout.FormatV2 {
		out.PageNumber = uint16(page)
	}

	buf := make([]byte, s.layout.RecordSize())
	if err := s.layout.EncodeRecord(buf, &out); err != nil {
		return err
	}
	return s.pager.WriteAt(page, s.layout.RecordOffset(nth), buf)
}
