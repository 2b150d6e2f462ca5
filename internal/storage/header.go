package storage

import "go.flashlog/internal/layout"

// ReadHeader reads the header prefix of page and reports whether its
// magic is valid.
func (s *Store) ReadHeader(page int) (layout.Header, bool, error) {
	var hdr layout.Header
	buf := make([]byte, s.layout.HeaderSize())
	if err := s.pager.ReadPage(page, buf); err != nil {
		return hdr, false, err
	}
	if err := s.layout.DecodeHeader(buf, &hdr); err != nil {
		return hdr, false, err
	}
	return hdr, s.layout.IsValidHeader(&hdr), nil
}

// holdsData applies the timestamp policy on top of the magic check.
func (s *Store) holdsData(hdr *layout.Header) bool {
	if !s.layout.IsValidHeader(hdr) {
		return false
	}
	if s.policy == RejectSentinelTimestamp && hdr.Timestamp == layout.Sentinel {
		return false
	}
	return true
}

// IsValidUploadPage reports whether page carries a header that counts as
// data under the store's policy.
//
// This replaces the medium's working buffer.
func (s *Store) IsValidUploadPage(page int) (bool, error) {
	hdr, _, err := s.ReadHeader(page)
	if err != nil {
		return false, err
	}
	return s.holdsData(&hdr), nil
}

// PageTimestamp returns the header timestamp of page, or the sentinel for
// a negative page so unset cursors can be passed straight in.
func (s *Store) PageTimestamp(page int) (uint32, error) {
	if page < 0 {
		return layout.Sentinel, nil
	}
	hdr, _, err := s.ReadHeader(page)
	if err != nil {
		return layout.Sentinel, err
	}
	return hdr.Timestamp, nil
}

// WriteHeader opens page for writing with the given timestamp.
func (s *Store) WriteHeader(page int, ts uint32) error {
	hdr := s.layout.NewHeader(ts, page)
	buf := make([]byte, s.layout.HeaderSize())
	if err := s.layout.EncodeHeader(buf, &hdr); err != nil {
		return err
	}
	return s.pager.WriteAt(page, 0, buf)
}
