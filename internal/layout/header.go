package layout

import "encoding/binary"

// Header is written once at offset 0 when a page is opened for writing.
type Header struct {
	Timestamp  uint32
	PageNumber uint16 // FormatV2 only
	Version    uint32
	Magic      [MagicSize]byte
}

func (l Layout) NewHeader(ts uint32, page int) Header {
	h := Header{
		Timestamp: ts,
		Version:   uint32(l.Format),
		Magic:     l.Format.Magic(),
	}
	if l.Format.hasPageNumber() {
		h.PageNumber = uint16(page)
	}
	return h
}

// IsValidHeader reports whether the header's magic equals the format's
// signature. No other field is looked at; the timestamp is accepted as is.
func (l Layout) IsValidHeader(h *Header) bool {
	return h.Magic == l.Format.Magic()
}

func (l Layout) EncodeHeader(buf []byte, h *Header) error {
	if len(buf) < l.HeaderSize() {
		return ErrShortBuffer
	}

	binary.LittleEndian.PutUint32(buf[0:4], h.Timestamp)
	off := 4
	if l.Format.hasPageNumber() {
		binary.LittleEndian.PutUint16(buf[off:off+2], h.PageNumber)
		off += 2
	}
	binary.LittleEndian.PutUint32(buf[off:off+4], h.Version)
	off += 4
	copy(buf[off:off+MagicSize], h.Magic[:])
	return nil
}

func (l Layout) DecodeHeader(buf []byte, h *Header) error {
	if len(buf) < l.HeaderSize() {
		return ErrShortBuffer
	}

	h.Timestamp = binary.LittleEndian.Uint32(buf[0:4])
	h.PageNumber = 0
	off := 4
	if l.Format.hasPageNumber() {
		h.PageNumber = binary.LittleEndian.Uint16(buf[off : off+2])
		off += 2
	}
	h.Version = binary.LittleEndian.Uint32(buf[off : off+4])
	off += 4
	copy(h.Magic[:], buf[off:off+MagicSize])
	return nil
}
