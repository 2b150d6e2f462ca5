package layout

import (
	"encoding/binary"
	"fmt"
)

// Record is one sample slot. The payload bytes are opaque here.
type Record struct {
	Timestamp  uint32
	PageNumber uint16 // FormatV2 only
	Payload    []byte
}

// IsValidRecord reports whether the slot holds data.
func IsValidRecord(r *Record) bool {
	return r.Timestamp != Sentinel
}

func (l Layout) EncodeRecord(buf []byte, r *Record) error {
	if len(buf) < l.RecordSize() {
		return ErrShortBuffer
	}
	if len(r.Payload) > PayloadSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadSize, len(r.Payload))
	}

	binary.LittleEndian.PutUint32(buf[0:4], r.Timestamp)
	off := 4
	if l.Format.hasPageNumber() {
		binary.LittleEndian.PutUint16(buf[off:off+2], r.PageNumber)
		off += 2
	}

	payload := buf[off : off+PayloadSize]
	n := copy(payload, r.Payload)
	for i := n; i < PayloadSize; i++ {
		payload[i] = 0
	}
	return nil
}

// DecodeRecord fills r from buf, reusing r.Payload when it has room.
func (l Layout) DecodeRecord(buf []byte, r *Record) error {
	if len(buf) < l.RecordSize() {
		return ErrShortBuffer
	}

	r.Timestamp = binary.LittleEndian.Uint32(buf[0:4])
	r.PageNumber = 0
	off := 4
	if l.Format.hasPageNumber() {
		r.PageNumber = binary.LittleEndian.Uint16(buf[off : off+2])
		off += 2
	}

	if cap(r.Payload) < PayloadSize {
		r.Payload = make([]byte, PayloadSize)
	}
	r.Payload = r.Payload[:PayloadSize]
	copy(r.Payload, buf[off:off+PayloadSize])
	return nil
}
