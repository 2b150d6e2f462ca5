// Package layout is the on-medium binary contract: the page header, the
// fixed-size record slots that follow it, and the validity predicates
// over both. Every field is encoded explicitly, little-endian, at a
// fixed offset.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel is the timestamp of a record slot that was never written.
// It is also what an erased medium reads back.
const Sentinel uint32 = 0xFFFFFFFF

const MagicSize = 6

// PayloadSize is the width of the opaque sample payload carried by every
// record format.
const PayloadSize = 27

var (
	ErrUnknownFormat = errors.New("unknown record format")
	ErrPageTooSmall  = errors.New("page too small for header and one record")
	ErrShortBuffer   = errors.New("buffer shorter than encoded size")
	ErrPayloadSize   = errors.New("payload longer than record slot")
)

// Format identifies a header and record layout. Its value is what gets
// stored in the header's version field.
type Format uint32

const (
	// FormatV1: header {ts u32, version u32, magic [6]}, record {ts u32, payload}.
	FormatV1 Format = 1
	// FormatV2 adds a self-identifying page number to header and record.
	FormatV2 Format = 2
)

var (
	magicV1 = [MagicSize]byte{'S', 'O', 'D', 'A', 'Q', 0}
	magicV2 = [MagicSize]byte{'S', 'O', 'D', 'Q', '2', 0}
)

func (f Format) Valid() bool {
	return f == FormatV1 || f == FormatV2
}

func (f Format) String() string {
	switch f {
	case FormatV1:
		return "v1"
	case FormatV2:
		return "v2"
	}
	return fmt.Sprintf("format(%d)", uint32(f))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "1":
		return FormatV1, nil
	case "v2", "2":
		return FormatV2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Magic returns the page signature of the format.
func (f Format) Magic() [MagicSize]byte {
	if f == FormatV2 {
		return magicV2
	}
	return magicV1
}

func (f Format) hasPageNumber() bool {
	return f == FormatV2
}

func (f Format) HeaderSize() int {
	if f.hasPageNumber() {
		return 4 + 2 + 4 + MagicSize
	}
	return 4 + 4 + MagicSize
}

func (f Format) RecordSize() int {
	if f.hasPageNumber() {
		return 4 + 2 + PayloadSize
	}
	return 4 + PayloadSize
}
