package flash

import "errors"

var (
	ErrChunkTooLarge    = errors.New("chunk exceeds transfer limit")
	ErrPageOutOfRange   = errors.New("page index out of range")
	ErrOffsetOutOfRange = errors.New("offset outside page buffer")
	ErrNoPageSelected   = errors.New("no page selected")
	ErrCorruptImage     = errors.New("flash image size is not a multiple of the page size")
	ErrBadGeometry      = errors.New("invalid flash geometry")
	ErrClosed           = errors.New("medium is closed")
)
