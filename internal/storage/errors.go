package storage

import "errors"

var (
	// pager
	ErrChunkSize   = errors.New("chunk size exceeds medium transfer limit")
	ErrOutsidePage = errors.New("transfer crosses page end")
	ErrBadPage     = errors.New("page index out of range")
	// records
	ErrBoundary      = errors.New("record slot crosses page boundary")
	ErrInvalidRecord = errors.New("record carries the sentinel timestamp")
	// log
	ErrRingFull   = errors.New("no free page left, drain the upload page first")
	ErrUploadBusy = errors.New("upload page is still being written")
)
