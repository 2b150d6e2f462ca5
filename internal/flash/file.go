package flash

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// File is a flash image kept in a regular file, one page after another.
type File struct {
	file *os.File
	geo  Geometry
	buf  pageBuffer
}

// OpenFile opens an existing image, or creates an erased one when path
// does not exist.
func OpenFile(path string, geo Geometry) (*File, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if errors.Is(err, os.ErrNotExist) {
		f, err = createImage(path, geo)
	}

	if err != nil {
		return nil, fmt.Errorf("Error opening flash image: %w", err)
	}

	info, statErr := f.Stat()
	if statErr != nil {
		f.Close()
		return nil, fmt.Errorf("Error getting image stats: %w", statErr)
	}

	if info.Size() != int64(geo.PageSize)*int64(geo.NumPages) {
		f.Close()
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d pages of %d", ErrCorruptImage, path, info.Size(), geo.NumPages, geo.PageSize)
	}

	return &File{
		file: f,
		geo:  geo,
		buf:  newPageBuffer(geo.PageSize, geo.MaxChunk),
	}, nil
}

// Create writes a fresh erased image, failing if path exists.
func Create(path string, geo Geometry) error {
	if err := geo.Validate(); err != nil {
		return err
	}
	f, err := createImage(path, geo)
	if err != nil {
		return err
	}
	return f.Close()
}

func createImage(path string, geo Geometry) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return nil, fmt.Errorf("Unable to create image %s: %w", path, err)
	}

	page := make([]byte, geo.PageSize)
	fillErased(page)

	for i := 0; i < geo.NumPages; i++ {
		n, wErr := f.Write(page)
		if wErr != nil {
			f.Close()
			return nil, fmt.Errorf("Error writing erased page %d: %w", i, wErr)
		} else if n != geo.PageSize {
			f.Close()
			return nil, fmt.Errorf("Size mismatch writing page %d: Expected %d Actual: %d", i, geo.PageSize, n)
		}
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return nil, err
	}
	f.Seek(0, io.SeekStart)
	return f, nil
}

func (f *File) offset(page int) int64 {
	return int64(page) * int64(f.geo.PageSize)
}

func (f *File) SelectPageForRead(page int) error {
	if f.file == nil {
		return ErrClosed
	}
	if err := checkPage(page, f.geo.NumPages); err != nil {
		return err
	}
	if _, err := f.file.ReadAt(f.buf.data, f.offset(page)); err != nil {
		f.buf.selected = -1
		return fmt.Errorf("reading page %d: %w", page, err)
	}
	f.buf.selected = page
	return nil
}

func (f *File) ReadChunk(offset int, dst []byte) error {
	return f.buf.read(offset, dst)
}

func (f *File) WriteChunk(offset int, src []byte) error {
	return f.buf.write(offset, src)
}

func (f *File) CommitPage(page int) error {
	if f.file == nil {
		return ErrClosed
	}
	if err := checkPage(page, f.geo.NumPages); err != nil {
		return err
	}
	if f.buf.selected < 0 {
		return ErrNoPageSelected
	}
	if _, err := f.file.WriteAt(f.buf.data, f.offset(page)); err != nil {
		return fmt.Errorf("writing page %d: %w", page, err)
	}
	return f.file.Sync()
}

func (f *File) ErasePage(page int) error {
	if f.file == nil {
		return ErrClosed
	}
	if err := checkPage(page, f.geo.NumPages); err != nil {
		return err
	}
	erased := make([]byte, f.geo.PageSize)
	fillErased(erased)
	if _, err := f.file.WriteAt(erased, f.offset(page)); err != nil {
		return fmt.Errorf("erasing page %d: %w", page, err)
	}
	if f.buf.selected == page {
		f.buf.selected = -1
	}
	return f.file.Sync()
}

func (f *File) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *File) PageSize() int { return f.geo.PageSize }
func (f *File) NumPages() int { return f.geo.NumPages }
func (f *File) MaxChunk() int { return f.geo.MaxChunk }
