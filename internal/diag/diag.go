// Package diag holds diagnostics over a store: hex dumps of raw pages and
// a timed scan of every page header. None of it affects the log state.
package diag

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"go.flashlog/internal/layout"
	"go.flashlog/internal/storage"
)

const lineSize = 16

// DumpPage writes page as a hex dump, lineSize bytes per line, preceded
// by its index and digest. A negative page writes nothing.
func DumpPage(w io.Writer, s *storage.Store, page int) error {
	if page < 0 {
		return nil
	}

	p, err := s.LoadPage(page)
	if err != nil {
		return err
	}

	sum := blake2b.Sum256(p.Data)
	fmt.Fprintf(w, "page %d blake2b=%s\n", page, hex.EncodeToString(sum[:8]))

	for i := 0; i < len(p.Data); i += lineSize {
		end := min(i+lineSize, len(p.Data))
		fmt.Fprintf(w, "%04x  %s\n", i, dumpLine(p.Data[i:end]))
	}
	return nil
}

func dumpLine(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// PageDigest is the blake2b-256 sum of the full page contents.
func PageDigest(s *storage.Store, page int) ([32]byte, error) {
	p, err := s.LoadPage(page)
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(p.Data), nil
}

// ScanResult is what ReadAllPages saw.
type ScanResult struct {
	Pages   int
	Valid   int
	Elapsed time.Duration
}

// ReadAllPages reads the header of every page once and measures how long
// it takes.
func ReadAllPages(s *storage.Store) (ScanResult, error) {
	start := time.Now()

	res := ScanResult{Pages: s.NumPages()}
	for page := 0; page < s.NumPages(); page++ {
		ok, err := s.IsValidUploadPage(page)
		if err != nil {
			return res, err
		}
		if ok {
			res.Valid++
		}
	}

	res.Elapsed = time.Since(start)
	if m := s.Metrics(); m != nil {
		m.PageScanDuration.Observe(res.Elapsed.Seconds())
	}
	s.Logger().Debugf("ReadAllPages: %d pages, %d valid in %s", res.Pages, res.Valid, res.Elapsed)
	return res, nil
}

// PageInfo summarizes one page for listings.
type PageInfo struct {
	Page      int
	Valid     bool
	Timestamp uint32
	Records   int
}

// Describe reads the header of page and counts its leading valid records.
func Describe(s *storage.Store, page int) (PageInfo, error) {
	hdr, ok, err := s.ReadHeader(page)
	if err != nil {
		return PageInfo{}, err
	}

	info := PageInfo{Page: page, Valid: ok, Timestamp: hdr.Timestamp}
	if !ok {
		return info, nil
	}

	var rec layout.Record
	for nth := 0; s.InBounds(nth); nth++ {
		valid, err := s.ReadRecord(page, nth, &rec)
		if err != nil {
			return info, err
		}
		if !valid {
			break
		}
		info.Records++
	}
	return info, nil
}
