package storage

import (
	"fmt"
	"time"
)

// NoPage marks an unset cursor.
const NoPage = -1

// RingState is the shape of the ring found by Recover.
type RingState int

const (
	// RingEmpty: no page holds data. Upload is NoPage.
	RingEmpty RingState = iota
	// RingReady: Upload holds the oldest data and Current is a free page.
	RingReady
	// RingFull: every page holds data. Current equals Upload and nothing
	// may be written until the upload page is drained.
	RingFull
)

func (r RingState) String() string {
	switch r {
	case RingEmpty:
		return "empty"
	case RingReady:
		return "ready"
	case RingFull:
		return "full"
	}
	return fmt.Sprintf("ring(%d)", int(r))
}

// Cursors locate the write position and the oldest undrained page.
type Cursors struct {
	Current int
	Upload  int
	State   RingState
}

// Recover derives the cursors from the pages alone.
//
// The page with the oldest header timestamp becomes the upload cursor;
// on equal timestamps the lowest index wins. The write cursor is the first
// page after it, in ring order, that holds no data. When no page holds
// data the write cursor starts at seed mod the page count.
func (s *Store) Recover(seed uint16) (Cursors, error) {
	start := time.Now()

	upload, err := s.oldestPage()
	if err != nil {
		return Cursors{}, fmt.Errorf("recover: %w", err)
	}

	var cur Cursors
	if upload >= 0 {
		cur = Cursors{Current: NoPage, Upload: upload, State: RingReady}

		page := upload
		for nr := 0; nr < s.numPages; nr, page = nr+1, s.Next(page) {
			ok, err := s.IsValidUploadPage(page)
			if err != nil {
				return Cursors{}, fmt.Errorf("recover: %w", err)
			}
			if !ok {
				cur.Current = page
				break
			}
		}

		if cur.Current < 0 {
			cur.Current = upload
			cur.State = RingFull
		}
	} else {
		cur = Cursors{
			Current: int(seed) % s.numPages,
			Upload:  NoPage,
			State:   RingEmpty,
		}
	}

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecoveryDuration.Observe(elapsed.Seconds())
		s.metrics.Recoveries.WithLabelValues(cur.State.String()).Inc()
	}
	s.log.Debugf("Recover: scanned %d pages in %s", s.numPages, elapsed)
	s.log.Infof("Recover: current=%d upload=%d state=%s", cur.Current, cur.Upload, cur.State)

	return cur, nil
}

// oldestPage returns the page holding data with the smallest header
// timestamp, the lowest index winning ties, or NoPage.
func (s *Store) oldestPage() (int, error) {
	oldest := NoPage
	var oldestTs uint32

	for page := 0; page < s.numPages; page++ {
		hdr, _, err := s.ReadHeader(page)
		if err != nil {
			return NoPage, err
		}
		if !s.holdsData(&hdr) {
			continue
		}
		if oldest < 0 || hdr.Timestamp < oldestTs {
			oldest = page
			oldestTs = hdr.Timestamp
		}
	}
	return oldest, nil
}
