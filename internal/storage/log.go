package storage

import (
	"fmt"

	"go.flashlog/internal/layout"
)

// Log appends records at the write cursor and hands out the oldest page
// for upload. Pages are filled one slot after another and advanced in
// ring order; a drained upload page is erased so it can be reused.
type Log struct {
	store *Store
	cur   Cursors
	// next free slot of cur.Current; zero means the page is not opened yet
	slot int
}

// OpenLog recovers the cursors from the medium.
func OpenLog(store *Store, seed uint16) (*Log, error) {
	cur, err := store.Recover(seed)
	if err != nil {
		return nil, err
	}
	return &Log{store: store, cur: cur}, nil
}

func (l *Log) Cursors() Cursors { return l.cur }

// Slot is the next slot to be written in the current page.
func (l *Log) Slot() int { return l.slot }

// Append writes rec at the write cursor. The first record of a page opens
// it with a header stamped with the record's timestamp.
func (l *Log) Append(rec *layout.Record) error {
	if !layout.IsValidRecord(rec) {
		return ErrInvalidRecord
	}
	if l.cur.State == RingFull {
		return ErrRingFull
	}

	page := l.cur.Current
	if l.slot == 0 {
		// Stale slot bytes from an interrupted erase or a half-written page
		// would read back as records.
		if err := l.store.pager.ErasePage(page); err != nil {
			return fmt.Errorf("open page %d: %w", page, err)
		}
		if err := l.store.WriteHeader(page, rec.Timestamp); err != nil {
			return fmt.Errorf("open page %d: %w", page, err)
		}
		if l.cur.Upload == NoPage {
			l.cur.Upload = page
		}
		l.cur.State = RingReady
	}

	if err := l.store.WriteRecord(page, l.slot, rec); err != nil {
		return err
	}
	l.slot++

	if l.slot < l.store.RecordsPerPage() {
		return nil
	}
	return l.advance()
}

// advance moves the write cursor past a full page.
func (l *Log) advance() error {
	next := l.store.Next(l.cur.Current)
	l.cur.Current = next
	l.slot = 0

	busy, err := l.store.IsValidUploadPage(next)
	if err != nil {
		return err
	}
	if busy {
		l.cur.State = RingFull
		l.store.log.Warnf("Log: ring full at page %d, upload page %d", next, l.cur.Upload)
	}
	return nil
}

// UploadBusy reports whether the upload page is the page still being
// written.
func (l *Log) UploadBusy() bool {
	return l.cur.Upload != NoPage && l.cur.Upload == l.cur.Current && l.slot > 0
}

// Seal closes a partly written current page so the writer moves on to the
// next page. The unused slots of the sealed page stay empty.
func (l *Log) Seal() error {
	if l.slot == 0 {
		return nil
	}
	return l.advance()
}

// UploadBatch returns the valid records of the upload page in slot order,
// stopping at the first empty slot. It returns nil when there is nothing
// to upload.
func (l *Log) UploadBatch() ([]layout.Record, error) {
	if l.cur.Upload == NoPage {
		return nil, nil
	}

	var batch []layout.Record
	for nth := 0; l.store.InBounds(nth); nth++ {
		var rec layout.Record
		ok, err := l.store.ReadRecord(l.cur.Upload, nth, &rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		batch = append(batch, rec)
	}
	return batch, nil
}

// ReleaseUpload erases the drained upload page and moves the upload
// cursor to the page with the oldest remaining data, as Recover would.
func (l *Log) ReleaseUpload() error {
	page := l.cur.Upload
	if page == NoPage {
		return nil
	}
	if l.UploadBusy() {
		return ErrUploadBusy
	}

	if err := l.store.pager.ErasePage(page); err != nil {
		return err
	}

	upload, err := l.store.oldestPage()
	if err != nil {
		return err
	}
	l.cur.Upload = upload

	if l.cur.State == RingFull {
		busy, err := l.store.IsValidUploadPage(l.cur.Current)
		if err != nil {
			return err
		}
		if !busy {
			l.cur.State = RingReady
			l.slot = 0
		}
	}
	if l.cur.Upload == NoPage && l.slot == 0 {
		l.cur.State = RingEmpty
	}

	l.store.log.Debugf("Log: released page %d, upload=%d current=%d", page, l.cur.Upload, l.cur.Current)
	return nil
}
