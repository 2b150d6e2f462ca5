package engine

import (
	"fmt"

	"go.flashlog/internal/logger"
	"go.flashlog/internal/sample"
	"go.flashlog/internal/storage"
)

// Engine speaks samples on top of the record log.
type Engine struct {
	store *storage.Store
	log   *storage.Log
	lg    *logger.Logger
}

func NewEngine(store *storage.Store, seed uint16, lg *logger.Logger) (*Engine, error) {
	l, err := storage.OpenLog(store, seed)
	if err != nil {
		return nil, err
	}
	return &Engine{store: store, log: l, lg: lg}, nil
}

func (e *Engine) Append(s sample.Sample) error {
	rec := s.Record()
	if err := e.log.Append(&rec); err != nil {
		e.lg.Errorf("Append: ts=%d: %v", s.Timestamp, err)
		return err
	}
	return nil
}

// Pending returns the samples waiting in the upload page.
func (e *Engine) Pending() ([]sample.Sample, error) {
	batch, err := e.log.UploadBatch()
	if err != nil {
		return nil, err
	}

	out := make([]sample.Sample, 0, len(batch))
	for i := range batch {
		out = append(out, sample.FromRecord(&batch[i]))
	}
	return out, nil
}

// Upload hands the pending samples to send and releases the page once
// send succeeds.
func (e *Engine) Upload(send func([]sample.Sample) error) (int, error) {
	pending, err := e.Pending()
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	// The page being written is closed first, otherwise the release
	// below fails after send has already gone out.
	if e.log.UploadBusy() {
		if err := e.log.Seal(); err != nil {
			return 0, err
		}
	}

	page := e.log.Cursors().Upload
	if err := send(pending); err != nil {
		return 0, fmt.Errorf("upload page %d: %w", page, err)
	}
	if err := e.log.ReleaseUpload(); err != nil {
		return 0, err
	}

	e.lg.Infof("Upload: page %d, %d samples", page, len(pending))
	return len(pending), nil
}

func (e *Engine) Cursors() storage.Cursors {
	return e.log.Cursors()
}

func (e *Engine) Store() *storage.Store {
	return e.store
}
