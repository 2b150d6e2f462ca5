package engine

import (
	"go.flashlog/internal/flash"
	"go.flashlog/internal/logger"
	"go.flashlog/internal/metrics"
	"go.flashlog/internal/sample"
	"go.flashlog/internal/storage"
)

type Database struct {
	engine  *Engine
	image   *flash.File
	metrics *metrics.Metrics
	log     *logger.Logger
}

func (db *Database) Append(s sample.Sample) error {
	return db.engine.Append(s)
}

func (db *Database) Pending() ([]sample.Sample, error) {
	return db.engine.Pending()
}

func (db *Database) Upload(send func([]sample.Sample) error) (int, error) {
	return db.engine.Upload(send)
}

func (db *Database) Cursors() storage.Cursors {
	return db.engine.Cursors()
}

func (db *Database) Store() *storage.Store {
	return db.engine.Store()
}

func (db *Database) Metrics() *metrics.Metrics {
	return db.metrics
}

func (db *Database) Close() error {
	err := db.image.Close()
	if lErr := db.log.Close(); err == nil {
		err = lErr
	}
	return err
}
