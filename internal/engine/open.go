package engine

import (
	"fmt"
	"math/rand/v2"

	"go.flashlog/internal/config"
	"go.flashlog/internal/flash"
	"go.flashlog/internal/logger"
	"go.flashlog/internal/metrics"
	"go.flashlog/internal/storage"
)

// Open opens (or creates) the flash image named by cfg and recovers the
// log cursors from it.
func Open(cfg *config.Config) (*Database, error) {
	log, lErr := logger.FromConfig(cfg.Log)
	if lErr != nil {
		return nil, fmt.Errorf("failed to open log: %w", lErr)
	}

	opts, err := cfg.StoreOptions()
	if err != nil {
		log.Close()
		return nil, err
	}

	img, iErr := flash.OpenFile(cfg.Image, cfg.Geometry())
	if iErr != nil {
		log.Errorf("Open: %v", iErr)
		log.Close()
		return nil, iErr
	}

	m := metrics.New()
	opts.Logger = log.With("image", cfg.Image)
	opts.Metrics = m

	store, sErr := storage.Open(img, opts)
	if sErr != nil {
		img.Close()
		log.Close()
		return nil, sErr
	}

	eng, eErr := NewEngine(store, uint16(rand.UintN(1<<16)), log)
	if eErr != nil {
		img.Close()
		log.Close()
		return nil, eErr
	}

	return &Database{
		engine:  eng,
		image:   img,
		metrics: m,
		log:     log,
	}, nil
}
