package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"go.flashlog/internal/flash"
	"go.flashlog/internal/layout"
	"go.flashlog/internal/logger"
	"go.flashlog/internal/storage"
)

// Defaults match the 16 Mbit serial dataflash the log was laid out for.
const (
	DefaultPageSize = 528
	DefaultNrPages  = 4096
)

type Config struct {
	Home            string        `yaml:"home"`
	Image           string        `yaml:"image"`
	Format          string        `yaml:"format"`
	PageSize        int           `yaml:"page_size"`
	NrPages         int           `yaml:"nr_pages"`
	ChunkSize       int           `yaml:"chunk_size"`
	TimestampPolicy string        `yaml:"timestamp_policy"`
	Log             logger.Config `yaml:"log"`
}

func LoadConfig(homeOverride, configOverride string) (*Config, error) {
	paths, err := ResolvePaths(homeOverride, configOverride)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Home:            paths.Home,
		Image:           paths.Image,
		Format:          layout.FormatV2.String(),
		PageSize:        DefaultPageSize,
		NrPages:         DefaultNrPages,
		ChunkSize:       flash.DefaultMaxChunk,
		TimestampPolicy: storage.AcceptAnyTimestamp.String(),
		Log: logger.Config{
			Level:      "info",
			Format:     "console",
			OutputFile: filepath.Join(paths.LogDir, "flashlog.log"),
		},
	}

	f, err := os.Open(paths.Config)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", paths.Config, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) || configOverride != "" {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := layout.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := storage.ParseTimestampPolicy(c.TimestampPolicy); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.ChunkSize <= 0 || c.ChunkSize > flash.DefaultMaxChunk {
		return fmt.Errorf("chunk_size %d out of range 1..%d", c.ChunkSize, flash.DefaultMaxChunk)
	}
	if c.Image == "" {
		return fmt.Errorf("image path is empty")
	}
	return c.Geometry().Validate()
}

func (c *Config) Geometry() flash.Geometry {
	return flash.Geometry{
		PageSize: c.PageSize,
		NumPages: c.NrPages,
		MaxChunk: flash.DefaultMaxChunk,
	}
}

// StoreOptions converts the config into storage options. Logger and
// metrics are left to the caller.
func (c *Config) StoreOptions() (storage.Options, error) {
	format, err := layout.ParseFormat(c.Format)
	if err != nil {
		return storage.Options{}, err
	}
	policy, err := storage.ParseTimestampPolicy(c.TimestampPolicy)
	if err != nil {
		return storage.Options{}, err
	}
	return storage.Options{
		Format:    format,
		ChunkSize: c.ChunkSize,
		Policy:    policy,
	}, nil
}
