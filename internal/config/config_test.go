package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.flashlog/internal/flash"
	"go.flashlog/internal/layout"
	"go.flashlog/internal/storage"
)

func TestDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home, "")
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, filepath.Join(home, "flash.img"), cfg.Image)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultNrPages, cfg.NrPages)
	assert.Equal(t, 16, cfg.ChunkSize)
	assert.DirExists(t, filepath.Join(home, "log"))

	opts, err := cfg.StoreOptions()
	require.NoError(t, err)
	assert.Equal(t, layout.FormatV2, opts.Format)
	assert.Equal(t, storage.AcceptAnyTimestamp, opts.Policy)
}

func TestHomeFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FLASHLOG_HOME", home)

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
}

func TestYamlOverrides(t *testing.T) {
	home := t.TempDir()
	yml := `
format: v1
nr_pages: 8
page_size: 256
chunk_size: 8
timestamp_policy: reject-sentinel
log:
  level: debug
  format: json
  output_file: stderr
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yml), 0o644))

	cfg, err := LoadConfig(home, "")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.NrPages)
	assert.Equal(t, 256, cfg.Geometry().PageSize)
	assert.Equal(t, flash.DefaultMaxChunk, cfg.Geometry().MaxChunk)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.StoreOptions()
	require.NoError(t, err)
	assert.Equal(t, layout.FormatV1, opts.Format)
	assert.Equal(t, storage.RejectSentinelTimestamp, opts.Policy)
	assert.Equal(t, 8, opts.ChunkSize)
}

func TestInvalidConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: v7\n"), 0o644))

	_, err := LoadConfig(home, path)
	assert.ErrorIs(t, err, layout.ErrUnknownFormat)

	require.NoError(t, os.WriteFile(path, []byte("nr_pages: 0\n"), 0o644))
	_, err = LoadConfig(home, path)
	assert.Error(t, err)
}

func TestChunkSizeCappedByMedium(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "other.yaml")

	for _, chunk := range []string{"0", "17", "64"} {
		require.NoError(t, os.WriteFile(path, []byte("chunk_size: "+chunk+"\n"), 0o644))
		_, err := LoadConfig(home, path)
		assert.Error(t, err, chunk)
	}

	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 16\n"), 0o644))
	cfg, err := LoadConfig(home, path)
	require.NoError(t, err)
	assert.Equal(t, flash.DefaultMaxChunk, cfg.Geometry().MaxChunk)
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
