package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	yml := "nr_pages: 4\npage_size: 256\nlog:\n  output_file: " + filepath.Join(home, "cli.log") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yml), 0o644))
	return home
}

func run(t *testing.T, home string, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	err := execLine(rootCmd, append([]string{"--home", home}, args...))
	require.NoError(t, closeDatabase())
	require.NoError(t, err, buf.String())
	return buf.String()
}

func TestCommandSession(t *testing.T) {
	home := newHome(t)

	out := run(t, home, "append", "--ts", "100", "--rain", "2")
	assert.Contains(t, out, "appended ts=100")

	// Every open starts a fresh page after the ones holding data.
	run(t, home, "append", "--ts", "101", "--rain", "0")

	out = run(t, home, "recover")
	assert.Contains(t, out, "state:   ready")
	assert.Contains(t, out, "upload ts: 100")

	out = run(t, home, "pending")
	assert.Contains(t, out, "EPOCH: 100\nRain: 2\n")
	assert.NotContains(t, out, "EPOCH: 101")

	out = run(t, home, "read", "0", "99")
	assert.Contains(t, out, "past the end")

	out = run(t, home, "upload")
	assert.Contains(t, out, "uploaded 1 samples")

	out = run(t, home, "recover")
	assert.Contains(t, out, "upload ts: 101")

	out = run(t, home, "scan", "--list")
	assert.Contains(t, out, "4 pages, 1 with data")
	assert.Contains(t, out, "ts=101 records=1")

	out = run(t, home, "dump", "0")
	assert.Contains(t, out, "page 0 blake2b=")

	out = run(t, home, "stats")
	assert.Contains(t, out, `flashlog_recoveries_total{state="ready"} 1`)

	out = run(t, home, "erase", "--all")
	assert.Contains(t, out, "erased 4 pages")

	out = run(t, home, "recover")
	assert.Contains(t, out, "state:   empty")
	assert.Contains(t, out, "upload:  -1")
}

func TestReadBadArgs(t *testing.T) {
	home := newHome(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	err := execLine(rootCmd, []string{"--home", home, "read", "x", "0"})
	require.NoError(t, closeDatabase())
	assert.Error(t, err)
}

func TestInitCreatesImage(t *testing.T) {
	home := newHome(t)

	out := run(t, home, "init")
	assert.Contains(t, out, "flash.img: 4 pages of 256 bytes")

	info, err := os.Stat(filepath.Join(home, "flash.img"))
	require.NoError(t, err)
	assert.Equal(t, int64(4*256), info.Size())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err = execLine(rootCmd, []string{"--home", home, "init"})
	require.NoError(t, closeDatabase())
	assert.ErrorIs(t, err, os.ErrExist)

	out = run(t, home, "recover")
	assert.Contains(t, out, "state:   empty")
}

func TestSessionFlagsStartFromDefaults(t *testing.T) {
	home := newHome(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	defer func() { require.NoError(t, closeDatabase()) }()

	line := func(args ...string) string {
		t.Helper()
		buf.Reset()
		require.NoError(t, execLine(rootCmd, args), buf.String())
		return buf.String()
	}

	line("--home", home, "append", "--ts", "100", "--rain", "7")
	line("append")

	out := line("pending")
	assert.Equal(t, 1, strings.Count(out, "EPOCH: 100\n"))
	assert.Equal(t, 1, strings.Count(out, "Rain: 7\n"))
	assert.Contains(t, out, "Rain: 0\n")

	out = line("erase", "--all")
	assert.Contains(t, out, "erased 4 pages")

	out = line("erase", "3")
	assert.Contains(t, out, "erased 1 pages")

	out = line("scan")
	assert.Contains(t, out, "4 pages, 0 with data")
}
