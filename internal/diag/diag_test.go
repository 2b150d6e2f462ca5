package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.flashlog/internal/flash"
	"go.flashlog/internal/layout"
	"go.flashlog/internal/metrics"
	"go.flashlog/internal/storage"
)

func newStore(t *testing.T, pageSize, pages int, m *metrics.Metrics) *storage.Store {
	t.Helper()
	mem, err := flash.NewMemory(flash.Geometry{PageSize: pageSize, NumPages: pages, MaxChunk: flash.DefaultMaxChunk})
	require.NoError(t, err)
	s, err := storage.Open(mem, storage.Options{Format: layout.FormatV1, Metrics: m})
	require.NoError(t, err)
	return s
}

func TestDumpPage(t *testing.T) {
	// 50 bytes: three full lines and a clipped one.
	s := newStore(t, 50, 2, nil)
	require.NoError(t, s.WriteHeader(1, 0x01020304))

	var buf bytes.Buffer
	require.NoError(t, DumpPage(&buf, s, 1))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "page 1 blake2b="))
	assert.True(t, strings.HasPrefix(lines[1], "0000  04 03 02 01 01 00 00 00 53 4f 44 41 51 00 ff ff"))
	assert.Equal(t, "0030  ff ff", lines[4])
}

func TestDumpNegativePage(t *testing.T) {
	s := newStore(t, 64, 2, nil)

	var buf bytes.Buffer
	require.NoError(t, DumpPage(&buf, s, storage.NoPage))
	assert.Zero(t, buf.Len())
}

func TestPageDigestChangesWithContent(t *testing.T) {
	s := newStore(t, 64, 2, nil)

	a, err := PageDigest(s, 0)
	require.NoError(t, err)
	b, err := PageDigest(s, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, s.WriteHeader(1, 7))
	b, err = PageDigest(s, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestReadAllPages(t *testing.T) {
	m := metrics.New()
	s := newStore(t, 128, 8, m)
	require.NoError(t, s.WriteHeader(3, 1))
	require.NoError(t, s.WriteHeader(6, 2))

	res, err := ReadAllPages(s)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Pages)
	assert.Equal(t, 2, res.Valid)
	assert.Equal(t, 1, testutil.CollectAndCount(m.PageScanDuration))
}

func TestDescribe(t *testing.T) {
	s := newStore(t, 128, 2, nil)
	require.NoError(t, s.WriteHeader(0, 9))
	for i := 0; i < 2; i++ {
		require.NoError(t, s.WriteRecord(0, i, &layout.Record{Timestamp: uint32(10 + i)}))
	}

	info, err := Describe(s, 0)
	require.NoError(t, err)
	assert.Equal(t, PageInfo{Page: 0, Valid: true, Timestamp: 9, Records: 2}, info)

	info, err = Describe(s, 1)
	require.NoError(t, err)
	assert.False(t, info.Valid)
	assert.Zero(t, info.Records)
}
