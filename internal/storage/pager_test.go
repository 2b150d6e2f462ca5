package storage

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.flashlog/internal/flash"
	"go.flashlog/internal/metrics"
)

func TestReadPageSplitsIntoChunks(t *testing.T) {
	mem := newMemory(t, 2)
	for i := range mem.Raw(1) {
		mem.Raw(1)[i] = byte(i)
	}
	spy := &spyMedium{Memory: mem}

	pager, err := NewPager(spy, 0, nil)
	require.NoError(t, err)

	for _, size := range []int{0, 1, 15, 16, 17, 33, 100, testPageSize} {
		spy.reset()
		dst := make([]byte, size)
		require.NoError(t, pager.ReadPage(1, dst))

		total, next := 0, 0
		for _, tr := range spy.reads {
			assert.LessOrEqual(t, tr.size, flash.DefaultMaxChunk)
			assert.Equal(t, next, tr.offset, "chunks must be contiguous")
			next += tr.size
			total += tr.size
		}
		assert.Equal(t, size, total)
		assert.Equal(t, mem.Raw(1)[:size], dst)
		assert.Equal(t, []int{1}, spy.selects)
	}
}

func TestSmallerChunkSize(t *testing.T) {
	spy := &spyMedium{Memory: newMemory(t, 1)}
	pager, err := NewPager(spy, 4, nil)
	require.NoError(t, err)

	require.NoError(t, pager.ReadAt(0, 10, make([]byte, 10)))
	assert.Equal(t, []transfer{{10, 4}, {14, 4}, {18, 2}}, spy.reads)
}

func TestChunkSizeAboveMediumLimit(t *testing.T) {
	_, err := NewPager(newMemory(t, 1), 32, nil)
	assert.ErrorIs(t, err, ErrChunkSize)
}

func TestPagerRangeChecks(t *testing.T) {
	pager, err := NewPager(newMemory(t, 2), 0, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, pager.ReadPage(2, make([]byte, 4)), ErrBadPage)
	assert.ErrorIs(t, pager.ReadAt(0, testPageSize-2, make([]byte, 4)), ErrOutsidePage)
	assert.ErrorIs(t, pager.WriteAt(-1, 0, []byte{1}), ErrBadPage)
}

func TestWriteAtChunksAndCommits(t *testing.T) {
	mem := newMemory(t, 2)
	spy := &spyMedium{Memory: mem}
	m := metrics.New()

	pager, err := NewPager(spy, 0, m)
	require.NoError(t, err)

	src := make([]byte, 40)
	for i := range src {
		src[i] = byte(i + 1)
	}
	require.NoError(t, pager.WriteAt(1, 100, src))

	assert.Equal(t, []transfer{{100, 16}, {116, 16}, {132, 8}}, spy.writes)
	assert.Equal(t, src, mem.Raw(1)[100:140])
	assert.Equal(t, flash.Erased, mem.Raw(1)[99])

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ChunkTransfers.WithLabelValues(metrics.OpWrite)))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.BytesTransferred.WithLabelValues(metrics.OpWrite)))

	require.NoError(t, pager.ErasePage(1))
	assert.Equal(t, flash.Erased, mem.Raw(1)[100])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageErases))
}
