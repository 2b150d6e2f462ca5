package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.flashlog/internal/flash"
	"go.flashlog/internal/layout"
)

const testPageSize = 528

// spyMedium records every transfer issued to the wrapped medium.
type spyMedium struct {
	*flash.Memory
	selects []int
	reads   []transfer
	writes  []transfer
}

type transfer struct {
	offset int
	size   int
}

func (s *spyMedium) SelectPageForRead(page int) error {
	s.selects = append(s.selects, page)
	return s.Memory.SelectPageForRead(page)
}

func (s *spyMedium) ReadChunk(offset int, dst []byte) error {
	s.reads = append(s.reads, transfer{offset, len(dst)})
	return s.Memory.ReadChunk(offset, dst)
}

func (s *spyMedium) WriteChunk(offset int, src []byte) error {
	s.writes = append(s.writes, transfer{offset, len(src)})
	return s.Memory.WriteChunk(offset, src)
}

func (s *spyMedium) reset() {
	s.selects, s.reads, s.writes = nil, nil, nil
}

func newMemory(t *testing.T, pages int) *flash.Memory {
	t.Helper()
	m, err := flash.NewMemory(flash.Geometry{PageSize: testPageSize, NumPages: pages, MaxChunk: flash.DefaultMaxChunk})
	require.NoError(t, err)
	return m
}

func newStore(t *testing.T, m flash.Medium, opts Options) *Store {
	t.Helper()
	if opts.Format == 0 {
		opts.Format = layout.FormatV1
	}
	s, err := Open(m, opts)
	require.NoError(t, err)
	return s
}

// plantHeader writes a header straight into the backing bytes.
func plantHeader(t *testing.T, m *flash.Memory, f layout.Format, page int, ts uint32) {
	t.Helper()
	l, err := layout.New(f, m.PageSize())
	require.NoError(t, err)
	hdr := l.NewHeader(ts, page)
	require.NoError(t, l.EncodeHeader(m.Raw(page), &hdr))
}

func payload(b byte) []byte {
	p := make([]byte, layout.PayloadSize)
	for i := range p {
		p[i] = b + byte(i)
	}
	return p
}
