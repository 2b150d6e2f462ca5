package flash

// Memory is a volatile medium. New pages start erased.
type Memory struct {
	geo   Geometry
	pages [][]byte
	buf   pageBuffer
}

func NewMemory(geo Geometry) (*Memory, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	pages := make([][]byte, geo.NumPages)
	for i := range pages {
		pages[i] = make([]byte, geo.PageSize)
		fillErased(pages[i])
	}

	return &Memory{
		geo:   geo,
		pages: pages,
		buf:   newPageBuffer(geo.PageSize, geo.MaxChunk),
	}, nil
}

func (m *Memory) SelectPageForRead(page int) error {
	if err := checkPage(page, m.geo.NumPages); err != nil {
		return err
	}
	copy(m.buf.data, m.pages[page])
	m.buf.selected = page
	return nil
}

func (m *Memory) ReadChunk(offset int, dst []byte) error {
	return m.buf.read(offset, dst)
}

func (m *Memory) WriteChunk(offset int, src []byte) error {
	return m.buf.write(offset, src)
}

func (m *Memory) CommitPage(page int) error {
	if err := checkPage(page, m.geo.NumPages); err != nil {
		return err
	}
	if m.buf.selected < 0 {
		return ErrNoPageSelected
	}
	copy(m.pages[page], m.buf.data)
	return nil
}

func (m *Memory) ErasePage(page int) error {
	if err := checkPage(page, m.geo.NumPages); err != nil {
		return err
	}
	fillErased(m.pages[page])
	if m.buf.selected == page {
		m.buf.selected = -1
	}
	return nil
}

// Raw exposes the backing bytes of a page. Test fixtures use it to plant
// content without going through the buffer.
func (m *Memory) Raw(page int) []byte {
	return m.pages[page]
}

func (m *Memory) PageSize() int { return m.geo.PageSize }
func (m *Memory) NumPages() int { return m.geo.NumPages }
func (m *Memory) MaxChunk() int { return m.geo.MaxChunk }
