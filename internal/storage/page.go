package storage

// Page is a full in-memory copy of one medium page.
type Page struct {
	ID   int
	Data []byte
}

func NewPage(size int) *Page {
	return &Page{
		Data: make([]byte, size),
	}
}

// LoadPage reads a whole page through the chunked adapter.
func (s *Store) LoadPage(id int) (*Page, error) {
	p := NewPage(s.layout.PageSize)
	p.ID = id
	if err := s.pager.ReadPage(id, p.Data); err != nil {
		return nil, err
	}
	return p, nil
}
