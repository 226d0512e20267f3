package state

import (
	"sync"

	"github.com/atomicstack/takeoff/internal/catalog"
)

// CatalogStore holds the catalog currently offered by the form.
type CatalogStore interface {
	Catalog() *catalog.Catalog
	SetCatalog(*catalog.Catalog)
	Source() string
	SetSource(string)
	Revision() int
}

type catalogStore struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	source   string
	revision int
}

func NewCatalogStore(initial *catalog.Catalog) CatalogStore {
	if initial == nil {
		initial = catalog.Default()
	}
	return &catalogStore{catalog: initial.Clone()}
}

func (s *catalogStore) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

func (s *catalogStore) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c.Clone()
	s.revision++
}

func (s *catalogStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *catalogStore) SetSource(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = path
}

// Revision increments on every SetCatalog.
func (s *catalogStore) Revision() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
