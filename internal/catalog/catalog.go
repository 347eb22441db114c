package catalog

import (
	"strings"

	"github.com/hubshop/storefront/internal/models"
)

// Store holds the immutable list of sellable items for a session.
// Browsing never mutates it.
type Store struct {
	products []models.Product
}

func NewStore(products []models.Product) *Store {
	s := &Store{products: make([]models.Product, len(products))}
	copy(s.products, products)
	return s
}

// List returns the full catalog in insertion order.
func (s *Store) List() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Store) Get(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Filter returns products whose name or category contains query,
// case-insensitively. An empty query returns the full list. Pure function
// of (catalog, query), safe to recompute on every keystroke.
func (s *Store) Filter(query string) []models.Product {
	if query == "" {
		return s.List()
	}
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			out = append(out, p)
		}
	}
	return out
}
