package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

// MemoryProductRepo keeps the catalog in process memory, in insertion order.
type MemoryProductRepo struct {
	mu         sync.RWMutex
	products   []models.Product
	byID       map[string]int
	categories []string
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{byID: make(map[string]int)}
}

func (r *MemoryProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *MemoryProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

func (r *MemoryProductRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories), nil
}

func (r *MemoryProductRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// ReplaceAll installs a new catalog. Later duplicates of an ID shadow earlier ones
// for lookups but are kept in the listing.
func (r *MemoryProductRepo) ReplaceAll(_ context.Context, products []models.Product, categories []string) error {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = slices.Clone(products)
	r.categories = slices.Clone(categories)
	r.byID = byID
	return nil
}
