package memory

import (
	"context"
	"sync"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
)

// ProductRepository is a read-mostly catalog stand-in, seeded up front.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewProductRepository(seed ...*domain.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[string]*domain.Product)}
	for _, p := range seed {
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

func (r *ProductRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) Put(ctx context.Context, p *domain.Product) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ID] = cloneProduct(p)
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Images = append([]string(nil), p.Images...)
	return &clone
}
