package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
)

type IDGenerator interface {
	NewID() string
}

// CartRepository keeps carts in a mutex-guarded map. Find-or-create runs
// under the write lock, so concurrent first adds for a user observe a single
// active cart, matching the document store's atomic upsert.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // cart id -> cart
	idGen IDGenerator
}

func NewCartRepository(idGen IDGenerator) *CartRepository {
	return &CartRepository{
		carts: make(map[string]*domain.Cart),
		idGen: idGen,
	}
}

func (r *CartRepository) FindOrCreateActiveByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	_ = ctx
	if userID == "" {
		return nil, fmt.Errorf("cart repository: user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carts {
		if c.UserID == userID && c.Status == domain.StatusActive {
			return c.Clone(), nil
		}
	}

	c := domain.New(r.idGen.NewID(), userID)
	r.carts[c.ID] = c.Clone()
	return c, nil
}

func (r *CartRepository) FindActiveByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.carts {
		if c.UserID == userID && c.Status == domain.StatusActive {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CartRepository) FindAnyByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.carts {
		if c.UserID == userID {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CartRepository) Save(ctx context.Context, c *domain.Cart) error {
	_ = ctx
	if c == nil || c.ID == "" {
		return fmt.Errorf("cart repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.ID] = c.Clone()
	return nil
}
