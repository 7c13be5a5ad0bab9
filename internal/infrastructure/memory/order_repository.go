package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/order"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order // order id -> order
	byExt  map[string]string        // external order id -> order id
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*domain.Order),
		byExt:  make(map[string]string),
	}
}

func (r *OrderRepository) FindByExternalID(ctx context.Context, externalOrderID string) (*domain.Order, error) {
	_ = ctx
	if externalOrderID == "" {
		return nil, domain.ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orderID, ok := r.byExt[externalOrderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ord, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ord.Clone(), nil
}

func (r *OrderRepository) Save(ctx context.Context, ord *domain.Order) error {
	_ = ctx
	if ord == nil || ord.ID == "" {
		return fmt.Errorf("order repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[ord.ID] = ord.Clone()
	if ord.ExternalOrderID != "" {
		r.byExt[ord.ExternalOrderID] = ord.ID
	}
	return nil
}
