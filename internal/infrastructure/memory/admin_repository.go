package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/admin"
)

type AdminRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // username -> user
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{users: make(map[string]*domain.User)}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *AdminRepository) Save(ctx context.Context, user *domain.User) error {
	_ = ctx
	if user == nil || user.Username == "" {
		return fmt.Errorf("admin repository: username is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *user
	r.users[user.Username] = &clone
	return nil
}
