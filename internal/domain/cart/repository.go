package cart

import "context"

type Repository interface {
	// FindOrCreateActiveByUser returns the user's active cart, creating one
	// atomically when none exists. Concurrent first adds must observe a
	// single cart.
	FindOrCreateActiveByUser(ctx context.Context, userID string) (*Cart, error)

	// FindActiveByUser returns the active cart matching {id, user} scoping
	// rules of the caller; ErrNotFound when absent.
	FindActiveByUser(ctx context.Context, userID string) (*Cart, error)

	// FindAnyByUser returns the user's cart regardless of status.
	FindAnyByUser(ctx context.Context, userID string) (*Cart, error)

	Save(ctx context.Context, c *Cart) error
}
