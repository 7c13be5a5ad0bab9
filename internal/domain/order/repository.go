package order

import "context"

type Repository interface {
	// FindByExternalID looks up an order by its external order identifier;
	// ErrNotFound when absent.
	FindByExternalID(ctx context.Context, externalOrderID string) (*Order, error)

	Save(ctx context.Context, o *Order) error
}
