package catalog

import "context"

type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
}
