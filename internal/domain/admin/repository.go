package admin

import "context"

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Save inserts or replaces the record for user.Username.
	Save(ctx context.Context, user *User) error
}
