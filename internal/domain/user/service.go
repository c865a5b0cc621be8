package user

import "context"

// UserService defines the interface for directory lookups
type UserService interface {
	// List returns the member directory for shift assignment pickers
	List(ctx context.Context) ([]Response, error)
}
