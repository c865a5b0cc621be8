package auth

import (
	"context"

	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
)

// AuthService defines the interface for login and identity lookups
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (user.Response, error)
}
