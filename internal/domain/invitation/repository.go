package invitation

import (
	"context"
	"time"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation record
	Create(ctx context.Context, inv Invitation) (Invitation, error)

	// GetByToken retrieves an invitation by its token
	GetByToken(ctx context.Context, token string) (Invitation, error)

	// AcceptPending transitions a pending, unexpired invitation to accepted in
	// a single guarded statement and returns the updated row. Returns
	// ErrInvitationNotFound when no row was in a transitionable state; the
	// caller classifies the actual reason by re-reading the token.
	AcceptPending(ctx context.Context, token string, now time.Time) (Invitation, error)

	// Delete removes an invitation record entirely (decline / erasure)
	Delete(ctx context.Context, id string) error

	// DeleteExpiredPending removes all pending invitations whose expiry lies
	// before now and returns the number of rows removed
	DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error)

	// ListPending lists all pending invitations (admin dashboard)
	ListPending(ctx context.Context) ([]Invitation, error)
}
