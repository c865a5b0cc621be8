package invitation

import (
	"context"
	"time"
)

// InvitationService defines the interface for the invitation lifecycle
type InvitationService interface {
	// Issue creates an invitation on behalf of an admin
	Issue(ctx context.Context, req IssueRequest) (Invitation, error)

	// GetByToken retrieves a pending invitation by token (public endpoint).
	// Expiry is evaluated lazily at read time.
	GetByToken(ctx context.Context, token string) (DetailResponse, error)

	// Accept consumes the invitation at most once: it transitions the record
	// to accepted, creates the directory entry and returns it with a session
	// token. Under concurrent accepts exactly one caller succeeds.
	Accept(ctx context.Context, req AcceptRequest) (AcceptResponse, error)

	// Decline removes the invitation record and its email entirely
	// (right to erasure)
	Decline(ctx context.Context, token string) error

	// ListPending lists pending invitations for the admin dashboard
	ListPending(ctx context.Context) ([]DetailResponse, error)

	// SweepExpired removes pending invitations past their expiry and returns
	// the number removed. Called by the retention scheduler.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}
