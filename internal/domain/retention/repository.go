package retention

import "context"

// PolicyRepository defines the interface for retention policy data access.
// The policy is a singleton row.
type PolicyRepository interface {
	// Get retrieves the current policy
	Get(ctx context.Context) (Policy, error)

	// Update applies a partial update; nil fields keep their current value.
	// Returns the resulting policy.
	Update(ctx context.Context, defaultRetentionDays, inviteExpirationHours *int) (Policy, error)

	// EnsureDefaults seeds the singleton row if it does not exist yet.
	// Called once at startup; failure aborts initialization.
	EnsureDefaults(ctx context.Context) error
}
