package retention

import (
	"context"
	"time"
)

// PolicyService defines the interface for retention policy management and
// the purge sweeps driven by the scheduler
type PolicyService interface {
	// Get returns the current policy. Reads never fail with a policy error;
	// the singleton is seeded at startup.
	Get(ctx context.Context) (Policy, error)

	// Update applies an admin-authorized partial update
	Update(ctx context.Context, req UpdateRequest) (Policy, error)

	// PurgeExpiredReports deletes reports whose retention window has elapsed
	// (or whose event is gone) and returns the count
	PurgeExpiredReports(ctx context.Context, now time.Time) (int64, error)
}
