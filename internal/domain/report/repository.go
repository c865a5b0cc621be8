package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	Create(ctx context.Context, r Report) (Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
	ListByEvent(ctx context.Context, eventID string) ([]Report, error)
	ListBySubmitter(ctx context.Context, userID string) ([]Report, error)

	// DeleteExpired removes reports whose event retention window has elapsed
	// at now, using defaultRetentionDays where the event carries no override,
	// and reports whose event no longer exists. Returns the number of rows
	// removed. Each deletion is independently idempotent, so a sweep
	// interrupted partway leaves valid state.
	DeleteExpired(ctx context.Context, now time.Time, defaultRetentionDays int) (int64, error)
}
