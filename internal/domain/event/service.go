package event

import "context"

// EventService defines the interface for event and shift management
type EventService interface {
	Create(ctx context.Context, req CreateRequest) (Event, error)

	// List returns the events visible to the requester: admins and
	// organizers see everything, team members only events they hold a
	// shift in.
	List(ctx context.Context, requesterID string) ([]Event, error)

	GetByID(ctx context.Context, id string) (Event, error)

	CreateShift(ctx context.Context, req CreateShiftRequest) (Shift, error)
	ListShifts(ctx context.Context, eventID string) ([]Shift, error)
}
