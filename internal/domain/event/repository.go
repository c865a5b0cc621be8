package event

import "context"

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	List(ctx context.Context) ([]Event, error)
	// ListByMember lists events where userID appears in any shift's
	// assigned set
	ListByMember(ctx context.Context, userID string) ([]Event, error)
}

// ShiftRepository defines the interface for shift data access
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	ListByEvent(ctx context.Context, eventID string) ([]Shift, error)
}
