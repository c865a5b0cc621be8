package report

import "context"

// ReportService defines the interface for report submission and access
type ReportService interface {
	// Submit classifies the description for personal data and persists the
	// report with the classification attached. The submitter must be in the
	// shift's assigned-member set.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// ListByEvent returns all reports for an event. Only the event's
	// organizer may call this.
	ListByEvent(ctx context.Context, eventID, requesterID string) ([]Response, error)

	// ListMine returns the requester's own submissions.
	ListMine(ctx context.Context, userID string) ([]Response, error)
}
