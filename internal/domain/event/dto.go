package event

import (
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/pkg/validator"
)

// CreateRequest - POST /events
type CreateRequest struct {
	Name          string `json:"name"`
	Date          string `json:"date"` // YYYY-MM-DD
	RetentionDays *int   `json:"retention_days,omitempty"`
	OrganizerID   string `json:"-"` // From JWT
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.RetentionDays != nil && *r.RetentionDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "retention_days",
			Message: "retention_days must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateShiftRequest - POST /events/{id}/shifts
type CreateShiftRequest struct {
	EventID           string   `json:"-"` // From Chi URL param
	Name              string   `json:"name"`
	AssignedMemberIDs []string `json:"team_members"`
	StartTime         *string  `json:"start_time,omitempty"`
	EndTime           *string  `json:"end_time,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_id",
			Message: "event_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.AssignedMemberIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "team_members",
			Message: "at least one team member must be assigned",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Response - event shape returned over HTTP
type Response struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	OrganizerID   string `json:"organizer_id"`
	RetentionDays *int   `json:"retention_days,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func ToResponse(e Event) Response {
	return Response{
		ID:            e.ID,
		Name:          e.Name,
		Date:          e.Date.Format("2006-01-02"),
		OrganizerID:   e.OrganizerID,
		RetentionDays: e.RetentionDays,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(events []Event) []Response {
	responses := make([]Response, 0, len(events))
	for _, e := range events {
		responses = append(responses, ToResponse(e))
	}
	return responses
}

// ShiftResponse - shift shape returned over HTTP
type ShiftResponse struct {
	ID                string   `json:"id"`
	EventID           string   `json:"event_id"`
	Name              string   `json:"name"`
	AssignedMemberIDs []string `json:"team_members"`
	StartTime         *string  `json:"start_time,omitempty"`
	EndTime           *string  `json:"end_time,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:                s.ID,
		EventID:           s.EventID,
		Name:              s.Name,
		AssignedMemberIDs: s.AssignedMemberIDs,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
	}
	if s.StartTime != nil {
		formatted := s.StartTime.Format(time.RFC3339)
		resp.StartTime = &formatted
	}
	if s.EndTime != nil {
		formatted := s.EndTime.Format(time.RFC3339)
		resp.EndTime = &formatted
	}
	return resp
}
