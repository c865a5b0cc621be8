package report

import (
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/pkg/validator"
)

// SubmitRequest - POST /reports
type SubmitRequest struct {
	EventID           string `json:"event_id"`
	ShiftID           string `json:"shift_id"`
	Description       string `json:"incident_description"`
	SubmittedByUserID string `json:"-"` // From JWT
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_id",
			Message: "event_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "incident_description",
			Message: "incident_description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Response - report shape returned over HTTP
type Response struct {
	ID                 string   `json:"id"`
	EventID            string   `json:"event_id"`
	ShiftID            string   `json:"shift_id"`
	SubmittedBy        string   `json:"submitted_by"`
	Description        string   `json:"incident_description"`
	HasPotentialPII    bool     `json:"has_potential_pii"`
	DetectedCategories []string `json:"detected_categories"`
	PIIConfidence      string   `json:"pii_confidence"`
	CreatedAt          string   `json:"created_at"`
}

func ToResponse(r Report) Response {
	return Response{
		ID:                 r.ID,
		EventID:            r.EventID,
		ShiftID:            r.ShiftID,
		SubmittedBy:        r.SubmittedByUserID,
		Description:        r.Description,
		HasPotentialPII:    r.HasPotentialPII,
		DetectedCategories: r.DetectedCategories,
		PIIConfidence:      string(r.PIIConfidence),
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(reports []Report) []Response {
	responses := make([]Response, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, ToResponse(r))
	}
	return responses
}

// SubmitResponse carries the stored report plus a user-facing warning when
// the classifier flagged potential personal data.
type SubmitResponse struct {
	Report     Response `json:"report"`
	PIIWarning string   `json:"pii_warning,omitempty"`
}
