package report

import (
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/pkg/pii"
)

// Report is an incident description submitted from a shift. Rows are
// immutable after creation; the retention sweep is the only thing that
// removes them.
type Report struct {
	ID                 string
	EventID            string
	ShiftID            string
	SubmittedByUserID  string
	Description        string
	HasPotentialPII    bool
	DetectedCategories []string
	PIIConfidence      pii.Confidence
	CreatedAt          time.Time
}
