package event

import "time"

// Event is a club event that owns shifts and, transitively, incident
// reports. RetentionDays optionally overrides the global default for this
// event's reports.
type Event struct {
	ID            string
	Name          string
	Date          time.Time
	OrganizerID   string
	RetentionDays *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReportExpiry computes the instant the event's reports must be purged,
// given the global default retention window.
func (e *Event) ReportExpiry(defaultRetentionDays int) time.Time {
	days := defaultRetentionDays
	if e.RetentionDays != nil {
		days = *e.RetentionDays
	}
	return e.Date.AddDate(0, 0, days)
}

// Shift is a staffed slot within an event. AssignedMemberIDs is the set of
// user IDs allowed to submit reports for this shift.
type Shift struct {
	ID                string
	EventID           string
	Name              string
	AssignedMemberIDs []string
	StartTime         *time.Time
	EndTime           *time.Time
	CreatedAt         time.Time
}

// HasMember checks if userID is part of the shift's assigned set
func (s *Shift) HasMember(userID string) bool {
	for _, id := range s.AssignedMemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
