package retention

import "time"

// Default values seeded at startup.
const (
	DefaultRetentionDays         = 90
	DefaultInviteExpirationHours = 72
)

// Policy is the single mutable data-protection record: how long reports
// outlive their event and how long invitations stay open.
type Policy struct {
	DefaultRetentionDays  int
	InviteExpirationHours int
	UpdatedAt             time.Time
}

// InviteExpiry computes an invitation's expiry instant from now.
func (p *Policy) InviteExpiry(now time.Time) time.Time {
	return now.Add(time.Duration(p.InviteExpirationHours) * time.Hour)
}
