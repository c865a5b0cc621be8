package retention

import "time"

// UpdateRequest - PUT /gdpr/settings. Both fields optional; present fields
// must be positive.
type UpdateRequest struct {
	DefaultRetentionDays  *int   `json:"default_retention_days,omitempty"`
	InviteExpirationHours *int   `json:"invite_expiration_hours,omitempty"`
	UpdatedByUserID       string `json:"-"` // From JWT
}

func (r *UpdateRequest) Validate() error {
	if r.DefaultRetentionDays != nil && *r.DefaultRetentionDays <= 0 {
		return ErrInvalidPolicy
	}
	if r.InviteExpirationHours != nil && *r.InviteExpirationHours <= 0 {
		return ErrInvalidPolicy
	}
	return nil
}

// Response - policy shape returned over HTTP
type Response struct {
	DefaultRetentionDays  int    `json:"default_retention_days"`
	InviteExpirationHours int    `json:"invite_expiration_hours"`
	UpdatedAt             string `json:"updated_at"`
}

func ToResponse(p Policy) Response {
	return Response{
		DefaultRetentionDays:  p.DefaultRetentionDays,
		InviteExpirationHours: p.InviteExpirationHours,
		UpdatedAt:             p.UpdatedAt.Format(time.RFC3339),
	}
}
