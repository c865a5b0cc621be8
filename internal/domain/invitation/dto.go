package invitation

import (
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/validator"
)

// IssueRequest - POST /invitations
type IssueRequest struct {
	Email          string `json:"email"`
	Role           string `json:"role"`
	IssuedByUserID string `json:"-"` // From JWT - not from request body
}

func (r *IssueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !IsInvitableRole(user.Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be organizer or team_member",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcceptRequest - POST /invitations/{token}/accept
type AcceptRequest struct {
	Token    string `json:"-"` // From Chi URL param
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *AcceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	} else if !validator.IsValidInviteToken(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token format is invalid",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DetailResponse - GET /invitations/{token} and the admin list
type DetailResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	IssuedBy  string `json:"issued_by"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

func ToDetailResponse(inv Invitation) DetailResponse {
	return DetailResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Token:     inv.Token,
		IssuedBy:  inv.InvitedByUserID,
		Status:    string(inv.Status),
		ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
	}
}

// AcceptResponse for invitation acceptance result
type AcceptResponse struct {
	User        user.Response `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   int64         `json:"expires_at"`
}
