package response

import (
	"errors"
	"net/http"

	"github.com/shiftwatch/incident-backend-go/internal/domain/auth"
	"github.com/shiftwatch/incident-backend-go/internal/domain/event"
	"github.com/shiftwatch/incident-backend-go/internal/domain/invitation"
	"github.com/shiftwatch/incident-backend-go/internal/domain/report"
	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrOrganizerAccessRequired):
		Forbidden(w, "Organizer access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Gone(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrInvitationAlreadyProcessed):
		Gone(w, "Invitation has already been processed")
	case errors.Is(err, invitation.ErrEmailAlreadyRegistered):
		Conflict(w, "A user with this email already exists")
	case errors.Is(err, invitation.ErrRoleNotInvitable):
		BadRequest(w, "Role cannot be issued via invitation", nil)
	case errors.Is(err, invitation.ErrInviteNotAuthorized):
		Forbidden(w, "Only admins can send invitations")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, event.ErrEventAccessDenied):
		Forbidden(w, "Only admins and organizers can manage events")
	case errors.Is(err, event.ErrShiftEventMismatch):
		BadRequest(w, "Shift does not belong to this event", nil)
	case errors.Is(err, event.ErrInvalidRetentionDays):
		BadRequest(w, "Retention days must be a positive integer", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrNotAssignedToShift):
		Forbidden(w, "You are not assigned to this shift")
	case errors.Is(err, report.ErrReportAccessDenied):
		Forbidden(w, "Only the event organizer can view these reports")

	// Retention domain errors
	case errors.Is(err, retention.ErrInvalidPolicy):
		BadRequest(w, "Retention policy values must be positive integers", nil)
	case errors.Is(err, retention.ErrPolicyUpdateForbidden):
		Forbidden(w, "Only admins can update retention settings")
	case errors.Is(err, retention.ErrPolicyNotInitialized):
		InternalServerError(w, "Retention policy has not been initialized")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
