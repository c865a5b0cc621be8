package invitation

import (
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
)

// Status represents the state of an invitation. Transitions are monotonic:
// once an invitation leaves pending it never changes state again.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

// Invitation represents a time-limited offer to join the member directory.
// Declined and expired invitations are erased from storage; the status
// constants above still name those terminal states for the transition checks
// shared by the request path and the retention sweep.
type Invitation struct {
	ID              string
	Email           string
	Role            user.Role // organizer or team_member; admins are never invited
	Token           string
	InvitedByUserID string
	Status          Status
	ExpiresAt       time.Time
	AcceptedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsExpired checks if the invitation has expired at the given instant
// (query-time check, independent of the periodic sweep)
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// CanBeAccepted checks if the invitation can still be accepted
func (i *Invitation) CanBeAccepted(now time.Time) bool {
	return i.Status == StatusPending && !i.IsExpired(now)
}

// IsProcessed checks if the invitation has reached a terminal state
func (i *Invitation) IsProcessed() bool {
	return i.Status != StatusPending
}

// InvitableRoles are the only roles an invitation may carry.
var InvitableRoles = []user.Role{user.RoleOrganizer, user.RoleTeamMember}

// IsInvitableRole reports whether role may be issued via invitation.
func IsInvitableRole(role user.Role) bool {
	for _, r := range InvitableRoles {
		if r == role {
			return true
		}
	}
	return false
}
