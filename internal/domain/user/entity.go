package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"       // Club administrator - full access
	RoleOrganizer  Role = "organizer"   // Runs events, reads their reports
	RoleTeamMember Role = "team_member" // Works shifts, submits reports
)

// User represents an entry in the member directory. Every non-admin account
// enters the directory through an accepted invitation.
type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	InvitedByUserID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is a club administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsOrganizer checks if user is organizer or admin
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer || u.Role == RoleAdmin
}

// CanManageEvents checks if user can create events and shifts
func (u *User) CanManageEvents() bool {
	return u.IsOrganizer()
}

// CanInvite checks if user can issue invitations
func (u *User) CanInvite() bool {
	return u.IsAdmin()
}

// CanManageRetention checks if user can change data-retention settings
func (u *User) CanManageRetention() bool {
	return u.IsAdmin()
}
