package invitation

import "errors"

var (
	ErrInvitationNotFound         = errors.New("invitation not found")
	ErrInvitationExpired          = errors.New("invitation has expired")
	ErrInvitationAlreadyProcessed = errors.New("invitation has already been processed")
	ErrEmailAlreadyRegistered     = errors.New("a user with this email already exists")
	ErrRoleNotInvitable           = errors.New("role cannot be issued via invitation")
	ErrInviteNotAuthorized        = errors.New("only admins can send invitations")
)
