package event

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrEventAccessDenied    = errors.New("only admins and organizers can create events")
	ErrShiftEventMismatch   = errors.New("shift does not belong to this event")
	ErrInvalidRetentionDays = errors.New("retention days must be a positive integer")
)
