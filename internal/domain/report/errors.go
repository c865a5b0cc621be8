package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrNotAssignedToShift = errors.New("user not assigned to this shift")
	ErrReportAccessDenied = errors.New("only the submitter or the event organizer can view reports")
)
