package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shiftwatch/incident-backend-go/internal/domain/event"
	"github.com/shiftwatch/incident-backend-go/internal/domain/report"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/pii"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	eventRepo  event.EventRepository
	shiftRepo  event.ShiftRepository
	userRepo   user.UserRepository
}

func NewReportService(
	reportRepo report.ReportRepository,
	eventRepo event.EventRepository,
	shiftRepo event.ShiftRepository,
	userRepo user.UserRepository,
) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		eventRepo:  eventRepo,
		shiftRepo:  shiftRepo,
		userRepo:   userRepo,
	}
}

// Submit implements report.ReportService. The description is scanned for
// personal data before persisting; the result is stored alongside the report
// so the retention dashboard can surface flagged submissions.
func (s *ReportServiceImpl) Submit(ctx context.Context, req report.SubmitRequest) (report.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SubmitResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.SubmittedByUserID); err != nil {
		return report.SubmitResponse{}, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return report.SubmitResponse{}, err
	}
	if shift.EventID != req.EventID {
		return report.SubmitResponse{}, event.ErrShiftEventMismatch
	}
	if !shift.HasMember(req.SubmittedByUserID) {
		return report.SubmitResponse{}, report.ErrNotAssignedToShift
	}

	result := pii.Classify(req.Description)

	created, err := s.reportRepo.Create(ctx, report.Report{
		ID:                 uuid.NewString(),
		EventID:            req.EventID,
		ShiftID:            req.ShiftID,
		SubmittedByUserID:  req.SubmittedByUserID,
		Description:        req.Description,
		HasPotentialPII:    result.HasPII,
		DetectedCategories: result.DetectedTypes,
		PIIConfidence:      result.Confidence,
	})
	if err != nil {
		return report.SubmitResponse{}, err
	}

	return report.SubmitResponse{
		Report:     report.ToResponse(created),
		PIIWarning: pii.WarningMessage(result),
	}, nil
}

// ListByEvent implements report.ReportService. Reports stay private to the
// event's organizer; admins get no blanket read access here.
func (s *ReportServiceImpl) ListByEvent(ctx context.Context, eventID, requesterID string) ([]report.Response, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.OrganizerID != requesterID {
		return nil, report.ErrReportAccessDenied
	}

	reports, err := s.reportRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return report.ToResponseList(reports), nil
}

// ListMine implements report.ReportService.
func (s *ReportServiceImpl) ListMine(ctx context.Context, userID string) ([]report.Response, error) {
	reports, err := s.reportRepo.ListBySubmitter(ctx, userID)
	if err != nil {
		return nil, err
	}

	return report.ToResponseList(reports), nil
}
