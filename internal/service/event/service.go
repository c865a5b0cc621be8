package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwatch/incident-backend-go/internal/domain/event"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/validator"
)

type EventServiceImpl struct {
	eventRepo event.EventRepository
	shiftRepo event.ShiftRepository
	userRepo  user.UserRepository
}

func NewEventService(
	eventRepo event.EventRepository,
	shiftRepo event.ShiftRepository,
	userRepo user.UserRepository,
) event.EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
	}
}

// Create implements event.EventService.
func (s *EventServiceImpl) Create(ctx context.Context, req event.CreateRequest) (event.Event, error) {
	if err := req.Validate(); err != nil {
		return event.Event{}, err
	}

	organizer, err := s.userRepo.GetByID(ctx, req.OrganizerID)
	if err != nil {
		return event.Event{}, err
	}
	if !organizer.CanManageEvents() {
		return event.Event{}, event.ErrEventAccessDenied
	}

	date, _ := validator.IsValidDate(req.Date)

	return s.eventRepo.Create(ctx, event.Event{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Date:          date,
		OrganizerID:   req.OrganizerID,
		RetentionDays: req.RetentionDays,
	})
}

// List implements event.EventService. Admins and organizers see the full
// calendar; team members only events they hold a shift in.
func (s *EventServiceImpl) List(ctx context.Context, requesterID string) ([]event.Event, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if requester.IsOrganizer() {
		return s.eventRepo.List(ctx)
	}
	return s.eventRepo.ListByMember(ctx, requesterID)
}

// GetByID implements event.EventService.
func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// CreateShift implements event.EventService.
func (s *EventServiceImpl) CreateShift(ctx context.Context, req event.CreateShiftRequest) (event.Shift, error) {
	if err := req.Validate(); err != nil {
		return event.Shift{}, err
	}

	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		return event.Shift{}, err
	}

	startTime, err := parseShiftTime(req.StartTime, "start_time")
	if err != nil {
		return event.Shift{}, err
	}
	endTime, err := parseShiftTime(req.EndTime, "end_time")
	if err != nil {
		return event.Shift{}, err
	}

	return s.shiftRepo.Create(ctx, event.Shift{
		ID:                uuid.NewString(),
		EventID:           req.EventID,
		Name:              req.Name,
		AssignedMemberIDs: req.AssignedMemberIDs,
		StartTime:         startTime,
		EndTime:           endTime,
	})
}

func parseShiftTime(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("%s must be an RFC 3339 timestamp", field),
		}}
	}
	return &t, nil
}

// ListShifts implements event.EventService.
func (s *EventServiceImpl) ListShifts(ctx context.Context, eventID string) ([]event.Shift, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.shiftRepo.ListByEvent(ctx, eventID)
}
