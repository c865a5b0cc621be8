package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/event"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `id, name, date, organizer_id, retention_days, created_at, updated_at`

func scanEvent(row pgx.Row) (event.Event, error) {
	var e event.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Date, &e.OrganizerID, &e.RetentionDays,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, e event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO events (id, name, date, organizer_id, retention_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + eventColumns + `
	`

	created, err := scanEvent(q.QueryRow(ctx, query,
		e.ID, e.Name, e.Date, e.OrganizerID, e.RetentionDays,
	))
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

// GetByID implements event.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event by id: %w", err)
	}

	return e, nil
}

// List implements event.EventRepository.
func (r *eventRepositoryImpl) List(ctx context.Context) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC`

	return r.queryEvents(ctx, q, query)
}

// ListByMember implements event.EventRepository.
func (r *eventRepositoryImpl) ListByMember(ctx context.Context, userID string) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT e.id, e.name, e.date, e.organizer_id, e.retention_days, e.created_at, e.updated_at
		FROM events e
		JOIN shifts s ON s.event_id = e.id
		WHERE $1 = ANY(s.assigned_member_ids)
		ORDER BY e.date DESC
	`

	return r.queryEvents(ctx, q, query, userID)
}

func (r *eventRepositoryImpl) queryEvents(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]event.Event, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

type shiftRepositoryImpl struct {
	db *database.DB
}

// NewShiftRepository creates a new shift repository instance
func NewShiftRepository(db *database.DB) event.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, event_id, name, assigned_member_ids, start_time, end_time, created_at`

func scanShift(row pgx.Row) (event.Shift, error) {
	var s event.Shift
	err := row.Scan(
		&s.ID, &s.EventID, &s.Name, &s.AssignedMemberIDs,
		&s.StartTime, &s.EndTime, &s.CreatedAt,
	)
	return s, err
}

// Create implements event.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s event.Shift) (event.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, event_id, name, assigned_member_ids, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + shiftColumns + `
	`

	created, err := scanShift(q.QueryRow(ctx, query,
		s.ID, s.EventID, s.Name, s.AssignedMemberIDs, s.StartTime, s.EndTime,
	))
	if err != nil {
		return event.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

// GetByID implements event.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (event.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Shift{}, event.ErrShiftNotFound
		}
		return event.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return s, nil
}

// ListByEvent implements event.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEvent(ctx context.Context, eventID string) ([]event.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE event_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []event.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shifts, nil
}
