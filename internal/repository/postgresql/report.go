package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/report"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

const reportColumns = `id, event_id, shift_id, submitted_by_user_id, description, has_potential_pii, detected_categories, pii_confidence, created_at`

func scanReport(row pgx.Row) (report.Report, error) {
	var rep report.Report
	err := row.Scan(
		&rep.ID, &rep.EventID, &rep.ShiftID, &rep.SubmittedByUserID,
		&rep.Description, &rep.HasPotentialPII, &rep.DetectedCategories,
		&rep.PIIConfidence, &rep.CreatedAt,
	)
	return rep, err
}

// Create implements report.ReportRepository.
func (r *reportRepositoryImpl) Create(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (id, event_id, shift_id, submitted_by_user_id, description, has_potential_pii, detected_categories, pii_confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + reportColumns + `
	`

	created, err := scanReport(q.QueryRow(ctx, query,
		rep.ID, rep.EventID, rep.ShiftID, rep.SubmittedByUserID,
		rep.Description, rep.HasPotentialPII, rep.DetectedCategories, rep.PIIConfidence,
	))
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to create report: %w", err)
	}

	return created, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	rep, err := scanReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report by id: %w", err)
	}

	return rep, nil
}

// ListByEvent implements report.ReportRepository.
func (r *reportRepositoryImpl) ListByEvent(ctx context.Context, eventID string) ([]report.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE event_id = $1 ORDER BY created_at DESC`
	return r.queryReports(ctx, query, eventID)
}

// ListBySubmitter implements report.ReportRepository.
func (r *reportRepositoryImpl) ListBySubmitter(ctx context.Context, userID string) ([]report.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE submitted_by_user_id = $1 ORDER BY created_at DESC`
	return r.queryReports(ctx, query, userID)
}

func (r *reportRepositoryImpl) queryReports(ctx context.Context, query string, args ...interface{}) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

// DeleteExpired implements report.ReportRepository. Orphaned reports and
// reports past their event's retention window are removed in two
// independent statements; each is idempotent on its own, so an interrupted
// sweep leaves valid state and the next tick finishes the job.
func (r *reportRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time, defaultRetentionDays int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	orphans, err := q.Exec(ctx, `
		DELETE FROM reports
		WHERE NOT EXISTS (SELECT 1 FROM events e WHERE e.id = reports.event_id)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphaned reports: %w", err)
	}

	expired, err := q.Exec(ctx, `
		DELETE FROM reports
		USING events e
		WHERE e.id = reports.event_id
		  AND $1::timestamptz >= e.date + make_interval(days => COALESCE(e.retention_days, $2))
	`, now, defaultRetentionDays)
	if err != nil {
		return orphans.RowsAffected(), fmt.Errorf("failed to delete expired reports: %w", err)
	}

	return orphans.RowsAffected() + expired.RowsAffected(), nil
}
