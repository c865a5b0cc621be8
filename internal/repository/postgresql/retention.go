package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

// NewPolicyRepository creates a new retention policy repository instance
func NewPolicyRepository(db *database.DB) retention.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

// Get implements retention.PolicyRepository.
func (r *policyRepositoryImpl) Get(ctx context.Context) (retention.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT default_retention_days, invite_expiration_hours, updated_at
		FROM gdpr_settings
		WHERE id = 1
	`

	var p retention.Policy
	err := q.QueryRow(ctx, query).Scan(&p.DefaultRetentionDays, &p.InviteExpirationHours, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return retention.Policy{}, retention.ErrPolicyNotInitialized
		}
		return retention.Policy{}, fmt.Errorf("failed to get retention policy: %w", err)
	}

	return p, nil
}

// Update implements retention.PolicyRepository.
func (r *policyRepositoryImpl) Update(ctx context.Context, defaultRetentionDays, inviteExpirationHours *int) (retention.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE gdpr_settings
		SET default_retention_days = COALESCE($1, default_retention_days),
			invite_expiration_hours = COALESCE($2, invite_expiration_hours),
			updated_at = NOW()
		WHERE id = 1
		RETURNING default_retention_days, invite_expiration_hours, updated_at
	`

	var p retention.Policy
	err := q.QueryRow(ctx, query, defaultRetentionDays, inviteExpirationHours).
		Scan(&p.DefaultRetentionDays, &p.InviteExpirationHours, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return retention.Policy{}, retention.ErrPolicyNotInitialized
		}
		return retention.Policy{}, fmt.Errorf("failed to update retention policy: %w", err)
	}

	return p, nil
}

// EnsureDefaults implements retention.PolicyRepository.
func (r *policyRepositoryImpl) EnsureDefaults(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO gdpr_settings (id, default_retention_days, invite_expiration_hours)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, retention.DefaultRetentionDays, retention.DefaultInviteExpirationHours)
	if err != nil {
		return fmt.Errorf("failed to seed retention policy: %w", err)
	}

	return nil
}
