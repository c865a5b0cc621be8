package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/domain/invitation"
	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
)

// RetentionJobs contains the data-retention cron jobs
type RetentionJobs struct {
	invitationService invitation.InvitationService
	policyService     retention.PolicyService
	interval          time.Duration
}

// NewRetentionJobs creates retention cron jobs
func NewRetentionJobs(
	invitationService invitation.InvitationService,
	policyService retention.PolicyService,
	interval time.Duration,
) *RetentionJobs {
	return &RetentionJobs{
		invitationService: invitationService,
		policyService:     policyService,
		interval:          interval,
	}
}

// RegisterJobs registers all retention-related cron jobs
func (j *RetentionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"sweep_expired_invitations",
		j.interval,
		j.SweepExpiredInvitations,
	)

	scheduler.AddJob(
		"purge_expired_reports",
		j.interval,
		j.PurgeExpiredReports,
	)
}

// SweepExpiredInvitations deletes pending invitations past their expiry
func (j *RetentionJobs) SweepExpiredInvitations(ctx context.Context) error {
	removed, err := j.invitationService.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if removed > 0 {
		slog.Info("Expired invitations removed", "count", removed)
	}
	return nil
}

// PurgeExpiredReports deletes reports whose retention window has elapsed
func (j *RetentionJobs) PurgeExpiredReports(ctx context.Context) error {
	purged, err := j.policyService.PurgeExpiredReports(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if purged > 0 {
		slog.Info("Expired reports purged", "count", purged)
	}
	return nil
}
