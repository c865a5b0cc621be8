package retention

import (
	"context"
	"time"

	"github.com/shiftwatch/incident-backend-go/internal/domain/report"
	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
)

type PolicyServiceImpl struct {
	policyRepo retention.PolicyRepository
	reportRepo report.ReportRepository
	userRepo   user.UserRepository
}

func NewPolicyService(
	policyRepo retention.PolicyRepository,
	reportRepo report.ReportRepository,
	userRepo user.UserRepository,
) retention.PolicyService {
	return &PolicyServiceImpl{
		policyRepo: policyRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// Get implements retention.PolicyService.
func (s *PolicyServiceImpl) Get(ctx context.Context) (retention.Policy, error) {
	return s.policyRepo.Get(ctx)
}

// Update implements retention.PolicyService.
func (s *PolicyServiceImpl) Update(ctx context.Context, req retention.UpdateRequest) (retention.Policy, error) {
	updater, err := s.userRepo.GetByID(ctx, req.UpdatedByUserID)
	if err != nil {
		return retention.Policy{}, err
	}
	if !updater.CanManageRetention() {
		return retention.Policy{}, retention.ErrPolicyUpdateForbidden
	}

	if err := req.Validate(); err != nil {
		return retention.Policy{}, err
	}

	return s.policyRepo.Update(ctx, req.DefaultRetentionDays, req.InviteExpirationHours)
}

// PurgeExpiredReports implements retention.PolicyService. The current
// default window is read fresh each sweep so a policy change takes effect
// on the next tick without a restart.
func (s *PolicyServiceImpl) PurgeExpiredReports(ctx context.Context, now time.Time) (int64, error) {
	policy, err := s.policyRepo.Get(ctx)
	if err != nil {
		return 0, err
	}

	return s.reportRepo.DeleteExpired(ctx, now, policy.DefaultRetentionDays)
}
