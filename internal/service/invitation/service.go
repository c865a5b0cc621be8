package invitation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/incident-backend-go/internal/domain/invitation"
	"github.com/shiftwatch/incident-backend-go/internal/domain/retention"
	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/database"
	"github.com/shiftwatch/incident-backend-go/internal/pkg/jwt"
	"github.com/shiftwatch/incident-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type InvitationServiceImpl struct {
	db             *database.DB
	invitationRepo invitation.InvitationRepository
	userRepo       user.UserRepository
	policyRepo     retention.PolicyRepository
	jwtService     jwt.Service
}

func NewInvitationService(
	db *database.DB,
	invitationRepo invitation.InvitationRepository,
	userRepo user.UserRepository,
	policyRepo retention.PolicyRepository,
	jwtService jwt.Service,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:             db,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		policyRepo:     policyRepo,
		jwtService:     jwtService,
	}
}

// generateToken produces an unguessable single-use token: 32 bytes from a
// CSPRNG, hex encoded. A unique index on the token column rules out reuse.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue implements invitation.InvitationService.
func (s *InvitationServiceImpl) Issue(ctx context.Context, req invitation.IssueRequest) (invitation.Invitation, error) {
	if err := req.Validate(); err != nil {
		return invitation.Invitation{}, err
	}

	issuer, err := s.userRepo.GetByID(ctx, req.IssuedByUserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return invitation.Invitation{}, invitation.ErrInviteNotAuthorized
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get issuer: %w", err)
	}
	if !issuer.CanInvite() {
		return invitation.Invitation{}, invitation.ErrInviteNotAuthorized
	}

	// The route guard already checked the role; re-validate here so no
	// caller can mint an admin through an invitation.
	role := user.Role(req.Role)
	if !invitation.IsInvitableRole(role) {
		return invitation.Invitation{}, invitation.ErrRoleNotInvitable
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return invitation.Invitation{}, invitation.ErrEmailAlreadyRegistered
	}

	policy, err := s.policyRepo.Get(ctx)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to get retention policy: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return invitation.Invitation{}, err
	}

	now := time.Now().UTC()
	created, err := s.invitationRepo.Create(ctx, invitation.Invitation{
		ID:              uuid.NewString(),
		Email:           req.Email,
		Role:            role,
		Token:           token,
		InvitedByUserID: req.IssuedByUserID,
		Status:          invitation.StatusPending,
		ExpiresAt:       policy.InviteExpiry(now),
	})
	if err != nil {
		return invitation.Invitation{}, err
	}

	return created, nil
}

// GetByToken implements invitation.InvitationService.
func (s *InvitationServiceImpl) GetByToken(ctx context.Context, token string) (invitation.DetailResponse, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return invitation.DetailResponse{}, err
	}

	if err := classifyInactive(inv, time.Now().UTC()); err != nil {
		return invitation.DetailResponse{}, err
	}

	return invitation.ToDetailResponse(inv), nil
}

// classifyInactive maps a non-acceptable invitation to its lifecycle error.
// Expiry is evaluated against now, not against the sweep, so a row the
// scheduler has not reached yet still reads as expired.
func classifyInactive(inv invitation.Invitation, now time.Time) error {
	if inv.IsProcessed() {
		return invitation.ErrInvitationAlreadyProcessed
	}
	if inv.IsExpired(now) {
		return invitation.ErrInvitationExpired
	}
	return nil
}

// Accept implements invitation.InvitationService. The pending->accepted
// transition and the directory insert commit atomically; the guarded
// update inside the transaction makes acceptance at-most-once even across
// process instances.
func (s *InvitationServiceImpl) Accept(ctx context.Context, req invitation.AcceptRequest) (invitation.AcceptResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.AcceptResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return invitation.AcceptResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	now := time.Now().UTC()
	var newUser user.User

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inv, err := s.invitationRepo.AcceptPending(txCtx, req.Token, now)
		if err != nil {
			if errors.Is(err, invitation.ErrInvitationNotFound) {
				// The guarded update matched nothing; re-read to tell the
				// caller whether the token is unknown, expired, or consumed.
				existing, lookupErr := s.invitationRepo.GetByToken(txCtx, req.Token)
				if lookupErr != nil {
					return lookupErr
				}
				if classifyErr := classifyInactive(existing, now); classifyErr != nil {
					return classifyErr
				}
				return invitation.ErrInvitationAlreadyProcessed
			}
			return err
		}

		newUser, err = s.userRepo.Create(txCtx, user.User{
			ID:              uuid.NewString(),
			Email:           inv.Email,
			Name:            req.Name,
			PasswordHash:    &passwordHash,
			Role:            inv.Role,
			InvitedByUserID: &inv.InvitedByUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to create user from invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(newUser.ID, newUser.Email, newUser.Role)
	if err != nil {
		return invitation.AcceptResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return invitation.AcceptResponse{
		User:        user.ToResponse(newUser),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Decline implements invitation.InvitationService. The record is removed
// outright so the invitee's email leaves the system entirely.
func (s *InvitationServiceImpl) Decline(ctx context.Context, token string) error {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if inv.IsProcessed() {
		return invitation.ErrInvitationAlreadyProcessed
	}

	return s.invitationRepo.Delete(ctx, inv.ID)
}

// ListPending implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListPending(ctx context.Context) ([]invitation.DetailResponse, error) {
	invitations, err := s.invitationRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]invitation.DetailResponse, 0, len(invitations))
	for _, inv := range invitations {
		responses = append(responses, invitation.ToDetailResponse(inv))
	}
	return responses, nil
}

// SweepExpired implements invitation.InvitationService.
func (s *InvitationServiceImpl) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.invitationRepo.DeleteExpiredPending(ctx, now)
}
