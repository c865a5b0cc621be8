package user

import (
	"context"

	"github.com/shiftwatch/incident-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.Response, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return user.ToResponseList(users), nil
}
