package userservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sundayschool/providers"
)

type UserService interface {
	RegisterUser(ctx context.Context, req RegisterUserReq) (uuid.UUID, error)
	GetUsersWithFilters(ctx context.Context, filter UserFilter) ([]UserResponseModel, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo   UserRepository
	logger providers.ZapLoggerProvider
}

func NewUserService(repo UserRepository, logger providers.ZapLoggerProvider) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) RegisterUser(ctx context.Context, req RegisterUserReq) (uuid.UUID, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	userID, err := s.repo.CreateUser(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.GetLogger().Info("user registered", zap.String("user_id", userID.String()))
	return userID, nil
}

func (s *userService) GetUsersWithFilters(ctx context.Context, filter UserFilter) ([]UserResponseModel, error) {
	return s.repo.ListUsers(ctx, filter)
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteUserByID(ctx, userID); err != nil {
		s.logger.GetLogger().Warn("failed to delete user", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}
