package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	costRepo repository.CostRepository
	logger   *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	costRepo repository.CostRepository,
	logger *zap.Logger,
) core.UserService {
	return &userService{
		userRepo: userRepo,
		costRepo: costRepo,
		logger:   logger,
	}
}

func (s *userService) GetUserDetails(ctx context.Context, rawID string) (*model.UserDetails, error) {
	number, ok := parseNumber(rawID)
	if !ok {
		s.logger.Info("Invalid user ID", zap.String("user_id", rawID))
		return nil, ErrInvalidUserID
	}

	userID, ok := asInteger(number)
	if !ok {
		s.logger.Info("User not found", zap.String("user_id", rawID))
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		s.logger.Info("User not found", zap.Int64("user_id", userID))
		return nil, ErrUserNotFound
	}

	costs, err := s.costRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get costs: %w", err)
	}

	var total float64
	for _, cost := range costs {
		total += cost.Sum
	}

	return &model.UserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.ID,
		Total:     total,
	}, nil
}
