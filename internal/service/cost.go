package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/repository"
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type costService struct {
	userRepo repository.UserRepository
	costRepo repository.CostRepository
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewCostService builds the cost service. Month boundaries and report days
// are computed in location.
func NewCostService(
	userRepo repository.UserRepository,
	costRepo repository.CostRepository,
	location *time.Location,
	logger *zap.Logger,
) core.CostService {
	if location == nil {
		location = time.Local
	}
	return &costService{
		userRepo: userRepo,
		costRepo: costRepo,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *costService) AddCost(ctx context.Context, input model.CostInput) (*model.Cost, error) {
	if isMissingNumber(input.UserID) || input.Description == "" || input.Category == "" || isMissingNumber(input.Sum) {
		s.logger.Info("Missing required fields")
		return nil, ErrMissingFields
	}

	category, ok := model.ParseCategory(input.Category)
	if !ok {
		s.logger.Info("Invalid category", zap.String("category", input.Category))
		return nil, ErrInvalidCategory
	}

	userID, ok := asInteger(input.UserID)
	if !ok {
		s.logger.Info("User not found", zap.Float64("user_id", input.UserID))
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

	createdAt := s.now()
	if input.CreatedAt != "" {
		parsed, err := s.parseCreatedAt(input.CreatedAt)
		if err != nil {
			s.logger.Info("Invalid createdAt", zap.String("createdAt", input.CreatedAt))
			return nil, ErrInvalidDate
		}
		createdAt = parsed
	}

	cost := &model.Cost{
		UserID:      userID,
		Description: input.Description,
		Category:    category,
		Sum:         input.Sum,
		CreatedAt:   createdAt,
	}
	if err := s.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create cost: %w", err)
	}

	s.logger.Info("Added cost",
		zap.String("id", cost.ID),
		zap.Int64("user_id", cost.UserID),
		zap.String("category", string(cost.Category)),
		zap.Float64("sum", cost.Sum))

	return cost, nil
}

func (s *costService) parseCreatedAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range createdAtLayouts {
		t, err := time.ParseInLocation(layout, value, s.location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (s *costService) GetMonthlyReport(ctx context.Context, id, year, month string) (*model.MonthlyReport, error) {
	if id == "" || year == "" || month == "" {
		s.logger.Info("Missing required query parameters: id, year, month")
		return nil, ErrMissingQueryParams
	}

	rawID, okID := parseNumber(id)
	rawYear, okYear := parseNumber(year)
	rawMonth, okMonth := parseNumber(month)
	if !okID || !okYear || !okMonth {
		s.logger.Info("Invalid query parameter types",
			zap.String("id", id),
			zap.String("year", year),
			zap.String("month", month))
		return nil, ErrNonNumericQueryParams
	}

	reportYear, okYear := asInteger(rawYear)
	reportMonth, okMonth := asInteger(rawMonth)
	if !okYear || !okMonth {
		s.logger.Info("Non-integer year or month",
			zap.String("year", year),
			zap.String("month", month))
		return nil, ErrNonNumericQueryParams
	}

	userID, ok := asInteger(rawID)
	if !ok {
		s.logger.Info("User not found", zap.Float64("user_id", rawID))
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

	from, to := monthRange(int(reportYear), int(reportMonth), s.location)
	costs, err := s.costRepo.GetByUserIDInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get costs: %w", err)
	}

	report := &model.MonthlyReport{
		UserID: userID,
		Year:   int(reportYear),
		Month:  int(reportMonth),
		Costs:  model.NewCostsByCategory(),
	}
	for _, cost := range costs {
		item := model.ReportItem{
			Sum:         cost.Sum,
			Description: cost.Description,
			Day:         cost.CreatedAt.In(s.location).Day(),
		}
		if !report.Costs.Add(cost.Category, item) {
			s.logger.Warn("Skipping cost with unknown category",
				zap.String("id", cost.ID),
				zap.String("category", string(cost.Category)))
		}
	}

	return report, nil
}

// monthRange returns [first day of month, first day of next month) for a
// 1-indexed month. Out-of-range months normalize like time.Date does.
func monthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	to := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, loc)
	return from, to
}
