package core

import (
	"context"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

type (
	CostService interface {
		AddCost(ctx context.Context, input model.CostInput) (*model.Cost, error)
		GetMonthlyReport(ctx context.Context, id, year, month string) (*model.MonthlyReport, error)
	}

	UserService interface {
		GetUserDetails(ctx context.Context, userID string) (*model.UserDetails, error)
	}

	AboutService interface {
		GetAboutInfo(ctx context.Context) ([]model.TeamMember, error)
	}
)
