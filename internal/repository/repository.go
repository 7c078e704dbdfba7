package repository

import (
	"context"
	"time"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

// UserRepository returns nil, nil when the user does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// CostRepository lists costs in retrieval order. Range queries are
// half-open: from <= createdAt < to.
type CostRepository interface {
	Create(ctx context.Context, cost *model.Cost) error
	GetByUserID(ctx context.Context, userID int64) ([]*model.Cost, error)
	GetByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]*model.Cost, error)
}

type Store interface {
	Users() UserRepository
	Costs() CostRepository
	Ping(ctx context.Context) error
	Close() error
}
