package service

import (
	"context"
	"errors"
	"time"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/repository"
)

var errStoreDown = errors.New("store unavailable")

// countingUsers records lookups so tests can assert no query was issued.
type countingUsers struct {
	repository.UserRepository
	calls int
	err   error
}

func (u *countingUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.calls++
	if u.err != nil {
		return nil, u.err
	}
	return u.UserRepository.GetByID(ctx, id)
}

type failingCosts struct{}

func (failingCosts) Create(context.Context, *model.Cost) error { return errStoreDown }

func (failingCosts) GetByUserID(context.Context, int64) ([]*model.Cost, error) {
	return nil, errStoreDown
}

func (failingCosts) GetByUserIDInRange(context.Context, int64, time.Time, time.Time) ([]*model.Cost, error) {
	return nil, errStoreDown
}

func newSeededStore(users ...model.User) *repository.MemoryStore {
	store := repository.NewMemoryStore()
	for _, u := range users {
		if err := store.AddUser(u); err != nil {
			panic(err)
		}
	}
	return store
}

var dana = model.User{ID: 123, FirstName: "Dana", LastName: "Levi"}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func seedCost(store *repository.MemoryStore, userID int64, category model.Category, sum float64, description string, at time.Time) {
	err := store.Costs().Create(context.Background(), &model.Cost{
		UserID:      userID,
		Description: description,
		Category:    category,
		Sum:         sum,
		CreatedAt:   at,
	})
	if err != nil {
		panic(err)
	}
}
