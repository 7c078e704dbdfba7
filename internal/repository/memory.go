package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

// MemoryStore is a process-local store used for tests and local smoke runs.
// It starts empty; users are added with AddUser.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]model.User
	costs  []model.Cost
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]model.User)}
}

func (s *MemoryStore) AddUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %d already exists", user.ID)
	}
	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

func (s *MemoryStore) Costs() CostRepository { return memoryCosts{s} }

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close() error { return nil }

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type memoryCosts struct{ s *MemoryStore }

func (r memoryCosts) Create(ctx context.Context, cost *model.Cost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextID++
	cost.ID = strconv.FormatInt(r.s.nextID, 10)
	r.s.costs = append(r.s.costs, *cost)
	return nil
}

func (r memoryCosts) GetByUserID(ctx context.Context, userID int64) ([]*model.Cost, error) {
	return r.filter(func(c model.Cost) bool {
		return c.UserID == userID
	}), nil
}

func (r memoryCosts) GetByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]*model.Cost, error) {
	return r.filter(func(c model.Cost) bool {
		return c.UserID == userID && !c.CreatedAt.Before(from) && c.CreatedAt.Before(to)
	}), nil
}

func (r memoryCosts) filter(keep func(model.Cost) bool) []*model.Cost {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.Cost
	for _, c := range r.s.costs {
		if keep(c) {
			c := c
			out = append(out, &c)
		}
	}
	return out
}
