package service

import (
	"context"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/validate"
)

type UserService struct{ store domain.Store }

func (s *UserService) Get(ctx context.Context, a domain.Actor) (*domain.User, error) {
	if !validate.UUID(a.ID) {
		return nil, invalid("subject")
	}
	return s.store.Users().FindByID(ctx, a.ID)
}

// Register creates the caller's account with zero points.
func (s *UserService) Register(ctx context.Context, a domain.Actor) (*domain.User, error) {
	if !validate.UUID(a.ID) {
		return nil, invalid("subject")
	}
	u := &domain.User{ID: a.ID}
	if err := s.store.Users().Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

type Page[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func (s *UserService) Leaderboard(ctx context.Context, offset, limit int) (Page[domain.User], error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, total, err := s.store.Users().Leaderboard(ctx, offset, limit)
	if err != nil {
		return Page[domain.User]{}, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return Page[domain.User]{Total: total, Items: users}, nil
}
