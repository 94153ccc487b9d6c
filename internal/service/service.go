// Package service implements the catalog, list, completion and task
// workflows on top of a domain.Store.
package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"myplanetplan-api/internal/core/cache"
	"myplanetplan-api/internal/domain"
)

type Options struct {
	// Cache is optional; nil disables caching of domain lookups.
	Cache    *cache.Cache
	CacheTTL time.Duration
	// IdempotentCompletion rejects a second completion inside one repeat window.
	IdempotentCompletion bool
	Now                  func() time.Time
	Log                  *zap.Logger
}

type Services struct {
	Users     *UserService
	Domains   *DomainService
	Items     *ItemService
	UserItems *UserItemService
	Tasks     *TaskService
}

func New(store domain.Store, o Options) *Services {
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = 10 * time.Minute
	}
	return &Services{
		Users:     &UserService{store: store},
		Domains:   &DomainService{store: store, cache: o.Cache, ttl: o.CacheTTL},
		Items:     &ItemService{store: store},
		UserItems: &UserItemService{store: store, now: o.Now, idempotent: o.IdempotentCompletion, log: o.Log},
		Tasks:     &TaskService{store: store, now: o.Now},
	}
}

func invalid(what string) error { return fmt.Errorf("%w: %s", domain.ErrInvalidInput, what) }

// noContext reports a missing optional id as sent by clients.
func noContext(id string) bool { return id == "" || id == "undefined" || id == "null" }
