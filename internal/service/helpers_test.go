package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"myplanetplan-api/internal/core/database"
	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/repo"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	store *repo.Store
	svc   *Services
	clock *fakeClock
	ctx   context.Context
}

func newFixture(t *testing.T, idempotent bool) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewGorm(database.Opts{
		Driver:   "sqlite",
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	store := repo.NewStore(db)
	ctx := context.Background()
	_, err = database.Seed(ctx, store.Domains())
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	return &fixture{
		store: store,
		svc:   New(store, Options{IdempotentCompletion: idempotent, Now: clock.Now}),
		clock: clock,
		ctx:   ctx,
	}
}

func (f *fixture) domainID(t *testing.T, name, value string) string {
	t.Helper()
	d, err := f.store.Domains().Ensure(f.ctx, name, value)
	require.NoError(t, err)
	return d.ID
}

func (f *fixture) input(t *testing.T, name, money, effort, tm, repeat string) ItemInput {
	t.Helper()
	return ItemInput{
		Name:       name,
		Summary:    "summary of " + name,
		CostMoney:  f.domainID(t, domain.DomainDifficulty, money),
		CostEffort: f.domainID(t, domain.DomainDifficulty, effort),
		CostTime:   f.domainID(t, domain.DomainDifficulty, tm),
		Repeatable: f.domainID(t, domain.DomainRepeatable, repeat),
	}
}

// registered creates a user account with the given roles.
func (f *fixture) registered(t *testing.T, roles ...string) domain.Actor {
	t.Helper()
	a := domain.Actor{ID: uuid.NewString(), Roles: roles}
	_, err := f.svc.Users.Register(f.ctx, a)
	require.NoError(t, err)
	return a
}

// publicItem inserts an item directly with an exact point value.
func (f *fixture) publicItem(t *testing.T, points int64, repeat string) *domain.Item {
	t.Helper()
	easy := f.domainID(t, domain.DomainDifficulty, "Easy")
	it := &domain.Item{
		Name:       "item worth " + fmt.Sprint(points),
		CostMoney:  easy,
		CostEffort: easy,
		CostTime:   easy,
		Repeatable: f.domainID(t, domain.DomainRepeatable, repeat),
		Points:     points,
		Active:     true,
	}
	require.NoError(t, f.store.Items().Create(f.ctx, it))
	return it
}

func (f *fixture) points(t *testing.T, a domain.Actor) int64 {
	t.Helper()
	u, err := f.svc.Users.Get(f.ctx, a)
	require.NoError(t, err)
	return u.Points
}

func (f *fixture) history(t *testing.T, a domain.Actor) []domain.HistoryView {
	t.Helper()
	h, err := f.svc.UserItems.History(f.ctx, a)
	require.NoError(t, err)
	return h
}
