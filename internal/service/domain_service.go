package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"myplanetplan-api/internal/core/cache"
	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/recurrence"
	"myplanetplan-api/internal/validate"
)

// DomainService serves the reference taxonomies.
type DomainService struct {
	store domain.Store
	cache *cache.Cache
	ttl   time.Duration
}

func domainKey(name string) string { return "domains:" + name }

// canonicalName maps known taxonomy names to their stored spelling; other
// names pass through unchanged.
func canonicalName(name string) string {
	switch {
	case strings.EqualFold(name, domain.DomainDifficulty):
		return domain.DomainDifficulty
	case strings.EqualFold(name, domain.DomainRepeatable):
		return domain.DomainRepeatable
	}
	return name
}

// ByName lists the entries of one taxonomy ordered by value. Difficulty
// entries carry their points.
func (s *DomainService) ByName(ctx context.Context, name string) ([]domain.DomainEntry, error) {
	name = canonicalName(validate.Text(name))
	if name == "" {
		return nil, invalid("domain name")
	}
	load := func(ctx context.Context) ([]domain.DomainEntry, error) {
		return s.store.Domains().FindByName(ctx, name)
	}
	var (
		out []domain.DomainEntry
		err error
	)
	if s.cache != nil {
		out, err = cache.GetOrLoadJSON(s.cache, ctx, domainKey(name), s.ttl, load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}
	for i := range out {
		if p, ok := TierPoints(out[i].Value); ok && strings.EqualFold(out[i].Name, domain.DomainDifficulty) {
			out[i].Points = p
		}
	}
	return out, nil
}

// Create adds an entry to a known taxonomy.
func (s *DomainService) Create(ctx context.Context, name, value string) (*domain.DomainEntry, error) {
	name, value = canonicalName(validate.Text(name)), validate.Text(value)
	if value == "" {
		return nil, invalid("domain value")
	}
	switch name {
	case domain.DomainDifficulty:
		if _, ok := TierPoints(value); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDifficulty, value)
		}
	case domain.DomainRepeatable:
		if !recurrence.Known(value) {
			return nil, invalid("repeat value")
		}
	default:
		return nil, invalid("domain name")
	}
	d := &domain.DomainEntry{Name: name, Value: value}
	if err := s.store.Domains().Create(ctx, d); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, domainKey(name))
	}
	return d, nil
}
