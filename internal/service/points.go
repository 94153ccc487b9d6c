package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"myplanetplan-api/internal/domain"
)

// PrivateItemPoints is the flat reward for user-created items.
const PrivateItemPoints int64 = 600

var tiers = map[string]int64{
	"EASY":    200,
	"MEDIUM":  300,
	"HARD":    500,
	"EXTREME": 1000,
}

// TierPoints maps a difficulty value to its points, ignoring case.
func TierPoints(value string) (int64, bool) {
	p, ok := tiers[strings.ToUpper(strings.TrimSpace(value))]
	return p, ok
}

// PointsForDifficulties sums the tiers of the given difficulty values.
func PointsForDifficulties(values ...string) (int64, error) {
	var sum int64
	for _, v := range values {
		p, ok := TierPoints(v)
		if !ok {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownDifficulty, v)
		}
		sum += p
	}
	return sum, nil
}

// resolveCostValues loads the difficulty values behind the cost domain ids.
func resolveCostValues(ctx context.Context, repo domain.DomainRepository, ids ...string) ([]string, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		d, err := repo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: domain %s", domain.ErrUnknownDifficulty, id)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve domain: %w", err)
		}
		values = append(values, d.Value)
	}
	return values, nil
}

// itemPoints prices an item: computed from tiers when public, flat when private.
func itemPoints(ctx context.Context, repo domain.DomainRepository, public bool, money, effort, tm string) (int64, error) {
	values, err := resolveCostValues(ctx, repo, money, effort, tm)
	if err != nil {
		return 0, err
	}
	if !public {
		return PrivateItemPoints, nil
	}
	return PointsForDifficulties(values...)
}
