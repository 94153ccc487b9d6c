package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/recurrence"
)

// Models lists every table the API owns.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.DomainEntry{},
		&domain.Item{},
		&domain.UserItem{},
		&domain.UserItemHistory{},
		&domain.Task{},
		&domain.TaskCompletion{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// DefaultDomains is the reference taxonomy loaded by Seed.
func DefaultDomains() []domain.DomainEntry {
	var out []domain.DomainEntry
	for _, v := range []string{"Easy", "Medium", "Hard", "Extreme"} {
		out = append(out, domain.DomainEntry{Name: domain.DomainDifficulty, Value: v})
	}
	for _, v := range recurrence.Values {
		out = append(out, domain.DomainEntry{Name: domain.DomainRepeatable, Value: v})
	}
	return out
}

// Seed inserts any missing default domain entries through repo.
func Seed(ctx context.Context, repo domain.DomainRepository) (int, error) {
	n := 0
	for _, d := range DefaultDomains() {
		if _, err := repo.Ensure(ctx, d.Name, d.Value); err != nil {
			return n, fmt.Errorf("seed %s/%s: %w", d.Name, d.Value, err)
		}
		n++
	}
	return n, nil
}
