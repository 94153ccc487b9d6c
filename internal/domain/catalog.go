package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Domain names seeded into the catalog.
const (
	DomainDifficulty = "Difficulty"
	DomainRepeatable = "Repeatable"
)

// DomainEntry is one value of a named taxonomy (difficulty tier, repeat cadence).
type DomainEntry struct {
	ID     string `gorm:"column:domain_id;primaryKey;size:36" json:"domain_id"`
	Name   string `gorm:"size:32;not null;uniqueIndex:uq_domain_name_value" json:"name"`
	Value  string `gorm:"size:64;not null;uniqueIndex:uq_domain_name_value" json:"value"`
	Points int64  `gorm:"-" json:"points,omitempty"`
}

func (DomainEntry) TableName() string { return "domains" }

func (d *DomainEntry) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type DomainRepository interface {
	Create(ctx context.Context, d *DomainEntry) error
	FindByID(ctx context.Context, id string) (*DomainEntry, error)
	// FindByName returns ErrNotFound when the taxonomy has no entries.
	FindByName(ctx context.Context, name string) ([]DomainEntry, error)
	Ensure(ctx context.Context, name, value string) (*DomainEntry, error)
}
