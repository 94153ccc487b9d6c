package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a catalog entry. A nil Owner marks a public item curated by admins.
type Item struct {
	ID          string    `gorm:"column:item_id;primaryKey;size:36" json:"item_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Summary     string    `gorm:"size:512" json:"summary"`
	Description string    `gorm:"type:text" json:"description"`
	Owner       *string   `gorm:"size:36;index" json:"owner"`
	CostMoney   string    `gorm:"size:36;not null" json:"cost_money"`
	CostEffort  string    `gorm:"size:36;not null" json:"cost_effort"`
	CostTime    string    `gorm:"size:36;not null" json:"cost_time"`
	Repeatable  string    `gorm:"size:36;not null" json:"repeatable"`
	Points      int64     `gorm:"not null;default:0" json:"points"`
	Active      bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Item) TableName() string { return "items" }

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *Item) Public() bool { return i.Owner == nil }

// ItemView is an item joined with the values of its domain references.
type ItemView struct {
	Item
	CostMoneyValue  string `json:"cost_money_value"`
	CostEffortValue string `json:"cost_effort_value"`
	CostTimeValue   string `json:"cost_time_value"`
	RepeatableValue string `json:"repeatable_value"`
	IsAdded         bool   `json:"is_added"`
}

type ItemRepository interface {
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	Deactivate(ctx context.Context, id string) error
	// ListPublic returns active public items, newest first. IsAdded is set
	// against viewerID's list; an empty viewer matches nothing.
	ListPublic(ctx context.Context, viewerID string) ([]ItemView, error)
	ListAll(ctx context.Context, includeInactive bool) ([]ItemView, error)
	PublicView(ctx context.Context, id string) (*ItemView, error)
}
