package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserItem is an item on a user's list. Repeat completions reuse the row.
type UserItem struct {
	ID          string     `gorm:"column:user_item_id;primaryKey;size:36" json:"user_item_id"`
	UserID      string     `gorm:"size:36;not null;uniqueIndex:uq_user_item" json:"user_id"`
	ItemID      string     `gorm:"size:36;not null;uniqueIndex:uq_user_item;index" json:"item_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (UserItem) TableName() string { return "user_items" }

func (u *UserItem) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserItemHistory is the append-only completion ledger.
type UserItemHistory struct {
	ID          string    `gorm:"column:user_item_history_id;primaryKey;size:36" json:"user_item_history_id"`
	UserID      string    `gorm:"size:36;not null;index:idx_history_user_completed,priority:1" json:"user_id"`
	ItemID      string    `gorm:"size:36;not null" json:"item_id"`
	CompletedAt time.Time `gorm:"not null;index:idx_history_user_completed,priority:2" json:"completed_at"`
	Points      int64     `gorm:"not null" json:"points"`
}

func (UserItemHistory) TableName() string { return "user_item_histories" }

func (h *UserItemHistory) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// UserItemView is a list row: the item, its domain values, the user's progress
// and task counts for the current cycle.
type UserItemView struct {
	ItemView
	UserItemID     string     `json:"user_item_id"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at"`
	AddedAt        time.Time  `json:"added_at"`
	TasksCompleted int64      `json:"tasks_completed"`
	Tasks          int64      `json:"tasks"`
}

type HistoryView struct {
	UserItemHistory
	Name            string `json:"name"`
	Summary         string `json:"summary"`
	CostMoneyValue  string `json:"cost_money_value"`
	CostEffortValue string `json:"cost_effort_value"`
	CostTimeValue   string `json:"cost_time_value"`
	RepeatableValue string `json:"repeatable_value"`
}

type UserItemRepository interface {
	Create(ctx context.Context, ui *UserItem) error
	FindByID(ctx context.Context, id string) (*UserItem, error)
	// FindForUpdate locks the (user, item) row for the rest of the transaction.
	FindForUpdate(ctx context.Context, userID, itemID string) (*UserItem, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	// Delete removes the row together with its task completions.
	Delete(ctx context.Context, id string) error
	ListViews(ctx context.Context, userID string) ([]UserItemView, error)
	View(ctx context.Context, userID, itemID string) (*UserItemView, error)
	AppendHistory(ctx context.Context, h *UserItemHistory) error
	History(ctx context.Context, userID string) ([]HistoryView, error)
}
