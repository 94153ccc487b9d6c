package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          string `gorm:"column:task_id;primaryKey;size:36" json:"task_id"`
	ItemID      string `gorm:"size:36;not null;index" json:"item_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TaskCompletion records a task done within one user item.
type TaskCompletion struct {
	ID          string    `gorm:"column:user_item_task_id;primaryKey;size:36" json:"user_item_task_id"`
	UserItemID  string    `gorm:"size:36;not null;index" json:"user_item_id"`
	TaskID      string    `gorm:"size:36;not null;index" json:"task_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func (TaskCompletion) TableName() string { return "user_item_tasks" }

func (tc *TaskCompletion) BeforeCreate(*gorm.DB) error {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	return nil
}

// TaskView is a task annotated for a user item's current cycle.
type TaskView struct {
	Task
	Completed bool `json:"completed"`
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	Find(ctx context.Context, itemID, taskID string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	// Delete removes the task and its completion rows.
	Delete(ctx context.Context, itemID, taskID string) error
	ListByItem(ctx context.Context, itemID string) ([]Task, error)
	AddCompletion(ctx context.Context, tc *TaskCompletion) error
	Completions(ctx context.Context, userItemID string) ([]TaskCompletion, error)
}
