package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string    `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	Points    int64     `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// AddPoints increments the stored total in a single statement.
	AddPoints(ctx context.Context, id string, points int64) error
	Leaderboard(ctx context.Context, offset, limit int) ([]User, int64, error)
}
