package repo

import (
	"context"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
)

// Store implements domain.Store over a gorm handle, which is either the pool
// or an open transaction.
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Users() domain.UserRepository         { return NewUserRepo(s.db) }
func (s *Store) Domains() domain.DomainRepository     { return NewDomainRepo(s.db) }
func (s *Store) Items() domain.ItemRepository         { return NewItemRepo(s.db) }
func (s *Store) UserItems() domain.UserItemRepository { return NewUserItemRepo(s.db) }
func (s *Store) Tasks() domain.TaskRepository         { return NewTaskRepo(s.db) }

func (s *Store) Transaction(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
