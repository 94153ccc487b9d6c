package domain

import "context"

// Store groups the repositories over one connection or transaction.
type Store interface {
	Users() UserRepository
	Domains() DomainRepository
	Items() ItemRepository
	UserItems() UserItemRepository
	Tasks() TaskRepository
	// Transaction runs fn against a Store bound to a single transaction.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
