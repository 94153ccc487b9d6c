package service

import (
	"context"
	"errors"
	"fmt"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/recurrence"
	"myplanetplan-api/internal/validate"
)

type ItemService struct{ store domain.Store }

type ItemInput struct {
	Name        string
	Summary     string
	Description string
	CostMoney   string
	CostEffort  string
	CostTime    string
	Repeatable  string
}

func (in ItemInput) apply(it *domain.Item) error {
	if !validate.UUID(in.CostMoney, in.CostEffort, in.CostTime, in.Repeatable) {
		return invalid("domain ids")
	}
	it.Name = validate.Text(in.Name)
	if it.Name == "" {
		return invalid("name")
	}
	it.Summary = validate.Text(in.Summary)
	it.Description = validate.Text(in.Description)
	it.CostMoney, it.CostEffort, it.CostTime = in.CostMoney, in.CostEffort, in.CostTime
	it.Repeatable = in.Repeatable
	return nil
}

func checkRepeatable(ctx context.Context, repo domain.DomainRepository, id string) error {
	d, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return invalid("repeatable")
	}
	if err != nil {
		return fmt.Errorf("resolve repeatable: %w", err)
	}
	if d.Name != domain.DomainRepeatable || !recurrence.Known(d.Value) {
		return invalid("repeatable")
	}
	return nil
}

// price validates the domain references of it and sets its points.
func price(ctx context.Context, repo domain.DomainRepository, it *domain.Item) error {
	if err := checkRepeatable(ctx, repo, it.Repeatable); err != nil {
		return err
	}
	p, err := itemPoints(ctx, repo, it.Public(), it.CostMoney, it.CostEffort, it.CostTime)
	if err != nil {
		return err
	}
	it.Points = p
	return nil
}

// Create adds a public item when the caller is an admin, otherwise a private
// item that is put straight onto the caller's list.
func (s *ItemService) Create(ctx context.Context, a domain.Actor, in ItemInput) (*domain.Item, error) {
	if !validate.UUID(a.ID) {
		return nil, invalid("subject")
	}
	it := &domain.Item{Active: true}
	if err := in.apply(it); err != nil {
		return nil, err
	}
	if !a.IsAdmin() {
		owner := a.ID
		it.Owner = &owner
	}
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		if err := price(ctx, tx.Domains(), it); err != nil {
			return err
		}
		if err := tx.Items().Create(ctx, it); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if it.Public() {
			return nil
		}
		if err := tx.UserItems().Create(ctx, &domain.UserItem{UserID: a.ID, ItemID: it.ID}); err != nil {
			return fmt.Errorf("add private item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// editable loads an active item the caller may modify.
func editable(ctx context.Context, repo domain.ItemRepository, a domain.Actor, itemID string) (*domain.Item, error) {
	it, err := repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.Active {
		return nil, domain.ErrNotFound
	}
	if !CanModify(it.Owner, a) {
		return nil, domain.ErrForbidden
	}
	return it, nil
}

func (s *ItemService) Update(ctx context.Context, a domain.Actor, itemID string, in ItemInput) (*domain.Item, error) {
	if !validate.UUID(a.ID, itemID) {
		return nil, invalid("item id")
	}
	var it *domain.Item
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		var err error
		if it, err = editable(ctx, tx.Items(), a, itemID); err != nil {
			return err
		}
		if err = in.apply(it); err != nil {
			return err
		}
		if err = price(ctx, tx.Domains(), it); err != nil {
			return err
		}
		return tx.Items().Update(ctx, it)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Delete deactivates the item; rows referencing it are kept.
func (s *ItemService) Delete(ctx context.Context, a domain.Actor, itemID string) error {
	if !validate.UUID(a.ID, itemID) {
		return invalid("item id")
	}
	if _, err := editable(ctx, s.store.Items(), a, itemID); err != nil {
		return err
	}
	return s.store.Items().Deactivate(ctx, itemID)
}

// ListPublic lists the shared catalog. Anonymous callers get IsAdded=false.
func (s *ItemService) ListPublic(ctx context.Context, a domain.Actor) ([]domain.ItemView, error) {
	viewer := ""
	if validate.UUID(a.ID) {
		viewer = a.ID
	}
	rows, err := s.store.Items().ListPublic(ctx, viewer)
	if rows == nil && err == nil {
		rows = []domain.ItemView{}
	}
	return rows, err
}

func (s *ItemService) ListAll(ctx context.Context, includeInactive bool) ([]domain.ItemView, error) {
	rows, err := s.store.Items().ListAll(ctx, includeInactive)
	if rows == nil && err == nil {
		rows = []domain.ItemView{}
	}
	return rows, err
}

// Details returns the public catalog view for admins and the caller's list
// view otherwise.
func (s *ItemService) Details(ctx context.Context, a domain.Actor, itemID string) (any, error) {
	if !validate.UUID(a.ID, itemID) {
		return nil, invalid("item id")
	}
	if a.IsAdmin() {
		v, err := s.store.Items().PublicView(ctx, itemID)
		if !errors.Is(err, domain.ErrNotFound) {
			return v, err
		}
	}
	return s.store.UserItems().View(ctx, a.ID, itemID)
}
