package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"myplanetplan-api/internal/domain"
	"myplanetplan-api/internal/recurrence"
	"myplanetplan-api/internal/validate"
)

// UserItemService manages a user's list, completions and history.
type UserItemService struct {
	store      domain.Store
	now        func() time.Time
	idempotent bool
	log        *zap.Logger
}

// List returns the caller's open items: never completed, or completed and
// past their repeat window.
func (s *UserItemService) List(ctx context.Context, a domain.Actor) ([]domain.UserItemView, error) {
	if !validate.UUID(a.ID) {
		return nil, invalid("subject")
	}
	rows, err := s.store.UserItems().ListViews(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return VisibleItems(rows, s.now()), nil
}

// VisibleItems applies the repeat window to list rows.
func VisibleItems(rows []domain.UserItemView, now time.Time) []domain.UserItemView {
	out := make([]domain.UserItemView, 0, len(rows))
	for _, r := range rows {
		if recurrence.Eligible(r.Completed, r.CompletedAt, r.RepeatableValue, now) {
			out = append(out, r)
		}
	}
	return out
}

// Add puts an item on the caller's list. Other users' private items are
// reported as missing.
func (s *UserItemService) Add(ctx context.Context, a domain.Actor, itemID string) (*domain.UserItem, error) {
	if !validate.UUID(a.ID, itemID) {
		return nil, invalid("item id")
	}
	it, err := s.store.Items().FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.Active || (it.Owner != nil && *it.Owner != a.ID) {
		return nil, domain.ErrNotFound
	}
	ui := &domain.UserItem{UserID: a.ID, ItemID: itemID}
	if err := s.store.UserItems().Create(ctx, ui); err != nil {
		return nil, err
	}
	return ui, nil
}

// Remove drops a user item and its task progress. Removing one's own private
// item also deactivates it.
func (s *UserItemService) Remove(ctx context.Context, a domain.Actor, userItemID, itemID string) error {
	if !validate.UUID(a.ID, userItemID, itemID) {
		return invalid("ids")
	}
	return s.store.Transaction(ctx, func(tx domain.Store) error {
		ui, err := tx.UserItems().FindByID(ctx, userItemID)
		if err != nil {
			return err
		}
		if ui.UserID != a.ID || ui.ItemID != itemID {
			return domain.ErrNotFound
		}
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if it != nil && it.Owner != nil && *it.Owner == a.ID && it.Active {
			if err := tx.Items().Deactivate(ctx, it.ID); err != nil {
				return fmt.Errorf("deactivate item: %w", err)
			}
		}
		return tx.UserItems().Delete(ctx, ui.ID)
	})
}

func (s *UserItemService) History(ctx context.Context, a domain.Actor) ([]domain.HistoryView, error) {
	if !validate.UUID(a.ID) {
		return nil, invalid("subject")
	}
	rows, err := s.store.UserItems().History(ctx, a.ID)
	if rows == nil && err == nil {
		rows = []domain.HistoryView{}
	}
	return rows, err
}

// Complete marks the caller's user item done, credits the item's points and
// appends a history row, all in one transaction.
func (s *UserItemService) Complete(ctx context.Context, a domain.Actor, itemID string) (*domain.UserItemHistory, error) {
	if !validate.UUID(a.ID, itemID) {
		return nil, invalid("item id")
	}
	now := s.now()
	var h *domain.UserItemHistory
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		ui, err := tx.UserItems().FindForUpdate(ctx, a.ID, itemID)
		if err != nil {
			return err
		}
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !it.Active {
			return domain.ErrNotFound
		}
		if s.idempotent && ui.Completed {
			if err := openAgain(ctx, tx.Domains(), it, ui, now); err != nil {
				return err
			}
		}
		if err := tx.UserItems().MarkCompleted(ctx, ui.ID, now); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		if err := tx.Users().AddPoints(ctx, a.ID, it.Points); err != nil {
			return fmt.Errorf("add points: %w", err)
		}
		h = &domain.UserItemHistory{UserID: a.ID, ItemID: itemID, CompletedAt: now, Points: it.Points}
		if err := tx.UserItems().AppendHistory(ctx, h); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	itemCompletions.Inc()
	pointsAwarded.Add(float64(h.Points))
	s.log.Info("item completed",
		zap.String("user_id", a.ID),
		zap.String("item_id", itemID),
		zap.Int64("points", h.Points),
	)
	return h, nil
}

// openAgain fails with ErrConflict while a completed item is inside its
// repeat window.
func openAgain(ctx context.Context, repo domain.DomainRepository, it *domain.Item, ui *domain.UserItem, now time.Time) error {
	repeat := recurrence.None
	d, err := repo.FindByID(ctx, it.Repeatable)
	switch {
	case err == nil:
		repeat = d.Value
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}
	if !recurrence.Eligible(ui.Completed, ui.CompletedAt, repeat, now) {
		return fmt.Errorf("%w: already completed", domain.ErrConflict)
	}
	return nil
}
