package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"myplanetplan-api/internal/domain"
)

type UserItemRepo struct{ db *gorm.DB }

func NewUserItemRepo(db *gorm.DB) *UserItemRepo { return &UserItemRepo{db: db} }

func (r *UserItemRepo) Create(ctx context.Context, ui *domain.UserItem) error {
	return translate(r.db.WithContext(ctx).Create(ui).Error)
}

func (r *UserItemRepo) FindByID(ctx context.Context, id string) (*domain.UserItem, error) {
	var ui domain.UserItem
	if err := r.db.WithContext(ctx).First(&ui, "user_item_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &ui, nil
}

func (r *UserItemRepo) FindForUpdate(ctx context.Context, userID, itemID string) (*domain.UserItem, error) {
	var ui domain.UserItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&ui).Error
	if err != nil {
		return nil, translate(err)
	}
	return &ui, nil
}

func (r *UserItemRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.UserItem{}).
		Where("user_item_id = ?", id).
		Updates(map[string]any{"completed": true, "completed_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserItemRepo) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_item_id = ?", id).Delete(&domain.TaskCompletion{}).Error; err != nil {
		return err
	}
	res := db.Where("user_item_id = ?", id).Delete(&domain.UserItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// listSelect adds progress columns and the task counters of the current cycle.
const listSelect = itemValues + `,
	ui.user_item_id,
	ui.completed,
	ui.completed_at,
	ui.created_at AS added_at,
	(SELECT COUNT(*) FROM tasks t WHERE t.item_id = i.item_id) AS tasks,
	(SELECT COUNT(DISTINCT uit.task_id) FROM user_item_tasks uit
		WHERE uit.user_item_id = ui.user_item_id
		AND (ui.completed_at IS NULL OR uit.completed_at > ui.completed_at)) AS tasks_completed`

func (r *UserItemRepo) views(ctx context.Context, userID string) *gorm.DB {
	q := r.db.WithContext(ctx).Table("user_items AS ui").
		Joins("JOIN items i ON i.item_id = ui.item_id")
	return joinDomainValues(q).
		Select(listSelect).
		Where("ui.user_id = ? AND i.active = ?", userID, true)
}

func (r *UserItemRepo) ListViews(ctx context.Context, userID string) ([]domain.UserItemView, error) {
	var rows []domain.UserItemView
	err := r.views(ctx, userID).Order("ui.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *UserItemRepo) View(ctx context.Context, userID, itemID string) (*domain.UserItemView, error) {
	var rows []domain.UserItemView
	if err := r.views(ctx, userID).Where("ui.item_id = ?", itemID).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func (r *UserItemRepo) AppendHistory(ctx context.Context, h *domain.UserItemHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *UserItemRepo) History(ctx context.Context, userID string) ([]domain.HistoryView, error) {
	q := r.db.WithContext(ctx).Table("user_item_histories AS h").
		Joins("JOIN items i ON i.item_id = h.item_id")
	var rows []domain.HistoryView
	err := joinDomainValues(q).
		Select(`h.*, i.name, i.summary,
			cm.value AS cost_money_value,
			ce.value AS cost_effort_value,
			ct.value AS cost_time_value,
			rp.value AS repeatable_value`).
		Where("h.user_id = ?", userID).
		Order("h.completed_at DESC").
		Scan(&rows).Error
	return rows, err
}
