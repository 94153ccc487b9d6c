package repo

import (
	"context"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) error {
	return translate(r.db.WithContext(ctx).Create(it).Error)
}

func (r *ItemRepo) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	var it domain.Item
	if err := r.db.WithContext(ctx).First(&it, "item_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &it, nil
}

// Update writes the editable columns; owner, active and created_at are kept.
func (r *ItemRepo) Update(ctx context.Context, it *domain.Item) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("item_id = ?", it.ID).
		Updates(map[string]any{
			"name":        it.Name,
			"summary":     it.Summary,
			"description": it.Description,
			"cost_money":  it.CostMoney,
			"cost_effort": it.CostEffort,
			"cost_time":   it.CostTime,
			"repeatable":  it.Repeatable,
			"points":      it.Points,
		}).Error
}

func (r *ItemRepo) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("item_id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) views(ctx context.Context) *gorm.DB {
	return joinDomainValues(r.db.WithContext(ctx).Table("items AS i"))
}

func (r *ItemRepo) ListPublic(ctx context.Context, viewerID string) ([]domain.ItemView, error) {
	var rows []domain.ItemView
	err := r.views(ctx).
		Select(itemValues+`,
			EXISTS (SELECT 1 FROM user_items ui WHERE ui.item_id = i.item_id AND ui.user_id = ?) AS is_added`, viewerID).
		Where("i.owner IS NULL AND i.active = ?", true).
		Order("i.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListAll returns public items for the admin console.
func (r *ItemRepo) ListAll(ctx context.Context, includeInactive bool) ([]domain.ItemView, error) {
	q := r.views(ctx).Select(itemValues).Where("i.owner IS NULL")
	if !includeInactive {
		q = q.Where("i.active = ?", true)
	}
	var rows []domain.ItemView
	err := q.Order("i.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *ItemRepo) PublicView(ctx context.Context, id string) (*domain.ItemView, error) {
	var rows []domain.ItemView
	err := r.views(ctx).Select(itemValues).
		Where("i.item_id = ? AND i.owner IS NULL AND i.active = ?", id, true).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}
