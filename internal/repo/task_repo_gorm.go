package repo

import (
	"context"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return translate(r.db.WithContext(ctx).Create(t).Error)
}

func (r *TaskRepo) Find(ctx context.Context, itemID, taskID string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, "item_id = ? AND task_id = ?", itemID, taskID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("item_id = ? AND task_id = ?", t.ItemID, t.ID).
		Updates(map[string]any{"name": t.Name, "description": t.Description}).Error
}

func (r *TaskRepo) Delete(ctx context.Context, itemID, taskID string) error {
	db := r.db.WithContext(ctx)
	res := db.Where("item_id = ? AND task_id = ?", itemID, taskID).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return db.Where("task_id = ?", taskID).Delete(&domain.TaskCompletion{}).Error
}

func (r *TaskRepo) ListByItem(ctx context.Context, itemID string) ([]domain.Task, error) {
	var out []domain.Task
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("name").Order("task_id").Find(&out).Error
	return out, err
}

func (r *TaskRepo) AddCompletion(ctx context.Context, tc *domain.TaskCompletion) error {
	return r.db.WithContext(ctx).Create(tc).Error
}

func (r *TaskRepo) Completions(ctx context.Context, userItemID string) ([]domain.TaskCompletion, error) {
	var out []domain.TaskCompletion
	err := r.db.WithContext(ctx).Where("user_item_id = ?", userItemID).Find(&out).Error
	return out, err
}
