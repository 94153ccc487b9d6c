package repo

import (
	"context"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
)

type DomainRepo struct{ db *gorm.DB }

func NewDomainRepo(db *gorm.DB) *DomainRepo { return &DomainRepo{db: db} }

func (r *DomainRepo) Create(ctx context.Context, d *domain.DomainEntry) error {
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *DomainRepo) FindByID(ctx context.Context, id string) (*domain.DomainEntry, error) {
	var d domain.DomainEntry
	if err := r.db.WithContext(ctx).First(&d, "domain_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DomainRepo) FindByName(ctx context.Context, name string) ([]domain.DomainEntry, error) {
	var out []domain.DomainEntry
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("value").Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *DomainRepo) Ensure(ctx context.Context, name, value string) (*domain.DomainEntry, error) {
	d := domain.DomainEntry{Name: name, Value: value}
	err := r.db.WithContext(ctx).
		Where("name = ? AND value = ?", name, value).
		FirstOrCreate(&d).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}
