package office

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Office, error)
	FindByID(ctx context.Context, id int64) (*Office, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Office, error) {
	var offices []Office
	err := r.db.WithContext(ctx).Order("name ASC").Find(&offices).Error
	if err != nil {
		return nil, err
	}
	return offices, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Office, error) {
	var o Office
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Office{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
