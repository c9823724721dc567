package application

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, app *Application) error
	FindAll(ctx context.Context) ([]Application, error)
	FindByUUID(ctx context.Context, uuid string) (*Application, error)
	FindByClientID(ctx context.Context, clientID string) (*Application, error)
	Update(ctx context.Context, app *Application) error
	UpdateSecretHash(ctx context.Context, uuid string, hash string) error
	Delete(ctx context.Context, uuid string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) FindByUUID(ctx context.Context, uuid string) (*Application, error) {
	var app Application
	err := r.db.WithContext(ctx).First(&app, "uuid = ?", uuid).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) FindByClientID(ctx context.Context, clientID string) (*Application, error) {
	var app Application
	err := r.db.WithContext(ctx).First(&app, "client_id = ?", clientID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) Update(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// UpdateSecretHash swaps the stored hash in one statement so there is no
// window where the old and new secret both verify, or neither does.
func (r *repository) UpdateSecretHash(ctx context.Context, uuid string, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("uuid = ?", uuid).
		Update("client_secret_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the application and every access grant referencing it in
// one transaction; the FK cascade on access_grants backs this up.
func (r *repository) Delete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM access_grants WHERE application_uuid = ?", uuid).Error; err != nil {
			return err
		}

		res := tx.Delete(&Application{}, "uuid = ?", uuid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
