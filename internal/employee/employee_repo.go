package employee

import (
	"context"

	"gorm.io/gorm"
)

type ListParams struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	List(ctx context.Context, params ListParams) ([]Employee, int64, error)
	FindByUUID(ctx context.Context, uuid string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, uuid string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) List(ctx context.Context, params ListParams) ([]Employee, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&Employee{})
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			q = q.Where(
				"CONCAT_WS(' ', first_name, middle_name, last_name, suffix) ILIKE ? OR email ILIKE ?",
				pattern, pattern,
			)
		}
		switch params.Status {
		case StatusActive:
			q = q.Where("is_active = ?", true)
		case StatusInactive:
			q = q.Where("is_active = ?", false)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := base().
		Preload("Office").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.PerPage).
		Limit(params.PerPage).
		Find(&employees).Error

	return employees, total, err
}

func (r *repository) FindByUUID(ctx context.Context, uuid string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Office").
		First(&empl, "uuid = ?", uuid).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Office").
		First(&empl, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

// Delete removes the employee and every access grant referencing it in one
// transaction. The FK on access_grants cascades as well, so no orphaned
// edges survive either path.
func (r *repository) Delete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM access_grants WHERE employee_uuid = ?", uuid).Error; err != nil {
			return err
		}

		res := tx.Delete(&Employee{}, "uuid = ?", uuid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
