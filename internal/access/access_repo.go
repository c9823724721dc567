package access

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=access_repo.go -destination=mock/access_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, grant *AccessGrant) error
	Find(ctx context.Context, employeeUUID, applicationUUID uuid.UUID) (*AccessGrant, error)
	UpdateRole(ctx context.Context, employeeUUID, applicationUUID uuid.UUID, role string) error
	Delete(ctx context.Context, employeeUUID, applicationUUID uuid.UUID) error
	ListByEmployee(ctx context.Context, employeeUUID uuid.UUID) ([]EmployeeGrantRow, error)
	ListByApplication(ctx context.Context, applicationUUID uuid.UUID) ([]ApplicationGrantRow, error)
	HasSuperAdmin(ctx context.Context, employeeUUID uuid.UUID) (bool, error)
	EmployeeExists(ctx context.Context, employeeUUID uuid.UUID) (bool, error)
	ApplicationState(ctx context.Context, applicationUUID uuid.UUID) (exists bool, active bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, grant *AccessGrant) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

func (r *repository) Find(ctx context.Context, employeeUUID, applicationUUID uuid.UUID) (*AccessGrant, error) {
	var grant AccessGrant
	err := r.db.WithContext(ctx).
		Where("employee_uuid = ? AND application_uuid = ?", employeeUUID, applicationUUID).
		First(&grant).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *repository) UpdateRole(ctx context.Context, employeeUUID, applicationUUID uuid.UUID, role string) error {
	result := r.db.WithContext(ctx).
		Model(&AccessGrant{}).
		Where("employee_uuid = ? AND application_uuid = ?", employeeUUID, applicationUUID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, employeeUUID, applicationUUID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("employee_uuid = ? AND application_uuid = ?", employeeUUID, applicationUUID).
		Delete(&AccessGrant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeUUID uuid.UUID) ([]EmployeeGrantRow, error) {
	var rows []EmployeeGrantRow
	err := r.db.WithContext(ctx).
		Table("access_grants AS g").
		Select("a.uuid AS application_uuid, a.name AS application_name, g.role").
		Joins("JOIN applications a ON a.uuid = g.application_uuid").
		Where("g.employee_uuid = ?", employeeUUID).
		Order("g.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByApplication(ctx context.Context, applicationUUID uuid.UUID) ([]ApplicationGrantRow, error) {
	var rows []ApplicationGrantRow
	err := r.db.WithContext(ctx).
		Table("access_grants AS g").
		Select("e.uuid AS employee_uuid, e.first_name, e.middle_name, e.last_name, e.suffix, e.email, g.role").
		Joins("JOIN employees e ON e.uuid = g.employee_uuid").
		Where("g.application_uuid = ?", applicationUUID).
		Order("g.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) HasSuperAdmin(ctx context.Context, employeeUUID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccessGrant{}).
		Where("employee_uuid = ? AND role = ?", employeeUUID, string(RoleSuperAdministrator)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeUUID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("uuid = ?", employeeUUID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ApplicationState(ctx context.Context, applicationUUID uuid.UUID) (bool, bool, error) {
	var row struct {
		IsActive bool
	}
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("is_active").
		Where("uuid = ?", applicationUUID).
		Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, row.IsActive, nil
}
