package audit

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// QueryFilters carries the already-parsed filter set. Until is an exclusive
// upper bound; the service derives it from the inclusive end-of-day `to`.
type QueryFilters struct {
	Action          string
	EmployeeUUID    string
	ApplicationUUID string
	Since           *time.Time
	Until           *time.Time
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Insert(ctx context.Context, entry *AuditLog) error
	Query(ctx context.Context, filters QueryFilters, page, perPage int) ([]AuditLogRow, int64, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

// Insert appends one entry. Raw SQL so it can share a transaction with the
// outbox write; RETURNING fills the write-time id and timestamp.
func (r *repository) Insert(ctx context.Context, entry *AuditLog) error {
	query := `
        INSERT INTO audit_logs (
            action, employee_uuid, application_uuid, ip_address, user_agent, metadata
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `

	row := r.querier().QueryRowContext(
		ctx, query,
		entry.Action, entry.EmployeeUUID, entry.ApplicationUUID,
		entry.IPAddress, entry.UserAgent, entry.Metadata,
	)
	return row.Scan(&entry.ID, &entry.CreatedAt)
}

func (r *repository) Query(ctx context.Context, filters QueryFilters, page, perPage int) ([]AuditLogRow, int64, error) {
	var total int64
	if err := r.applyFilters(r.db.WithContext(ctx).Table("audit_logs AS al"), filters).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AuditLogRow
	err := r.applyFilters(r.db.WithContext(ctx).Table("audit_logs AS al"), filters).
		Select(`al.id,
			al.action,
			al.employee_uuid,
			al.application_uuid,
			TRIM(CONCAT_WS(' ', e.first_name, e.middle_name, e.last_name, e.suffix)) AS employee_name,
			COALESCE(a.name, '') AS application_name,
			al.ip_address,
			al.user_agent,
			al.metadata,
			al.created_at`).
		Joins("LEFT JOIN employees e ON e.uuid = al.employee_uuid").
		Joins("LEFT JOIN applications a ON a.uuid = al.application_uuid").
		Order("al.created_at DESC").
		Order("al.id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Scan(&rows).Error

	return rows, total, err
}

func (r *repository) applyFilters(q *gorm.DB, filters QueryFilters) *gorm.DB {
	if filters.Action != "" {
		q = q.Where("al.action = ?", filters.Action)
	}
	if filters.EmployeeUUID != "" {
		q = q.Where("al.employee_uuid = ?", filters.EmployeeUUID)
	}
	if filters.ApplicationUUID != "" {
		q = q.Where("al.application_uuid = ?", filters.ApplicationUUID)
	}
	if filters.Since != nil {
		q = q.Where("al.created_at >= ?", *filters.Since)
	}
	if filters.Until != nil {
		q = q.Where("al.created_at < ?", *filters.Until)
	}
	return q
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
