package stats

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Counts is the raw dashboard aggregate, one round trip per figure.
type Counts struct {
	TotalEmployees     int64
	ActiveEmployees    int64
	TotalApplications  int64
	ActiveApplications int64
	RecentLogins       int64
}

type Repository interface {
	Collect(ctx context.Context, loginsSince time.Time) (Counts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Collect(ctx context.Context, loginsSince time.Time) (Counts, error) {
	var counts Counts
	db := r.db.WithContext(ctx)

	if err := db.Table("employees").Count(&counts.TotalEmployees).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Table("employees").Where("is_active = ?", true).Count(&counts.ActiveEmployees).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Table("applications").Count(&counts.TotalApplications).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Table("applications").Where("is_active = ?", true).Count(&counts.ActiveApplications).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Table("audit_logs").
		Where("action = ? AND created_at >= ?", "login", loginsSince).
		Count(&counts.RecentLogins).Error; err != nil {
		return Counts{}, err
	}

	return counts, nil
}
