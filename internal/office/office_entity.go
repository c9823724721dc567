package office

import "time"

// Office is a department of the LGU. The table is seeded by migration and
// managed by DBAs, so the API surface is read-only.
type Office struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(150);not null"`
	Abbreviation string    `gorm:"column:abbreviation;type:varchar(30);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Office) TableName() string {
	return "offices"
}
