package access

import (
	"time"

	"github.com/google/uuid"
)

// Role is the label an employee holds on one application. Roles carry no
// privilege ordering here; they are opaque to the SSO core except for
// RoleSuperAdministrator, which gates access to this dashboard itself.
type Role string

const (
	RoleGuest              Role = "guest"
	RoleStandard           Role = "standard"
	RoleAdministrator      Role = "administrator"
	RoleSuperAdministrator Role = "super_administrator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleStandard, RoleAdministrator, RoleSuperAdministrator:
		return true
	}
	return false
}

// AccessGrant is one edge of the employee-application relation. The unique
// index on the pair is what makes duplicate grants a conflict instead of a
// race.
type AccessGrant struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeUUID    uuid.UUID `gorm:"column:employee_uuid;type:uuid;not null;uniqueIndex:uq_access_grants_pair,priority:1"`
	ApplicationUUID uuid.UUID `gorm:"column:application_uuid;type:uuid;not null;uniqueIndex:uq_access_grants_pair,priority:2"`
	Role            string    `gorm:"column:role;type:varchar(30);not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AccessGrant) TableName() string {
	return "access_grants"
}

// EmployeeGrantRow joins an employee's grants with application fields.
type EmployeeGrantRow struct {
	ApplicationUUID uuid.UUID
	ApplicationName string
	Role            string
}

// ApplicationGrantRow joins an application's grants with employee fields.
type ApplicationGrantRow struct {
	EmployeeUUID uuid.UUID
	FirstName    string
	MiddleName   *string
	LastName     string
	Suffix       *string
	Email        string
	Role         string
}
