package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Action labels the security-relevant event an entry records. The set is
// open to extension but every stored value must be one of these labels.
type Action string

const (
	ActionLogin                Action = "login"
	ActionLogout               Action = "logout"
	ActionLogoutAll            Action = "logout_all"
	ActionTokenRefresh         Action = "token_refresh"
	ActionTokenValidate        Action = "token_validate"
	ActionAppAuthorize         Action = "app_authorize"
	ActionEmployeeCreated      Action = "employee_created"
	ActionEmployeeUpdated      Action = "employee_updated"
	ActionEmployeeDeleted      Action = "employee_deleted"
	ActionAppCreated           Action = "app_created"
	ActionAppUpdated           Action = "app_updated"
	ActionAppDeleted           Action = "app_deleted"
	ActionAppSecretRegenerated Action = "app_secret_regenerated"
	ActionAccessGranted        Action = "access_granted"
	ActionRoleUpdated          Action = "role_updated"
	ActionAccessRevoked        Action = "access_revoked"
)

var recognizedActions = map[Action]struct{}{
	ActionLogin:                {},
	ActionLogout:               {},
	ActionLogoutAll:            {},
	ActionTokenRefresh:         {},
	ActionTokenValidate:        {},
	ActionAppAuthorize:         {},
	ActionEmployeeCreated:      {},
	ActionEmployeeUpdated:      {},
	ActionEmployeeDeleted:      {},
	ActionAppCreated:           {},
	ActionAppUpdated:           {},
	ActionAppDeleted:           {},
	ActionAppSecretRegenerated: {},
	ActionAccessGranted:        {},
	ActionRoleUpdated:          {},
	ActionAccessRevoked:        {},
}

func (a Action) Recognized() bool {
	_, ok := recognizedActions[a]
	return ok
}

// AuditLog rows are append-only: no update or delete path exists anywhere
// in this codebase, and the entity carries no UpdatedAt/DeletedAt on purpose.
type AuditLog struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Action          string         `gorm:"column:action;type:varchar(50);not null;index"`
	EmployeeUUID    *uuid.UUID     `gorm:"column:employee_uuid;type:uuid;index"`
	ApplicationUUID *uuid.UUID     `gorm:"column:application_uuid;type:uuid;index"`
	IPAddress       string         `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent       string         `gorm:"column:user_agent;type:text"`
	Metadata        datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogRow is the read-side projection with partner names joined in.
type AuditLogRow struct {
	ID              int64
	Action          string
	EmployeeUUID    *uuid.UUID
	ApplicationUUID *uuid.UUID
	EmployeeName    string
	ApplicationName string
	IPAddress       string
	UserAgent       string
	Metadata        datatypes.JSON
	CreatedAt       time.Time
}
