package application

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application is an OAuth-style registered client of the SSO system.
// ClientID is assigned at creation and never regenerated; only the secret
// rotates. The plaintext secret is never stored.
type Application struct {
	UUID               uuid.UUID                   `gorm:"column:uuid;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string                      `gorm:"column:name;type:varchar(150);not null"`
	Description        *string                     `gorm:"column:description;type:text"`
	ClientID           string                      `gorm:"column:client_id;type:varchar(150);not null;uniqueIndex:uq_applications_client_id"`
	ClientSecretHash   string                      `gorm:"column:client_secret_hash;type:varchar(255);not null"`
	RedirectURIs       datatypes.JSONSlice[string] `gorm:"column:redirect_uris;type:jsonb;not null"`
	RateLimitPerMinute int                         `gorm:"column:rate_limit_per_minute;not null"`
	IsActive           bool                        `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}
