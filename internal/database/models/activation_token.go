package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivationToken is a one-time secret that hands a tenant over to whoever redeems it first
type ActivationToken struct {
	Token      string     `json:"token" gorm:"primaryKey;size:64"`
	TenantID   uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Consumed   bool       `json:"consumed" gorm:"not null;default:false"`
	ConsumedBy *int64     `json:"consumed_by,omitempty"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the table name for ActivationToken
func (ActivationToken) TableName() string {
	return "activation_tokens"
}
