package models

import (
	"time"
)

// Tenant is a licensed routing scope administered by at most one platform user.
// OwnerUserID is nil until the tenant's activation token is redeemed.
type Tenant struct {
	BaseModel
	Name            string     `json:"name" gorm:"size:100" validate:"max=100"`
	OwnerUserID     *int64     `json:"owner_user_id,omitempty" gorm:"index"`
	OwnerAssignedAt *time.Time `json:"owner_assigned_at,omitempty"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
