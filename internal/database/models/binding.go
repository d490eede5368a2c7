package models

import (
	"github.com/google/uuid"
)

// SourceBinding marks a chat whose messages are forwarded for a tenant.
// The same chat may be bound to several tenants; the chat_id index serves
// the per-event lookup.
type SourceBinding struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_source_bindings_tenant_chat"`
	ChatID   int64     `json:"chat_id" gorm:"not null;uniqueIndex:idx_source_bindings_tenant_chat;index:idx_source_bindings_chat"`
	Title    string    `json:"title" gorm:"size:255" validate:"max=255"`
}

// TableName returns the table name for SourceBinding
func (SourceBinding) TableName() string {
	return "source_bindings"
}

// DestinationBinding marks a chat that receives copies of a tenant's source messages
type DestinationBinding struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_destination_bindings_tenant_chat"`
	ChatID   int64     `json:"chat_id" gorm:"not null;uniqueIndex:idx_destination_bindings_tenant_chat"`
	Title    string    `json:"title" gorm:"size:255" validate:"max=255"`
}

// TableName returns the table name for DestinationBinding
func (DestinationBinding) TableName() string {
	return "destination_bindings"
}
