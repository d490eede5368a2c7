package testutils

import (
	"time"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates an unowned test Tenant
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Tenant",
	}
}

// WithOwner creates a test Tenant owned by userID
func (f *TenantFactory) WithOwner(userID int64) *models.Tenant {
	tenant := f.Create()
	now := time.Now()
	tenant.OwnerUserID = &userID
	tenant.OwnerAssignedAt = &now
	return tenant
}

// ActivationTokenFactory provides methods to create test ActivationToken data
type ActivationTokenFactory struct{}

// NewActivationTokenFactory creates a new ActivationTokenFactory
func NewActivationTokenFactory() *ActivationTokenFactory {
	return &ActivationTokenFactory{}
}

// Create creates an unconsumed token for tenantID
func (f *ActivationTokenFactory) Create(tenantID uuid.UUID, token string) *models.ActivationToken {
	return &models.ActivationToken{
		Token:     token,
		TenantID:  tenantID,
		CreatedAt: time.Now(),
	}
}

// BindingFactory provides methods to create test source and destination bindings
type BindingFactory struct{}

// NewBindingFactory creates a new BindingFactory
func NewBindingFactory() *BindingFactory {
	return &BindingFactory{}
}

// Source creates a source binding of chatID for tenantID
func (f *BindingFactory) Source(tenantID uuid.UUID, chatID int64, title string) *models.SourceBinding {
	return &models.SourceBinding{
		TenantID: tenantID,
		ChatID:   chatID,
		Title:    title,
	}
}

// Destination creates a destination binding of chatID for tenantID
func (f *BindingFactory) Destination(tenantID uuid.UUID, chatID int64, title string) *models.DestinationBinding {
	return &models.DestinationBinding{
		TenantID: tenantID,
		ChatID:   chatID,
		Title:    title,
	}
}
