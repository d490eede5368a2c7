package repository

import (
	"context"
	"time"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByOwner(ctx context.Context, userID int64) (*models.Tenant, error)
	GetAll(ctx context.Context) ([]models.Tenant, error)
	UpdateOwner(ctx context.Context, id uuid.UUID, userID int64, at time.Time) error
}

// ActivationTokenRepositoryInterface defines the interface for activation token repository operations
type ActivationTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.ActivationToken) error
	GetByToken(ctx context.Context, token string) (*models.ActivationToken, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.ActivationToken, error)
	Redeem(ctx context.Context, token string, userID int64, at time.Time) (*models.ActivationToken, error)
}

// SourceBindingRepositoryInterface defines the interface for source binding repository operations
type SourceBindingRepositoryInterface interface {
	Upsert(ctx context.Context, binding *models.SourceBinding) error
	Delete(ctx context.Context, tenantID uuid.UUID, chatID int64) error
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.SourceBinding, error)
	GetTenantIDsByChatID(ctx context.Context, chatID int64) ([]uuid.UUID, error)
}

// DestinationBindingRepositoryInterface defines the interface for destination binding repository operations
type DestinationBindingRepositoryInterface interface {
	Upsert(ctx context.Context, binding *models.DestinationBinding) error
	Delete(ctx context.Context, tenantID uuid.UUID, chatID int64) error
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.DestinationBinding, error)
}
