package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for the tenant directory
type TenantServiceInterface interface {
	CreateTenant(ctx context.Context, ownerUserID int64, name string) (uuid.UUID, error)
	FindTenantByOwner(ctx context.Context, userID int64) (uuid.UUID, error)
	ReassignOwner(ctx context.Context, tenantID uuid.UUID, newUserID int64) error
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResponse, error)
	ListTenants(ctx context.Context) ([]TenantResponse, error)
}

// ActivationServiceInterface defines the interface for activation token issue and redemption
type ActivationServiceInterface interface {
	IssueToken(ctx context.Context, tenantID uuid.UUID) (string, error)
	RedeemToken(ctx context.Context, token string, userID int64) (uuid.UUID, error)
}

// RoutingServiceInterface defines the interface for the routing table
type RoutingServiceInterface interface {
	AddSource(ctx context.Context, tenantID uuid.UUID, chatID int64, title string) error
	RemoveSource(ctx context.Context, tenantID uuid.UUID, chatID int64) error
	ListSources(ctx context.Context, tenantID uuid.UUID) ([]Binding, error)
	AddDestination(ctx context.Context, tenantID uuid.UUID, chatID int64, title string) error
	RemoveDestination(ctx context.Context, tenantID uuid.UUID, chatID int64) error
	ListDestinations(ctx context.Context, tenantID uuid.UUID) ([]Binding, error)
	TenantsForSource(ctx context.Context, chatID int64) ([]uuid.UUID, error)
}

// AdminServiceInterface defines the interface for caller-authorized administration,
// shared by chat commands and the HTTP API
type AdminServiceInterface interface {
	IsProcessOwner(caller int64) bool
	CreateTenant(ctx context.Context, caller int64, name string) (*CreatedTenantResponse, error)
	IssueToken(ctx context.Context, caller int64, tenantID uuid.UUID) (string, error)
	ListTenants(ctx context.Context, caller int64) ([]TenantResponse, error)
	Activate(ctx context.Context, caller int64, token string) (uuid.UUID, error)
	AddSource(ctx context.Context, caller int64, ref ChatRef) (*Binding, error)
	RemoveSource(ctx context.Context, caller int64, ref ChatRef) (*Binding, error)
	ListSources(ctx context.Context, caller int64) ([]Binding, error)
	AddDestination(ctx context.Context, caller int64, ref ChatRef) (*Binding, error)
	RemoveDestination(ctx context.Context, caller int64, ref ChatRef) (*Binding, error)
	ListDestinations(ctx context.Context, caller int64) ([]Binding, error)
}
