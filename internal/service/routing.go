package service

import (
	"context"
	"fmt"
	"time"

	"channel-relay/internal/database/models"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RoutingService maintains the per-tenant source and destination bindings
type RoutingService struct {
	sources      repository.SourceBindingRepositoryInterface
	destinations repository.DestinationBindingRepositoryInterface
	validator    *validator.Validate
}

// Ensure RoutingService implements RoutingServiceInterface
var _ RoutingServiceInterface = (*RoutingService)(nil)

// NewRoutingService creates a new routing service
func NewRoutingService(sources repository.SourceBindingRepositoryInterface, destinations repository.DestinationBindingRepositoryInterface, validator *validator.Validate) *RoutingService {
	return &RoutingService{
		sources:      sources,
		destinations: destinations,
		validator:    validator,
	}
}

// Binding is a chat bound to a tenant as a source or destination
type Binding struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	ChatID    int64     `json:"chat_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// bindingRequest is validated before any routing table write
type bindingRequest struct {
	TenantID uuid.UUID `validate:"required"`
	ChatID   int64     `validate:"required"`
	Title    string    `validate:"max=255"`
}

func (s *RoutingService) validate(tenantID uuid.UUID, chatID int64, title string) error {
	if tenantID == uuid.Nil {
		return apperrors.NewValidationError("tenant_id", "is required")
	}
	if err := s.validator.Struct(&bindingRequest{TenantID: tenantID, ChatID: chatID, Title: title}); err != nil {
		return apperrors.NewValidationError("binding", err.Error())
	}
	return nil
}

// AddSource binds chatID as a source of tenantID. Adding an existing pair only refreshes its title.
func (s *RoutingService) AddSource(ctx context.Context, tenantID uuid.UUID, chatID int64, title string) error {
	if err := s.validate(tenantID, chatID, title); err != nil {
		return err
	}
	binding := &models.SourceBinding{TenantID: tenantID, ChatID: chatID, Title: title}
	if err := s.sources.Upsert(ctx, binding); err != nil {
		return fmt.Errorf("failed to add source: %w", err)
	}
	return nil
}

// RemoveSource unbinds chatID from tenantID. Removing an absent binding succeeds.
func (s *RoutingService) RemoveSource(ctx context.Context, tenantID uuid.UUID, chatID int64) error {
	if err := s.sources.Delete(ctx, tenantID, chatID); err != nil {
		return fmt.Errorf("failed to remove source: %w", err)
	}
	return nil
}

// ListSources returns the source bindings of a tenant
func (s *RoutingService) ListSources(ctx context.Context, tenantID uuid.UUID) ([]Binding, error) {
	bindings, err := s.sources.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return lo.Map(bindings, func(b models.SourceBinding, _ int) Binding {
		return Binding{TenantID: b.TenantID, ChatID: b.ChatID, Title: b.Title, CreatedAt: b.CreatedAt}
	}), nil
}

// AddDestination binds chatID as a destination of tenantID. Adding an existing pair only refreshes its title.
func (s *RoutingService) AddDestination(ctx context.Context, tenantID uuid.UUID, chatID int64, title string) error {
	if err := s.validate(tenantID, chatID, title); err != nil {
		return err
	}
	binding := &models.DestinationBinding{TenantID: tenantID, ChatID: chatID, Title: title}
	if err := s.destinations.Upsert(ctx, binding); err != nil {
		return fmt.Errorf("failed to add destination: %w", err)
	}
	return nil
}

// RemoveDestination unbinds chatID from tenantID. Removing an absent binding succeeds.
func (s *RoutingService) RemoveDestination(ctx context.Context, tenantID uuid.UUID, chatID int64) error {
	if err := s.destinations.Delete(ctx, tenantID, chatID); err != nil {
		return fmt.Errorf("failed to remove destination: %w", err)
	}
	return nil
}

// ListDestinations returns a snapshot of the destination bindings of a tenant
func (s *RoutingService) ListDestinations(ctx context.Context, tenantID uuid.UUID) ([]Binding, error) {
	bindings, err := s.destinations.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return lo.Map(bindings, func(b models.DestinationBinding, _ int) Binding {
		return Binding{TenantID: b.TenantID, ChatID: b.ChatID, Title: b.Title, CreatedAt: b.CreatedAt}
	}), nil
}

// TenantsForSource returns the distinct tenants that have chatID as a source
func (s *RoutingService) TenantsForSource(ctx context.Context, chatID int64) ([]uuid.UUID, error) {
	ids, err := s.sources.GetTenantIDsByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenants for source: %w", err)
	}
	return ids, nil
}
