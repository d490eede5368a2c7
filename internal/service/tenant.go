package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"channel-relay/internal/database/models"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantService handles business logic for the tenant directory
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// Ensure TenantService implements TenantServiceInterface
var _ TenantServiceInterface = (*TenantService)(nil)

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	OwnerUserID     *int64     `json:"owner_user_id,omitempty"`
	OwnerAssignedAt *time.Time `json:"owner_assigned_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateTenant persists a new tenant. ownerUserID 0 leaves the tenant unowned
// until its activation token is redeemed.
func (s *TenantService) CreateTenant(ctx context.Context, ownerUserID int64, name string) (uuid.UUID, error) {
	req := &CreateTenantRequest{Name: strings.TrimSpace(name)}
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, apperrors.NewValidationError("name", err.Error())
	}

	tenant := &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      req.Name,
	}
	if ownerUserID != 0 {
		at := s.now()
		tenant.OwnerUserID = &ownerUserID
		tenant.OwnerAssignedAt = &at
	}

	if err := s.repo.Create(ctx, tenant); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant.ID, nil
}

// FindTenantByOwner returns the tenant currently administered by userID
func (s *TenantService) FindTenantByOwner(ctx context.Context, userID int64) (uuid.UUID, error) {
	if userID == 0 {
		return uuid.Nil, apperrors.ErrTenantNotFound
	}
	tenant, err := s.repo.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrTenantNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to find tenant by owner: %w", err)
	}
	return tenant.ID, nil
}

// ReassignOwner hands the tenant to newUserID without any check of the previous owner
func (s *TenantService) ReassignOwner(ctx context.Context, tenantID uuid.UUID, newUserID int64) error {
	if newUserID == 0 {
		return apperrors.NewValidationError("user_id", "must be non-zero")
	}
	if err := s.repo.UpdateOwner(ctx, tenantID, newUserID, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to reassign tenant owner: %w", err)
	}
	return nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	response := toTenantResponse(tenant)
	return &response, nil
}

// ListTenants retrieves all tenants
func (s *TenantService) ListTenants(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = toTenantResponse(&tenants[i])
	}
	return responses, nil
}

func toTenantResponse(tenant *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:              tenant.ID,
		Name:            tenant.Name,
		OwnerUserID:     tenant.OwnerUserID,
		OwnerAssignedAt: tenant.OwnerAssignedAt,
		CreatedAt:       tenant.CreatedAt,
	}
}
