package repository

import (
	"context"
	"time"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// Ensure TenantRepository implements TenantRepositoryInterface
var _ TenantRepositoryInterface = (*TenantRepository)(nil)

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create inserts a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByOwner retrieves the tenant most recently assigned to the given user
func (r *TenantRepository) GetByOwner(ctx context.Context, userID int64) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", userID).
		Order("owner_assigned_at DESC NULLS LAST").
		First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants, oldest first
func (r *TenantRepository) GetAll(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// UpdateOwner unconditionally assigns the tenant to userID
func (r *TenantRepository) UpdateOwner(ctx context.Context, id uuid.UUID, userID int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"owner_user_id":     userID,
			"owner_assigned_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
