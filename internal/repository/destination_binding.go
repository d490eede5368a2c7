package repository

import (
	"context"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DestinationBindingRepository handles database operations for destination bindings
type DestinationBindingRepository struct {
	db *gorm.DB
}

// Ensure DestinationBindingRepository implements DestinationBindingRepositoryInterface
var _ DestinationBindingRepositoryInterface = (*DestinationBindingRepository)(nil)

// NewDestinationBindingRepository creates a new destination binding repository
func NewDestinationBindingRepository(db *gorm.DB) *DestinationBindingRepository {
	return &DestinationBindingRepository{db: db}
}

// Upsert inserts the binding or refreshes the title of the existing (tenant, chat) pair
func (r *DestinationBindingRepository) Upsert(ctx context.Context, binding *models.DestinationBinding) error {
	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "chat_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(binding).Error
}

// Delete removes the (tenant, chat) binding. Removing an absent binding is not an error.
func (r *DestinationBindingRepository) Delete(ctx context.Context, tenantID uuid.UUID, chatID int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND chat_id = ?", tenantID, chatID).
		Delete(&models.DestinationBinding{}).Error
}

// GetByTenantID retrieves all destination bindings of a tenant.
// Order is not part of the contract.
func (r *DestinationBindingRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.DestinationBinding, error) {
	var bindings []models.DestinationBinding
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&bindings).Error; err != nil {
		return nil, err
	}
	return bindings, nil
}
