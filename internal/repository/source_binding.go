package repository

import (
	"context"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SourceBindingRepository handles database operations for source bindings
type SourceBindingRepository struct {
	db *gorm.DB
}

// Ensure SourceBindingRepository implements SourceBindingRepositoryInterface
var _ SourceBindingRepositoryInterface = (*SourceBindingRepository)(nil)

// NewSourceBindingRepository creates a new source binding repository
func NewSourceBindingRepository(db *gorm.DB) *SourceBindingRepository {
	return &SourceBindingRepository{db: db}
}

// Upsert inserts the binding or refreshes the title of the existing (tenant, chat) pair.
// binding is populated with the stored row.
func (r *SourceBindingRepository) Upsert(ctx context.Context, binding *models.SourceBinding) error {
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
func (r *SourceBindingRepository) Delete(ctx context.Context, tenantID uuid.UUID, chatID int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND chat_id = ?", tenantID, chatID).
		Delete(&models.SourceBinding{}).Error
}

// GetByTenantID retrieves all source bindings of a tenant
func (r *SourceBindingRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.SourceBinding, error) {
	var bindings []models.SourceBinding
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&bindings).Error; err != nil {
		return nil, err
	}
	return bindings, nil
}

// GetTenantIDsByChatID returns the distinct tenants watching chatID
func (r *SourceBindingRepository) GetTenantIDsByChatID(ctx context.Context, chatID int64) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.SourceBinding{}).
		Where("chat_id = ?", chatID).
		Distinct().
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
