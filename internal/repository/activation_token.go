package repository

import (
	"context"
	"errors"
	"time"

	"channel-relay/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTokenConsumed is returned by Redeem when the token exists but was already used
	ErrTokenConsumed = errors.New("activation token already consumed")
	// ErrTokenTenantMissing is returned by Redeem when the token points at a tenant that does not exist
	ErrTokenTenantMissing = errors.New("activation token references a missing tenant")
)

// ActivationTokenRepository handles database operations for activation tokens
type ActivationTokenRepository struct {
	db *gorm.DB
}

// Ensure ActivationTokenRepository implements ActivationTokenRepositoryInterface
var _ ActivationTokenRepositoryInterface = (*ActivationTokenRepository)(nil)

// NewActivationTokenRepository creates a new activation token repository
func NewActivationTokenRepository(db *gorm.DB) *ActivationTokenRepository {
	return &ActivationTokenRepository{db: db}
}

// Create inserts a new, unconsumed token
func (r *ActivationTokenRepository) Create(ctx context.Context, token *models.ActivationToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetByToken retrieves a token by its secret value
func (r *ActivationTokenRepository) GetByToken(ctx context.Context, token string) (*models.ActivationToken, error) {
	var t models.ActivationToken
	if err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByTenantID retrieves all tokens issued for a tenant, newest first
func (r *ActivationTokenRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]models.ActivationToken, error) {
	var tokens []models.ActivationToken
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// Redeem marks the token consumed and hands its tenant to userID in one transaction.
//
// The consumed flag is flipped with a conditional UPDATE, so of several
// concurrent callers exactly one sees a row affected; the others observe
// consumed = true once the winner commits and get ErrTokenConsumed.
// A missing token yields gorm.ErrRecordNotFound.
func (r *ActivationTokenRepository) Redeem(ctx context.Context, token string, userID int64, at time.Time) (*models.ActivationToken, error) {
	var redeemed models.ActivationToken
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ActivationToken{}).
			Where("token = ? AND consumed = ?", token, false).
			Updates(map[string]interface{}{
				"consumed":    true,
				"consumed_by": userID,
				"consumed_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&redeemed, "token = ?", token).Error; err != nil {
				return err
			}
			return ErrTokenConsumed
		}

		if err := tx.First(&redeemed, "token = ?", token).Error; err != nil {
			return err
		}

		res = tx.Model(&models.Tenant{}).
			Where("id = ?", redeemed.TenantID).
			Updates(map[string]interface{}{
				"owner_user_id":     userID,
				"owner_assigned_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenTenantMissing
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &redeemed, nil
}
