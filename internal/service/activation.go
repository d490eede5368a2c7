package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"channel-relay/internal/database/models"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/logger"
	"channel-relay/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tokenBytes is the entropy of an activation token (96 bits, 16 characters encoded)
const tokenBytes = 12

// ActivationService issues activation tokens and redeems them exactly once
type ActivationService struct {
	tokens  repository.ActivationTokenRepositoryInterface
	tenants repository.TenantRepositoryInterface
	random  io.Reader
	now     func() time.Time
}

// Ensure ActivationService implements ActivationServiceInterface
var _ ActivationServiceInterface = (*ActivationService)(nil)

// NewActivationService creates a new activation service
func NewActivationService(tokens repository.ActivationTokenRepositoryInterface, tenants repository.TenantRepositoryInterface) *ActivationService {
	return &ActivationService{
		tokens:  tokens,
		tenants: tenants,
		random:  rand.Reader,
		now:     time.Now,
	}
}

// IssueToken creates a fresh, unconsumed token for an existing tenant
func (s *ActivationService) IssueToken(ctx context.Context, tenantID uuid.UUID) (string, error) {
	if _, err := s.tenants.GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTenantNotFound
		}
		return "", fmt.Errorf("failed to verify tenant: %w", err)
	}

	secret, err := s.generateToken()
	if err != nil {
		return "", err
	}

	token := &models.ActivationToken{
		Token:     secret,
		TenantID:  tenantID,
		CreatedAt: s.now(),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store activation token: %w", err)
	}

	logger.WithContext(ctx).WithField("tenant_id", tenantID.String()).Info("Activation token issued")
	return secret, nil
}

// RedeemToken consumes the token and makes userID the owner of its tenant.
// Of concurrent redemptions of one token exactly one succeeds; the rest get ErrTokenAlreadyUsed.
func (s *ActivationService) RedeemToken(ctx context.Context, token string, userID int64) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, apperrors.NewValidationError("token", "is required")
	}
	if userID == 0 {
		return uuid.Nil, apperrors.NewValidationError("user_id", "must be non-zero")
	}

	redeemed, err := s.tokens.Redeem(ctx, token, userID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return uuid.Nil, apperrors.ErrTokenNotFound
		case errors.Is(err, repository.ErrTokenConsumed):
			return uuid.Nil, apperrors.ErrTokenAlreadyUsed
		case errors.Is(err, repository.ErrTokenTenantMissing):
			return uuid.Nil, apperrors.ErrTenantNotFound
		default:
			return uuid.Nil, fmt.Errorf("failed to redeem activation token: %w", err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": redeemed.TenantID.String(),
		"owner_id":  userID,
	}).Info("Activation token redeemed")
	return redeemed.TenantID, nil
}

// generateToken generates a random base64url encoded token
func (s *ActivationService) generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
