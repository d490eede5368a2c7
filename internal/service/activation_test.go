package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"channel-relay/internal/database/models"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/mocks"
	"channel-relay/internal/repository"
	"channel-relay/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ActivationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTokenRepo     *mocks.MockActivationTokenRepositoryInterface
	mockTenantRepo    *mocks.MockTenantRepositoryInterface
	activationService *service.ActivationService
	fixedNow          time.Time
	ctx               context.Context
}

func (suite *ActivationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTokenRepo = mocks.NewMockActivationTokenRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.activationService = service.NewActivationService(suite.mockTokenRepo, suite.mockTenantRepo)
	suite.fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.activationService.SetClock(func() time.Time { return suite.fixedNow })
	suite.ctx = context.Background()
}

func (suite *ActivationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActivationServiceTestSuite) TestIssueToken() {
	tenantID := uuid.New()
	suite.activationService.SetRandom(bytes.NewReader(bytes.Repeat([]byte{0xff}, 12)))

	var stored *models.ActivationToken
	suite.mockTenantRepo.EXPECT().GetByID(gomock.Any(), tenantID).Return(&models.Tenant{}, nil)
	suite.mockTokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, t *models.ActivationToken) error {
			stored = t
			return nil
		})

	token, err := suite.activationService.IssueToken(suite.ctx, tenantID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "________________", token)
	suite.Require().NotNil(stored)
	assert.Equal(suite.T(), token, stored.Token)
	assert.Equal(suite.T(), tenantID, stored.TenantID)
	assert.False(suite.T(), stored.Consumed)
	assert.Equal(suite.T(), suite.fixedNow, stored.CreatedAt)
}

func (suite *ActivationServiceTestSuite) TestIssueToken_IsRandomAndURLSafe() {
	tenantID := uuid.New()
	suite.mockTenantRepo.EXPECT().GetByID(gomock.Any(), tenantID).Return(&models.Tenant{}, nil).Times(2)
	suite.mockTokenRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := suite.activationService.IssueToken(suite.ctx, tenantID)
	suite.Require().NoError(err)
	second, err := suite.activationService.IssueToken(suite.ctx, tenantID)
	suite.Require().NoError(err)

	assert.Len(suite.T(), first, 16)
	assert.Regexp(suite.T(), `^[A-Za-z0-9_-]+$`, first)
	assert.NotEqual(suite.T(), first, second)
}

func (suite *ActivationServiceTestSuite) TestIssueToken_TenantNotFound() {
	tenantID := uuid.New()
	suite.mockTenantRepo.EXPECT().GetByID(gomock.Any(), tenantID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.activationService.IssueToken(suite.ctx, tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

func (suite *ActivationServiceTestSuite) TestIssueToken_EntropyFailure() {
	tenantID := uuid.New()
	suite.activationService.SetRandom(bytes.NewReader(nil))
	suite.mockTenantRepo.EXPECT().GetByID(gomock.Any(), tenantID).Return(&models.Tenant{}, nil)

	_, err := suite.activationService.IssueToken(suite.ctx, tenantID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to generate random bytes")
}

// Token "abc" of tenant 1: user 42 redeems it, then user 43 is refused
func (suite *ActivationServiceTestSuite) TestRedeemToken_SecondRedemptionRefused() {
	tenantID := uuid.New()
	gomock.InOrder(
		suite.mockTokenRepo.EXPECT().Redeem(gomock.Any(), "abc", int64(42), suite.fixedNow).Return(
			&models.ActivationToken{Token: "abc", TenantID: tenantID, Consumed: true}, nil),
		suite.mockTokenRepo.EXPECT().Redeem(gomock.Any(), "abc", int64(43), suite.fixedNow).Return(
			nil, repository.ErrTokenConsumed),
	)

	got, err := suite.activationService.RedeemToken(suite.ctx, "abc", 42)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenantID, got)

	got, err = suite.activationService.RedeemToken(suite.ctx, "abc", 43)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTokenAlreadyUsed)
	assert.Equal(suite.T(), uuid.Nil, got)
}

func (suite *ActivationServiceTestSuite) TestRedeemToken_ErrorMapping() {
	testCases := []struct {
		name     string
		repoErr  error
		expected error
	}{
		{name: "unknown token", repoErr: gorm.ErrRecordNotFound, expected: apperrors.ErrTokenNotFound},
		{name: "consumed token", repoErr: repository.ErrTokenConsumed, expected: apperrors.ErrTokenAlreadyUsed},
		{name: "tenant deleted", repoErr: repository.ErrTokenTenantMissing, expected: apperrors.ErrTenantNotFound},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockTokenRepo.EXPECT().Redeem(gomock.Any(), "tok", int64(42), gomock.Any()).Return(nil, tc.repoErr)

			_, err := suite.activationService.RedeemToken(suite.ctx, "tok", 42)

			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func (suite *ActivationServiceTestSuite) TestRedeemToken_StoreUnavailable() {
	suite.mockTokenRepo.EXPECT().Redeem(gomock.Any(), "tok", int64(42), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := suite.activationService.RedeemToken(suite.ctx, "tok", 42)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection reset")
	assert.NotErrorIs(suite.T(), err, apperrors.ErrTokenAlreadyUsed)
}

func (suite *ActivationServiceTestSuite) TestRedeemToken_InvalidInput() {
	_, err := suite.activationService.RedeemToken(suite.ctx, "   ", 42)
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.activationService.RedeemToken(suite.ctx, "abc", 0)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestActivationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivationServiceTestSuite))
}
