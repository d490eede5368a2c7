package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/mocks"
	"channel-relay/internal/platform"
	"channel-relay/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const botOwner int64 = 1

type AdminServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTenants    *mocks.MockTenantServiceInterface
	mockActivation *mocks.MockActivationServiceInterface
	mockRouting    *mocks.MockRoutingServiceInterface
	mockResolver   *mocks.MockChatResolver
	adminService   *service.AdminService
	tenantID       uuid.UUID
	ctx            context.Context
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenants = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.mockActivation = mocks.NewMockActivationServiceInterface(suite.ctrl)
	suite.mockRouting = mocks.NewMockRoutingServiceInterface(suite.ctrl)
	suite.mockResolver = mocks.NewMockChatResolver(suite.ctrl)
	suite.adminService = service.NewAdminService(suite.mockTenants, suite.mockActivation, suite.mockRouting, suite.mockResolver, botOwner)
	suite.tenantID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminServiceTestSuite) expectOwner(caller int64) {
	suite.mockTenants.EXPECT().FindTenantByOwner(gomock.Any(), caller).Return(suite.tenantID, nil)
}

func (suite *AdminServiceTestSuite) TestCreateTenant_IssuesFirstToken() {
	suite.mockTenants.EXPECT().CreateTenant(gomock.Any(), int64(0), "Acme").Return(suite.tenantID, nil)
	suite.mockActivation.EXPECT().IssueToken(gomock.Any(), suite.tenantID).Return("secret", nil)

	resp, err := suite.adminService.CreateTenant(suite.ctx, botOwner, "Acme")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.tenantID, resp.TenantID)
	assert.Equal(suite.T(), "Acme", resp.Name)
	assert.Equal(suite.T(), "secret", resp.Token)
}

func (suite *AdminServiceTestSuite) TestOwnerOnlyOperations_RejectOthers() {
	_, err := suite.adminService.CreateTenant(suite.ctx, 42, "Acme")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotProcessOwner)

	_, err = suite.adminService.IssueToken(suite.ctx, 42, suite.tenantID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotProcessOwner)

	_, err = suite.adminService.ListTenants(suite.ctx, 42)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotProcessOwner)
}

func (suite *AdminServiceTestSuite) TestIsProcessOwner_Unconfigured() {
	admin := service.NewAdminService(suite.mockTenants, suite.mockActivation, suite.mockRouting, nil, 0)

	assert.False(suite.T(), admin.IsProcessOwner(0))
	assert.True(suite.T(), suite.adminService.IsProcessOwner(botOwner))
}

func (suite *AdminServiceTestSuite) TestActivate() {
	suite.mockActivation.EXPECT().RedeemToken(gomock.Any(), "abc", int64(42)).Return(suite.tenantID, nil)

	got, err := suite.adminService.Activate(suite.ctx, 42, "abc")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.tenantID, got)
}

func (suite *AdminServiceTestSuite) TestAddSource_NumericReference() {
	suite.expectOwner(42)
	suite.mockRouting.EXPECT().AddSource(gomock.Any(), suite.tenantID, int64(-100123), "").Return(nil)

	binding, err := suite.adminService.AddSource(suite.ctx, 42, service.ChatRef{Arg: "-100123"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(-100123), binding.ChatID)
	assert.Equal(suite.T(), suite.tenantID, binding.TenantID)
}

func (suite *AdminServiceTestSuite) TestAddDestination_HandleReference() {
	suite.expectOwner(42)
	suite.mockResolver.EXPECT().ResolveChat(gomock.Any(), "@relay_out").Return(
		platform.ChatInfo{ID: -100200, Title: "Relay out", Username: "relay_out"}, nil)
	suite.mockRouting.EXPECT().AddDestination(gomock.Any(), suite.tenantID, int64(-100200), "Relay out").Return(nil)

	binding, err := suite.adminService.AddDestination(suite.ctx, 42, service.ChatRef{Arg: "@relay_out"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Relay out", binding.Title)
}

func (suite *AdminServiceTestSuite) TestAddSource_FallbackReference() {
	suite.expectOwner(42)
	suite.mockRouting.EXPECT().AddSource(gomock.Any(), suite.tenantID, int64(-100300), "Forwarded").Return(nil)

	_, err := suite.adminService.AddSource(suite.ctx, 42, service.ChatRef{
		Fallback: &platform.ChatInfo{ID: -100300, Title: "Forwarded"},
	})

	assert.NoError(suite.T(), err)
}

func (suite *AdminServiceTestSuite) TestUnresolvedReferences_LeaveTableUntouched() {
	testCases := []struct {
		name  string
		ref   service.ChatRef
		setup func()
	}{
		{name: "empty reference", ref: service.ChatRef{}},
		{name: "zero id", ref: service.ChatRef{Arg: "0"}},
		{name: "free text", ref: service.ChatRef{Arg: "my channel"}},
		{name: "bare at sign", ref: service.ChatRef{Arg: "@"}},
		{
			name: "unknown handle",
			ref:  service.ChatRef{Arg: "@ghost"},
			setup: func() {
				suite.mockResolver.EXPECT().ResolveChat(gomock.Any(), "@ghost").Return(platform.ChatInfo{}, platform.ErrChatNotFound)
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.expectOwner(42)
			if tc.setup != nil {
				tc.setup()
			}

			_, err := suite.adminService.AddSource(suite.ctx, 42, tc.ref)

			assert.True(t, apperrors.IsUnresolvedChatReference(err), "got %v", err)
			var unresolved *apperrors.UnresolvedChatReferenceError
			if assert.ErrorAs(t, err, &unresolved) {
				assert.Equal(t, apperrors.ChatReferenceHint, unresolved.Hint)
			}
		})
	}
}

func (suite *AdminServiceTestSuite) TestResolverFailure_Propagates() {
	suite.expectOwner(42)
	suite.mockResolver.EXPECT().ResolveChat(gomock.Any(), "@busy").Return(platform.ChatInfo{}, errors.New("429 too many requests"))

	_, err := suite.adminService.RemoveDestination(suite.ctx, 42, service.ChatRef{Arg: "@busy"})

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsUnresolvedChatReference(err))
}

func (suite *AdminServiceTestSuite) TestUnauthorizedCaller_NeverTouchesRoutingTable() {
	suite.mockTenants.EXPECT().FindTenantByOwner(gomock.Any(), int64(99)).Return(uuid.Nil, apperrors.ErrTenantNotFound).Times(6)

	_, err := suite.adminService.AddSource(suite.ctx, 99, service.ChatRef{Arg: "100"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	_, err = suite.adminService.RemoveSource(suite.ctx, 99, service.ChatRef{Arg: "100"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	_, err = suite.adminService.ListSources(suite.ctx, 99)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	_, err = suite.adminService.AddDestination(suite.ctx, 99, service.ChatRef{Arg: "200"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	_, err = suite.adminService.RemoveDestination(suite.ctx, 99, service.ChatRef{Arg: "200"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	_, err = suite.adminService.ListDestinations(suite.ctx, 99)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *AdminServiceTestSuite) TestAuthorizationStoreError_IsNotMasked() {
	suite.mockTenants.EXPECT().FindTenantByOwner(gomock.Any(), int64(42)).Return(uuid.Nil, errors.New("db down"))

	_, err := suite.adminService.ListDestinations(suite.ctx, 42)

	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *AdminServiceTestSuite) TestRemoveSourceAndList() {
	suite.expectOwner(42)
	suite.mockRouting.EXPECT().RemoveSource(gomock.Any(), suite.tenantID, int64(100)).Return(nil)
	_, err := suite.adminService.RemoveSource(suite.ctx, 42, service.ChatRef{Arg: "100"})
	assert.NoError(suite.T(), err)

	suite.expectOwner(42)
	suite.mockRouting.EXPECT().ListSources(gomock.Any(), suite.tenantID).Return([]service.Binding{{ChatID: 101}}, nil)
	sources, err := suite.adminService.ListSources(suite.ctx, 42)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sources, 1)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
