package bot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"channel-relay/internal/auth"
	"channel-relay/internal/bot"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/mocks"
	"channel-relay/internal/platform"
	"channel-relay/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubTokens struct{}

func (stubTokens) GenerateJWT(userID int64) (*auth.TokenResponse, error) {
	return &auth.TokenResponse{
		AccessToken: "jwt-for-user",
		TokenType:   "Bearer",
		ExpiresAt:   time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
	}, nil
}

type CommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAdmin     *mocks.MockAdminServiceInterface
	mockMessenger *mocks.MockMessenger
	commands      *bot.Commands
	ctx           context.Context
}

func (suite *CommandsTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAdmin = mocks.NewMockAdminServiceInterface(suite.ctrl)
	suite.mockMessenger = mocks.NewMockMessenger(suite.ctrl)
	suite.commands = bot.NewCommands(suite.mockAdmin, suite.mockMessenger, stubTokens{}, nil)
	suite.ctx = context.Background()
}

func (suite *CommandsTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func private(command, args string) platform.CommandIssued {
	return platform.CommandIssued{ChatID: 42, UserID: 42, Private: true, Command: command, Args: args}
}

// expectReply captures the text sent to chatID
func (suite *CommandsTestSuite) expectReply(chatID int64) *string {
	var text string
	suite.mockMessenger.EXPECT().SendText(gomock.Any(), chatID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, t string) error {
			text = t
			return nil
		})
	return &text
}

func (suite *CommandsTestSuite) TestHelp_ShowsOwnerSectionToOwnerOnly() {
	suite.mockAdmin.EXPECT().IsProcessOwner(int64(42)).Return(false)
	reply := suite.expectReply(42)
	suite.NoError(suite.commands.Handle(suite.ctx, private("help", "")))
	assert.Contains(suite.T(), *reply, "/add_source")
	assert.NotContains(suite.T(), *reply, "/create_tenant")

	suite.mockAdmin.EXPECT().IsProcessOwner(int64(42)).Return(true)
	reply = suite.expectReply(42)
	suite.NoError(suite.commands.Handle(suite.ctx, private("start", "")))
	assert.Contains(suite.T(), *reply, "/create_tenant")
}

func (suite *CommandsTestSuite) TestCreateTenant() {
	tenantID := uuid.New()
	suite.mockAdmin.EXPECT().CreateTenant(gomock.Any(), int64(42), "Acme").Return(
		&service.CreatedTenantResponse{TenantID: tenantID, Name: "Acme", Token: "secret"}, nil)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("create_tenant", "Acme")))

	assert.Contains(suite.T(), *reply, tenantID.String())
	assert.Contains(suite.T(), *reply, "/activate secret")
}

func (suite *CommandsTestSuite) TestSecretCommands_RefusedInGroups() {
	for _, command := range []string{"create_tenant", "issue_token", "activate", "api_token"} {
		reply := suite.expectReply(-100)
		cmd := platform.CommandIssued{ChatID: -100, UserID: 42, Command: command, Args: "x"}

		suite.NoError(suite.commands.Handle(suite.ctx, cmd))

		assert.Contains(suite.T(), *reply, "private chat", command)
	}
}

func (suite *CommandsTestSuite) TestIssueToken_Usage() {
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("issue_token", "not-a-uuid")))

	assert.Equal(suite.T(), "Usage: /issue_token <tenant-id>", *reply)
}

func (suite *CommandsTestSuite) TestActivate() {
	tenantID := uuid.New()
	suite.mockAdmin.EXPECT().Activate(gomock.Any(), int64(42), "abc").Return(tenantID, nil)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("activate", "abc")))

	assert.Contains(suite.T(), *reply, tenantID.String())
}

func (suite *CommandsTestSuite) TestActivate_ErrorReplies() {
	testCases := []struct {
		err      error
		expected string
	}{
		{err: apperrors.ErrTokenAlreadyUsed, expected: "already been used"},
		{err: apperrors.ErrTokenNotFound, expected: "Unknown activation token"},
		{err: errors.New("connection refused"), expected: "Something went wrong"},
	}

	for _, tc := range testCases {
		suite.mockAdmin.EXPECT().Activate(gomock.Any(), int64(42), "abc").Return(uuid.Nil, tc.err)
		reply := suite.expectReply(42)

		suite.NoError(suite.commands.Handle(suite.ctx, private("activate", "abc")))

		assert.Contains(suite.T(), *reply, tc.expected)
		assert.NotContains(suite.T(), *reply, "connection refused")
	}
}

func (suite *CommandsTestSuite) TestAddSource_InGroupUsesCurrentChat() {
	current := &platform.ChatInfo{ID: -100, Title: "Ops"}
	suite.mockAdmin.EXPECT().AddSource(gomock.Any(), int64(42), service.ChatRef{Fallback: current}).Return(
		&service.Binding{ChatID: -100, Title: "Ops"}, nil)
	reply := suite.expectReply(-100)

	cmd := platform.CommandIssued{ChatID: -100, UserID: 42, Command: "add_source", CurrentChat: current}
	suite.NoError(suite.commands.Handle(suite.ctx, cmd))

	assert.Equal(suite.T(), "Now watching Ops (-100).", *reply)
}

func (suite *CommandsTestSuite) TestAddDestination_ForwardedChatWinsOverCurrentChat() {
	forwarded := &platform.ChatInfo{ID: -300, Title: "Digest"}
	suite.mockAdmin.EXPECT().AddDestination(gomock.Any(), int64(42), service.ChatRef{Fallback: forwarded}).Return(
		&service.Binding{ChatID: -300, Title: "Digest"}, nil)
	suite.expectReply(-100)

	cmd := platform.CommandIssued{
		ChatID: -100, UserID: 42, Command: "add_destination",
		ReferencedChat: forwarded,
		CurrentChat:    &platform.ChatInfo{ID: -100},
	}
	suite.NoError(suite.commands.Handle(suite.ctx, cmd))
}

func (suite *CommandsTestSuite) TestRemoveDestination_Unauthorized() {
	suite.mockAdmin.EXPECT().RemoveDestination(gomock.Any(), int64(42), service.ChatRef{Arg: "200"}).Return(nil, apperrors.ErrUnauthorized)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("remove_destination", "200")))

	assert.Contains(suite.T(), *reply, "/activate")
}

func (suite *CommandsTestSuite) TestAddSource_UnresolvedReference() {
	suite.mockAdmin.EXPECT().AddSource(gomock.Any(), int64(42), service.ChatRef{Arg: "@ghost"}).Return(
		nil, apperrors.NewUnresolvedChatReferenceError("@ghost"))
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("add_source", "@ghost")))

	assert.Contains(suite.T(), *reply, "@ghost")
	assert.Contains(suite.T(), *reply, apperrors.ChatReferenceHint)
}

func (suite *CommandsTestSuite) TestListDestinations() {
	suite.mockAdmin.EXPECT().ListDestinations(gomock.Any(), int64(42)).Return([]service.Binding{
		{ChatID: 200, Title: "A"},
		{ChatID: 201},
	}, nil)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("list_destinations", "")))

	assert.Equal(suite.T(), "Destination chats:\n- A (200)\n- 201", *reply)
}

func (suite *CommandsTestSuite) TestListSources_Empty() {
	suite.mockAdmin.EXPECT().ListSources(gomock.Any(), int64(42)).Return(nil, nil)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("list_sources", "")))

	assert.Equal(suite.T(), "Source chats: none", *reply)
}

func (suite *CommandsTestSuite) TestTenants() {
	owner := int64(42)
	suite.mockAdmin.EXPECT().ListTenants(gomock.Any(), int64(42)).Return([]service.TenantResponse{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Acme", OwnerUserID: &owner},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222")},
	}, nil)
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("tenants", "")))

	assert.Contains(suite.T(), *reply, "Acme [11111111-1111-1111-1111-111111111111] (owner 42)")
	assert.Contains(suite.T(), *reply, "22222222-2222-2222-2222-222222222222 (not activated)")
}

func (suite *CommandsTestSuite) TestAPIToken() {
	reply := suite.expectReply(42)

	suite.NoError(suite.commands.Handle(suite.ctx, private("api_token", "")))

	assert.Contains(suite.T(), *reply, "jwt-for-user")
	assert.Contains(suite.T(), *reply, "2024-05-01 13:00 UTC")
}

func (suite *CommandsTestSuite) TestUnknownCommand() {
	reply := suite.expectReply(42)
	suite.NoError(suite.commands.Handle(suite.ctx, private("frobnicate", "")))
	assert.Contains(suite.T(), *reply, "/help")

	// silent in groups, where the command may be meant for another bot
	suite.NoError(suite.commands.Handle(suite.ctx, platform.CommandIssued{ChatID: -100, UserID: 42, Command: "frobnicate"}))
}

func (suite *CommandsTestSuite) TestReplyFailureIsReturned() {
	suite.mockAdmin.EXPECT().IsProcessOwner(int64(42)).Return(false)
	suite.mockMessenger.EXPECT().SendText(gomock.Any(), int64(42), gomock.Any()).Return(errors.New("blocked by user"))

	err := suite.commands.Handle(suite.ctx, private("help", ""))

	assert.EqualError(suite.T(), err, "blocked by user")
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}
