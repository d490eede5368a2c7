// Package bot turns inbound platform events into dispatches and command replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"channel-relay/internal/auth"
	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/logger"
	"channel-relay/internal/metrics"
	"channel-relay/internal/platform"
	"channel-relay/internal/service"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TokenIssuer mints admin API tokens
type TokenIssuer interface {
	GenerateJWT(userID int64) (*auth.TokenResponse, error)
}

// replyable is an error whose message is safe and useful to show to the caller
type replyable struct {
	text string
}

func (r *replyable) Error() string { return r.text }

var errPrivateOnly = &replyable{text: "Use this command in a private chat with me, it carries a secret."}

const helpText = `I copy every message posted in your source chats to your destination chats.

Getting started
/activate <token> - take over the tenant the token was issued for

Routing (reference a chat by numeric id, by @username, by replying to a message forwarded from it, or by running the command inside it)
/add_source [chat] - watch a chat
/remove_source [chat] - stop watching a chat
/list_sources - show watched chats
/add_destination [chat] - copy messages to a chat
/remove_destination [chat] - stop copying to a chat
/list_destinations - show destination chats

Other
/api_token - get a short-lived token for the HTTP admin API
/help - show this message`

const ownerHelpText = `

Bot owner
/create_tenant [name] - create a tenant and its first activation token
/issue_token <tenant-id> - issue another activation token
/tenants - list tenants`

// Commands executes bot commands on behalf of the calling user
type Commands struct {
	admin     service.AdminServiceInterface
	messenger platform.Messenger
	tokens    TokenIssuer
	metrics   *metrics.Metrics
}

// NewCommands creates a command handler. m may be nil.
func NewCommands(admin service.AdminServiceInterface, messenger platform.Messenger, tokens TokenIssuer, m *metrics.Metrics) *Commands {
	return &Commands{
		admin:     admin,
		messenger: messenger,
		tokens:    tokens,
		metrics:   m,
	}
}

// Handle runs cmd and replies in the chat it was issued in.
// Only a failure to send the reply is returned.
func (h *Commands) Handle(ctx context.Context, cmd platform.CommandIssued) error {
	ctx = logger.ContextWithUser(ctx, cmd.UserID)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"command": cmd.Command,
		"chat_id": cmd.ChatID,
	})

	reply, known, err := h.execute(ctx, cmd)
	result := "ok"
	switch {
	case !known:
		result = "unknown"
		if !cmd.Private {
			return nil
		}
		reply = "Unknown command. Send /help for the list of commands."
	case err != nil:
		result = errorClass(err)
		reply = errorReply(err)
		if result == "internal" {
			log.WithError(err).Error("Command failed")
		} else {
			log.WithError(err).Debug("Command rejected")
		}
	}

	if h.metrics != nil {
		label := cmd.Command
		if !known {
			label = "unknown"
		}
		h.metrics.RecordCommand(label, result)
	}
	if reply == "" {
		return nil
	}
	return h.messenger.SendText(ctx, cmd.ChatID, reply)
}

func (h *Commands) execute(ctx context.Context, cmd platform.CommandIssued) (string, bool, error) {
	var (
		reply string
		err   error
	)
	switch cmd.Command {
	case "start", "help":
		reply = helpText
		if h.admin.IsProcessOwner(cmd.UserID) {
			reply += ownerHelpText
		}
	case "create_tenant":
		reply, err = h.createTenant(ctx, cmd)
	case "issue_token":
		reply, err = h.issueToken(ctx, cmd)
	case "tenants":
		reply, err = h.listTenants(ctx, cmd)
	case "activate":
		reply, err = h.activate(ctx, cmd)
	case "add_source":
		reply, err = h.bind(ctx, cmd, h.admin.AddSource, "Now watching %s.")
	case "remove_source":
		reply, err = h.bind(ctx, cmd, h.admin.RemoveSource, "No longer watching %s.")
	case "list_sources":
		reply, err = h.list(ctx, cmd, h.admin.ListSources, "Source chats")
	case "add_destination":
		reply, err = h.bind(ctx, cmd, h.admin.AddDestination, "Messages will be copied to %s.")
	case "remove_destination":
		reply, err = h.bind(ctx, cmd, h.admin.RemoveDestination, "Messages will no longer be copied to %s.")
	case "list_destinations":
		reply, err = h.list(ctx, cmd, h.admin.ListDestinations, "Destination chats")
	case "api_token":
		reply, err = h.apiToken(cmd)
	default:
		return "", false, nil
	}
	return reply, true, err
}

func (h *Commands) createTenant(ctx context.Context, cmd platform.CommandIssued) (string, error) {
	if !cmd.Private {
		return "", errPrivateOnly
	}
	created, err := h.admin.CreateTenant(ctx, cmd.UserID, cmd.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Tenant %s created.\nActivation token: %s\nThe first user to send /activate %s becomes its administrator.",
		displayTenant(created.TenantID, created.Name), created.Token, created.Token), nil
}

func (h *Commands) issueToken(ctx context.Context, cmd platform.CommandIssued) (string, error) {
	if !cmd.Private {
		return "", errPrivateOnly
	}
	tenantID, err := uuid.Parse(strings.TrimSpace(cmd.Args))
	if err != nil {
		return "", &replyable{text: "Usage: /issue_token <tenant-id>"}
	}
	token, err := h.admin.IssueToken(ctx, cmd.UserID, tenantID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Activation token for %s: %s", tenantID, token), nil
}

func (h *Commands) listTenants(ctx context.Context, cmd platform.CommandIssued) (string, error) {
	tenants, err := h.admin.ListTenants(ctx, cmd.UserID)
	if err != nil {
		return "", err
	}
	if len(tenants) == 0 {
		return "No tenants yet. Create one with /create_tenant <name>.", nil
	}
	lines := lo.Map(tenants, func(t service.TenantResponse, _ int) string {
		owner := "not activated"
		if t.OwnerUserID != nil {
			owner = fmt.Sprintf("owner %d", *t.OwnerUserID)
		}
		return fmt.Sprintf("- %s (%s)", displayTenant(t.ID, t.Name), owner)
	})
	return "Tenants:\n" + strings.Join(lines, "\n"), nil
}

func (h *Commands) activate(ctx context.Context, cmd platform.CommandIssued) (string, error) {
	if !cmd.Private {
		return "", errPrivateOnly
	}
	token := strings.TrimSpace(cmd.Args)
	if token == "" {
		return "", &replyable{text: "Usage: /activate <token>"}
	}
	tenantID, err := h.admin.Activate(ctx, cmd.UserID, token)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Activated. You now administer tenant %s. Add chats with /add_source and /add_destination.", tenantID), nil
}

type bindFunc func(ctx context.Context, caller int64, ref service.ChatRef) (*service.Binding, error)

func (h *Commands) bind(ctx context.Context, cmd platform.CommandIssued, fn bindFunc, format string) (string, error) {
	binding, err := fn(ctx, cmd.UserID, chatRef(cmd))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, displayChat(binding.ChatID, binding.Title)), nil
}

type listFunc func(ctx context.Context, caller int64) ([]service.Binding, error)

func (h *Commands) list(ctx context.Context, cmd platform.CommandIssued, fn listFunc, heading string) (string, error) {
	bindings, err := fn(ctx, cmd.UserID)
	if err != nil {
		return "", err
	}
	if len(bindings) == 0 {
		return heading + ": none", nil
	}
	lines := lo.Map(bindings, func(b service.Binding, _ int) string {
		return "- " + displayChat(b.ChatID, b.Title)
	})
	return heading + ":\n" + strings.Join(lines, "\n"), nil
}

func (h *Commands) apiToken(cmd platform.CommandIssued) (string, error) {
	if !cmd.Private {
		return "", errPrivateOnly
	}
	if h.tokens == nil {
		return "", &replyable{text: "The HTTP admin API is not enabled."}
	}
	token, err := h.tokens.GenerateJWT(cmd.UserID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Admin API token (valid until %s):\n%s",
		token.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"), token.AccessToken), nil
}

// chatRef prefers an explicit argument, then a forwarded message, then the current group
func chatRef(cmd platform.CommandIssued) service.ChatRef {
	ref := service.ChatRef{Arg: strings.TrimSpace(cmd.Args)}
	if cmd.ReferencedChat != nil {
		ref.Fallback = cmd.ReferencedChat
	} else if cmd.CurrentChat != nil {
		ref.Fallback = cmd.CurrentChat
	}
	return ref
}

func displayChat(chatID int64, title string) string {
	if title == "" {
		return fmt.Sprintf("%d", chatID)
	}
	return fmt.Sprintf("%s (%d)", title, chatID)
}

func displayTenant(id uuid.UUID, name string) string {
	if name == "" {
		return id.String()
	}
	return fmt.Sprintf("%s [%s]", name, id)
}

func errorClass(err error) string {
	var r *replyable
	switch {
	case errors.As(err, &r), apperrors.IsValidation(err), apperrors.IsUnresolvedChatReference(err):
		return "invalid"
	case apperrors.IsAuthorization(err):
		return "forbidden"
	case errors.Is(err, apperrors.ErrTokenAlreadyUsed), apperrors.IsNotFound(err):
		return "rejected"
	default:
		return "internal"
	}
}

func errorReply(err error) string {
	var r *replyable
	switch {
	case errors.As(err, &r):
		return r.text
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "You do not administer a tenant yet. Redeem an activation token with /activate <token>."
	case errors.Is(err, apperrors.ErrNotProcessOwner):
		return "This command is reserved for the bot owner."
	case errors.Is(err, apperrors.ErrTokenAlreadyUsed):
		return "This activation token has already been used."
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return "Unknown activation token."
	case apperrors.IsUnresolvedChatReference(err), apperrors.IsValidation(err), apperrors.IsNotFound(err):
		return err.Error()
	default:
		return "Something went wrong, please try again later."
	}
}
