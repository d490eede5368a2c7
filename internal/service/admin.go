package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/logger"
	"channel-relay/internal/platform"

	"github.com/google/uuid"
)

// AdminService authorizes a calling platform user and performs administrative
// operations on the tenant that user owns
type AdminService struct {
	tenants     TenantServiceInterface
	activation  ActivationServiceInterface
	routing     RoutingServiceInterface
	resolver    platform.ChatResolver
	ownerUserID int64
}

// Ensure AdminService implements AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)

// NewAdminService creates a new admin service. ownerUserID is the operator of
// the bot who alone may create tenants and issue tokens.
func NewAdminService(tenants TenantServiceInterface, activation ActivationServiceInterface, routing RoutingServiceInterface, resolver platform.ChatResolver, ownerUserID int64) *AdminService {
	return &AdminService{
		tenants:     tenants,
		activation:  activation,
		routing:     routing,
		resolver:    resolver,
		ownerUserID: ownerUserID,
	}
}

// ChatRef identifies the chat an administrative operation targets.
// Arg is an explicit numeric id or @handle; Fallback is used when Arg is empty,
// typically the origin of a forwarded message or the chat the command was issued in.
type ChatRef struct {
	Arg      string             `json:"chat"`
	Fallback *platform.ChatInfo `json:"-"`
}

// CreatedTenantResponse is a new tenant together with its first activation token
type CreatedTenantResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name"`
	Token    string    `json:"token"`
}

// IsProcessOwner reports whether caller operates the bot
func (s *AdminService) IsProcessOwner(caller int64) bool {
	return s.ownerUserID != 0 && caller == s.ownerUserID
}

func (s *AdminService) requireProcessOwner(caller int64) error {
	if !s.IsProcessOwner(caller) {
		return apperrors.ErrNotProcessOwner
	}
	return nil
}

// authorize returns the tenant owned by caller
func (s *AdminService) authorize(ctx context.Context, caller int64) (uuid.UUID, error) {
	tenantID, err := s.tenants.FindTenantByOwner(ctx, caller)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			return uuid.Nil, apperrors.ErrUnauthorized
		}
		return uuid.Nil, err
	}
	return tenantID, nil
}

// CreateTenant creates an unowned tenant and issues its first activation token
func (s *AdminService) CreateTenant(ctx context.Context, caller int64, name string) (*CreatedTenantResponse, error) {
	if err := s.requireProcessOwner(caller); err != nil {
		return nil, err
	}

	tenantID, err := s.tenants.CreateTenant(ctx, 0, name)
	if err != nil {
		return nil, err
	}
	token, err := s.activation.IssueToken(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("tenant_id", tenantID.String()).Info("Tenant created")
	return &CreatedTenantResponse{
		TenantID: tenantID,
		Name:     strings.TrimSpace(name),
		Token:    token,
	}, nil
}

// IssueToken issues an additional activation token for an existing tenant
func (s *AdminService) IssueToken(ctx context.Context, caller int64, tenantID uuid.UUID) (string, error) {
	if err := s.requireProcessOwner(caller); err != nil {
		return "", err
	}
	return s.activation.IssueToken(ctx, tenantID)
}

// ListTenants lists every tenant
func (s *AdminService) ListTenants(ctx context.Context, caller int64) ([]TenantResponse, error) {
	if err := s.requireProcessOwner(caller); err != nil {
		return nil, err
	}
	return s.tenants.ListTenants(ctx)
}

// Activate redeems token for caller
func (s *AdminService) Activate(ctx context.Context, caller int64, token string) (uuid.UUID, error) {
	return s.activation.RedeemToken(ctx, token, caller)
}

// AddSource binds the referenced chat as a source of the caller's tenant
func (s *AdminService) AddSource(ctx context.Context, caller int64, ref ChatRef) (*Binding, error) {
	tenantID, chat, err := s.authorizeAndResolve(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if err := s.routing.AddSource(ctx, tenantID, chat.ID, chat.Title); err != nil {
		return nil, err
	}
	return &Binding{TenantID: tenantID, ChatID: chat.ID, Title: chat.Title}, nil
}

// RemoveSource unbinds the referenced chat from the caller's tenant sources
func (s *AdminService) RemoveSource(ctx context.Context, caller int64, ref ChatRef) (*Binding, error) {
	tenantID, chat, err := s.authorizeAndResolve(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if err := s.routing.RemoveSource(ctx, tenantID, chat.ID); err != nil {
		return nil, err
	}
	return &Binding{TenantID: tenantID, ChatID: chat.ID, Title: chat.Title}, nil
}

// ListSources lists the caller's tenant sources
func (s *AdminService) ListSources(ctx context.Context, caller int64) ([]Binding, error) {
	tenantID, err := s.authorize(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.routing.ListSources(ctx, tenantID)
}

// AddDestination binds the referenced chat as a destination of the caller's tenant
func (s *AdminService) AddDestination(ctx context.Context, caller int64, ref ChatRef) (*Binding, error) {
	tenantID, chat, err := s.authorizeAndResolve(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if err := s.routing.AddDestination(ctx, tenantID, chat.ID, chat.Title); err != nil {
		return nil, err
	}
	return &Binding{TenantID: tenantID, ChatID: chat.ID, Title: chat.Title}, nil
}

// RemoveDestination unbinds the referenced chat from the caller's tenant destinations
func (s *AdminService) RemoveDestination(ctx context.Context, caller int64, ref ChatRef) (*Binding, error) {
	tenantID, chat, err := s.authorizeAndResolve(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if err := s.routing.RemoveDestination(ctx, tenantID, chat.ID); err != nil {
		return nil, err
	}
	return &Binding{TenantID: tenantID, ChatID: chat.ID, Title: chat.Title}, nil
}

// ListDestinations lists the caller's tenant destinations
func (s *AdminService) ListDestinations(ctx context.Context, caller int64) ([]Binding, error) {
	tenantID, err := s.authorize(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.routing.ListDestinations(ctx, tenantID)
}

// authorizeAndResolve checks ownership before the chat reference is resolved,
// so unauthorized callers never reach the platform or the routing table
func (s *AdminService) authorizeAndResolve(ctx context.Context, caller int64, ref ChatRef) (uuid.UUID, platform.ChatInfo, error) {
	tenantID, err := s.authorize(ctx, caller)
	if err != nil {
		return uuid.Nil, platform.ChatInfo{}, err
	}
	chat, err := s.resolveChat(ctx, ref)
	if err != nil {
		return uuid.Nil, platform.ChatInfo{}, err
	}
	return tenantID, chat, nil
}

// resolveChat turns ref into a numeric chat id: numeric argument, then @handle, then fallback
func (s *AdminService) resolveChat(ctx context.Context, ref ChatRef) (platform.ChatInfo, error) {
	arg := strings.TrimSpace(ref.Arg)

	if arg == "" {
		if ref.Fallback != nil && ref.Fallback.ID != 0 {
			return *ref.Fallback, nil
		}
		return platform.ChatInfo{}, apperrors.NewUnresolvedChatReferenceError("")
	}

	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if id == 0 {
			return platform.ChatInfo{}, apperrors.NewUnresolvedChatReferenceError(arg)
		}
		return platform.ChatInfo{ID: id}, nil
	}

	if !strings.HasPrefix(arg, "@") || len(arg) < 2 || s.resolver == nil {
		return platform.ChatInfo{}, apperrors.NewUnresolvedChatReferenceError(arg)
	}

	chat, err := s.resolver.ResolveChat(ctx, arg)
	if err != nil {
		if errors.Is(err, platform.ErrChatNotFound) {
			return platform.ChatInfo{}, apperrors.NewUnresolvedChatReferenceError(arg)
		}
		return platform.ChatInfo{}, fmt.Errorf("failed to resolve chat %s: %w", arg, err)
	}
	if chat.ID == 0 {
		return platform.ChatInfo{}, apperrors.NewUnresolvedChatReferenceError(arg)
	}
	return chat, nil
}
