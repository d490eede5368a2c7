package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is matches authorization errors carrying the same message
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UnresolvedChatReferenceError is returned when a chat handle given to an
// administrative operation cannot be turned into a numeric chat id.
type UnresolvedChatReferenceError struct {
	Reference string
	Hint      string
}

func (e *UnresolvedChatReferenceError) Error() string {
	if e.Reference == "" {
		return fmt.Sprintf("no chat reference given: %s", e.Hint)
	}
	return fmt.Sprintf("cannot resolve chat reference %q: %s", e.Reference, e.Hint)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound        = &NotFoundError{Entity: "tenant"}
	ErrTokenNotFound         = &NotFoundError{Entity: "activation token"}
	ErrSourceBindingNotFound = &NotFoundError{Entity: "source binding"}
	ErrDestinationNotFound   = &NotFoundError{Entity: "destination binding"}
	ErrPlatformChatNotFound  = &NotFoundError{Entity: "chat"}
)

// Activation Errors
var (
	ErrTokenAlreadyUsed = errors.New("activation token has already been used")
)

// Authorization Errors
var (
	ErrUnauthorized    = &AuthorizationError{Message: "caller does not own any tenant"}
	ErrNotProcessOwner = &AuthorizationError{Message: "operation is reserved for the bot owner"}
	ErrMissingCallerID = &AuthenticationError{Message: "caller user id not found in context"}
)

// ChatReferenceHint is the remediation text attached to unresolved chat references.
const ChatReferenceHint = "pass the numeric chat id (e.g. -1001234567890), a public @username the bot can see, " +
	"or reply to a message forwarded from that chat"

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUnresolvedChatReference checks if an error is an UnresolvedChatReferenceError
func IsUnresolvedChatReference(err error) bool {
	var refErr *UnresolvedChatReferenceError
	return errors.As(err, &refErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUnresolvedChatReferenceError wraps a chat reference that could not be resolved
func NewUnresolvedChatReferenceError(reference string) error {
	return &UnresolvedChatReferenceError{Reference: reference, Hint: ChatReferenceHint}
}
