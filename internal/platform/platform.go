// Package platform describes the messaging platform the relay runs on.
// Dispatch and the admin surface depend only on these interfaces; the
// Telegram implementation lives in the telegram subpackage.
package platform

import (
	"context"
	"errors"
)

//go:generate mockgen -source=platform.go -destination=../mocks/platform_mocks.go -package=mocks

// ErrChatNotFound is returned by ChatResolver when the reference does not name a chat the bot can see
var ErrChatNotFound = errors.New("platform: chat not found")

// ChatInfo describes a chat as reported by the platform
type ChatInfo struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
}

// MessageCopier copies an existing message into another chat without a forward attribution
type MessageCopier interface {
	CopyMessage(ctx context.Context, fromChatID int64, messageID int, toChatID int64) error
}

// ChatResolver turns a public @handle into chat information
type ChatResolver interface {
	ResolveChat(ctx context.Context, ref string) (ChatInfo, error)
}

// Messenger sends plain text replies
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// EventSource streams inbound events until ctx is cancelled, then closes the channel
type EventSource interface {
	Events(ctx context.Context) <-chan Event
}

// Client is the full platform surface used by the server
type Client interface {
	MessageCopier
	ChatResolver
	Messenger
	EventSource
}
