// Package telegram implements the platform interfaces on the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"channel-relay/internal/metrics"
	"channel-relay/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// botAPI is the subset of *tgbotapi.BotAPI the client uses
type botAPI interface {
	CopyMessage(config tgbotapi.CopyMessageConfig) (tgbotapi.MessageID, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// Options configures the Telegram client
type Options struct {
	Token       string
	APIEndpoint string
	// RatePerSec and Burst bound outbound calls across all goroutines
	RatePerSec float64
	Burst      int
	// Timeout bounds a single outbound API call
	Timeout time.Duration
	// PollTimeout is the long-polling timeout for getUpdates
	PollTimeout time.Duration
	Debug       bool
	Metrics     *metrics.Metrics
}

// Client talks to the Telegram Bot API
type Client struct {
	sender      botAPI
	poller      botAPI
	limiter     *rate.Limiter
	pollTimeout time.Duration
	retryDelay  time.Duration
	username    string
	metrics     *metrics.Metrics

	// unix nanos of the last successful getUpdates
	lastPoll atomic.Int64
}

const defaultRetryDelay = 3 * time.Second

// Ensure Client implements platform.Client
var _ platform.Client = (*Client)(nil)

// New connects to the Bot API. Outbound calls and long polling use separate
// HTTP clients so that a call timeout does not cut getUpdates short.
func New(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}
	endpoint := opts.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if err := tgbotapi.SetLogger(logrus.StandardLogger()); err != nil {
		return nil, fmt.Errorf("failed to set telegram logger: %w", err)
	}

	sender, err := tgbotapi.NewBotAPIWithClient(opts.Token, endpoint, &http.Client{Timeout: opts.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	sender.Debug = opts.Debug

	poller, err := tgbotapi.NewBotAPIWithClient(opts.Token, endpoint, &http.Client{Timeout: opts.PollTimeout + opts.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	poller.Debug = opts.Debug

	logrus.WithField("username", sender.Self.UserName).Info("Authorized on Telegram")
	return newClient(sender, poller, sender.Self.UserName, opts), nil
}

func newClient(sender, poller botAPI, username string, opts Options) *Client {
	return &Client{
		sender:      sender,
		poller:      poller,
		limiter:     rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.Burst),
		pollTimeout: opts.PollTimeout,
		retryDelay:  defaultRetryDelay,
		username:    username,
		metrics:     opts.Metrics,
	}
}

// CopyMessage copies messageID from fromChatID into toChatID
func (c *Client) CopyMessage(ctx context.Context, fromChatID int64, messageID int, toChatID int64) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := c.sender.CopyMessage(tgbotapi.NewCopyMessage(toChatID, fromChatID, messageID))
	c.record("copyMessage", err)
	if err != nil {
		return fmt.Errorf("telegram copyMessage: %w", err)
	}
	return nil
}

// ResolveChat looks up a public chat by its @username
func (c *Client) ResolveChat(ctx context.Context, ref string) (platform.ChatInfo, error) {
	if !strings.HasPrefix(ref, "@") || len(ref) < 2 {
		return platform.ChatInfo{}, platform.ErrChatNotFound
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return platform.ChatInfo{}, err
	}

	chat, err := c.sender.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: ref},
	})
	c.record("getChat", err)
	if err != nil {
		if isChatNotFound(err) {
			return platform.ChatInfo{}, platform.ErrChatNotFound
		}
		return platform.ChatInfo{}, fmt.Errorf("telegram getChat: %w", err)
	}
	return chatInfo(&chat), nil
}

// SendText sends a plain text message
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	_, err := c.sender.Send(msg)
	c.record("sendMessage", err)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

func (c *Client) record(method string, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			status = strconv.Itoa(apiErr.Code)
		}
	}
	c.metrics.RecordPlatformRequest(method, status)
}

func isChatNotFound(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "chat not found")
}

func chatInfo(chat *tgbotapi.Chat) platform.ChatInfo {
	title := chat.Title
	if title == "" {
		title = strings.TrimSpace(chat.FirstName + " " + chat.LastName)
	}
	if title == "" && chat.UserName != "" {
		title = "@" + chat.UserName
	}
	return platform.ChatInfo{
		ID:       chat.ID,
		Title:    title,
		Username: chat.UserName,
	}
}
