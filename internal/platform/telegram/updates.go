package telegram

import (
	"context"
	"strings"
	"time"

	"channel-relay/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var allowedUpdates = []string{"message", "channel_post"}

// Events long-polls getUpdates and converts each update into a platform event.
// An update is confirmed to Telegram only after it has been received from the
// channel; updates fetched but not yet handed over when ctx is cancelled are
// delivered again on the next start. The channel is closed once the poll in
// flight at cancellation returns, which can take up to the poll timeout.
func (c *Client) Events(ctx context.Context) <-chan platform.Event {
	out := make(chan platform.Event)
	go c.poll(ctx, out)
	return out
}

// LastPoll is when getUpdates last succeeded, zero before the first poll
func (c *Client) LastPoll() time.Time {
	nanos := c.lastPoll.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}

func (c *Client) poll(ctx context.Context, out chan<- platform.Event) {
	defer close(out)

	// offset is the next update id to fetch; everything below it was handed over
	offset, confirmed := 0, 0
	defer func() {
		if offset > confirmed {
			c.confirm(offset)
		}
	}()

	for ctx.Err() == nil {
		cfg := tgbotapi.NewUpdate(offset)
		cfg.Timeout = int(c.pollTimeout.Seconds())
		cfg.AllowedUpdates = allowedUpdates

		updates, err := c.poller.GetUpdates(cfg)
		c.record("getUpdates", err)
		if err != nil {
			logrus.WithError(err).Warn("Failed to poll Telegram updates")
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retryDelay):
			}
			continue
		}
		confirmed = offset
		c.lastPoll.Store(time.Now().UnixNano())

		for _, update := range updates {
			ev := toEvent(update, c.username)
			if c.metrics != nil {
				c.metrics.RecordEvent(eventKind(ev))
			}
			select {
			case out <- ev:
				offset = update.UpdateID + 1
			case <-ctx.Done():
				return
			}
		}
	}
}

// confirm acknowledges every update below offset without waiting for new ones
func (c *Client) confirm(offset int) {
	cfg := tgbotapi.NewUpdate(offset)
	cfg.Timeout = 0
	cfg.Limit = 1
	cfg.AllowedUpdates = allowedUpdates

	_, err := c.poller.GetUpdates(cfg)
	c.record("getUpdates", err)
	if err != nil {
		logrus.WithError(err).WithField("offset", offset).Warn("Failed to confirm Telegram updates")
	}
}

// toEvent classifies an update. Commands addressed to another bot are plain group messages.
func toEvent(update tgbotapi.Update, botUsername string) platform.Event {
	if post := update.ChannelPost; post != nil && post.Chat != nil {
		return platform.MessagePosted{ChatID: post.Chat.ID, MessageID: post.MessageID}
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return platform.Unsupported{Kind: updateKind(update)}
	}

	if msg.IsCommand() && addressedTo(msg, botUsername) {
		cmd := platform.CommandIssued{
			ChatID:         msg.Chat.ID,
			Private:        msg.Chat.IsPrivate(),
			Command:        strings.ToLower(msg.Command()),
			Args:           strings.TrimSpace(msg.CommandArguments()),
			ReferencedChat: referencedChat(msg),
		}
		if msg.From != nil {
			cmd.UserID = msg.From.ID
		}
		if !cmd.Private {
			current := chatInfo(msg.Chat)
			cmd.CurrentChat = &current
		}
		return cmd
	}

	if msg.Chat.IsPrivate() {
		return platform.Unsupported{Kind: "private_message"}
	}
	return platform.MessagePosted{ChatID: msg.Chat.ID, MessageID: msg.MessageID}
}

func addressedTo(msg *tgbotapi.Message, botUsername string) bool {
	withAt := msg.CommandWithAt()
	at := strings.Index(withAt, "@")
	if at < 0 || botUsername == "" {
		return true
	}
	return strings.EqualFold(withAt[at+1:], botUsername)
}

// referencedChat is the origin of a forwarded message carried by, or replied to by, msg
func referencedChat(msg *tgbotapi.Message) *platform.ChatInfo {
	for _, m := range []*tgbotapi.Message{msg, msg.ReplyToMessage} {
		if m != nil && m.ForwardFromChat != nil {
			info := chatInfo(m.ForwardFromChat)
			return &info
		}
	}
	return nil
}

func updateKind(update tgbotapi.Update) string {
	switch {
	case update.EditedMessage != nil:
		return "edited_message"
	case update.EditedChannelPost != nil:
		return "edited_channel_post"
	case update.CallbackQuery != nil:
		return "callback_query"
	default:
		return "unknown"
	}
}

func eventKind(ev platform.Event) string {
	switch e := ev.(type) {
	case platform.MessagePosted:
		return "message"
	case platform.CommandIssued:
		return "command"
	case platform.Unsupported:
		return e.Kind
	default:
		return "unknown"
	}
}
