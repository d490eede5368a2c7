package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"channel-relay/internal/metrics"
	"channel-relay/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu      sync.Mutex
	copies  []tgbotapi.CopyMessageConfig
	sent    []tgbotapi.Chattable
	chats   map[string]tgbotapi.Chat
	copyErr error
	chatErr error
	updates chan tgbotapi.Update
	polls   []tgbotapi.UpdateConfig
	pollErr error
}

func newFakeBot() *fakeBot {
	return &fakeBot{
		chats:   map[string]tgbotapi.Chat{},
		updates: make(chan tgbotapi.Update),
	}
}

func (b *fakeBot) CopyMessage(config tgbotapi.CopyMessageConfig) (tgbotapi.MessageID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.copies = append(b.copies, config)
	if b.copyErr != nil {
		return tgbotapi.MessageID{}, b.copyErr
	}
	return tgbotapi.MessageID{MessageID: len(b.copies)}, nil
}

func (b *fakeBot) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	if b.chatErr != nil {
		return tgbotapi.Chat{}, b.chatErr
	}
	chat, ok := b.chats[config.SuperGroupUsername]
	if !ok {
		return tgbotapi.Chat{}, &tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"}
	}
	return chat, nil
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

// GetUpdates hands out at most one queued update per call and returns an
// empty batch after a short wait, like a long poll that timed out.
func (b *fakeBot) GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error) {
	b.mu.Lock()
	b.polls = append(b.polls, config)
	err := b.pollErr
	b.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if config.Timeout == 0 {
		return nil, nil
	}
	select {
	case update := <-b.updates:
		return []tgbotapi.Update{update}, nil
	case <-time.After(10 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBot) pollCalls() []tgbotapi.UpdateConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.UpdateConfig(nil), b.polls...)
}

func testOptions(m *metrics.Metrics) Options {
	return Options{RatePerSec: 1000, Burst: 10, PollTimeout: time.Second, Metrics: m}
}

func TestCopyMessage(t *testing.T) {
	bot := newFakeBot()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	client := newClient(bot, bot, "relay_bot", testOptions(m))

	require.NoError(t, client.CopyMessage(context.Background(), 100, 5, 200))

	require.Len(t, bot.copies, 1)
	assert.Equal(t, int64(200), bot.copies[0].ChatID)
	assert.Equal(t, int64(100), bot.copies[0].FromChatID)
	assert.Equal(t, 5, bot.copies[0].MessageID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformRequests.WithLabelValues("copyMessage", "ok")))
}

func TestCopyMessage_APIError(t *testing.T) {
	bot := newFakeBot()
	bot.copyErr = &tgbotapi.Error{Code: 403, Message: "Forbidden: bot is not a member of the channel chat"}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	client := newClient(bot, bot, "relay_bot", testOptions(m))

	err := client.CopyMessage(context.Background(), 100, 5, 200)

	require.Error(t, err)
	var apiErr *tgbotapi.Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformRequests.WithLabelValues("copyMessage", "403")))
}

func TestCopyMessage_CancelledContext(t *testing.T) {
	bot := newFakeBot()
	client := newClient(bot, bot, "relay_bot", testOptions(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.CopyMessage(ctx, 100, 5, 200)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, bot.copies)
}

func TestResolveChat(t *testing.T) {
	bot := newFakeBot()
	bot.chats["@relay_out"] = tgbotapi.Chat{ID: -100200, Type: "channel", Title: "Relay out", UserName: "relay_out"}
	client := newClient(bot, bot, "relay_bot", testOptions(nil))

	info, err := client.ResolveChat(context.Background(), "@relay_out")

	require.NoError(t, err)
	assert.Equal(t, platform.ChatInfo{ID: -100200, Title: "Relay out", Username: "relay_out"}, info)
}

func TestResolveChat_NotFound(t *testing.T) {
	bot := newFakeBot()
	client := newClient(bot, bot, "relay_bot", testOptions(nil))

	_, err := client.ResolveChat(context.Background(), "@ghost")
	assert.ErrorIs(t, err, platform.ErrChatNotFound)

	_, err = client.ResolveChat(context.Background(), "ghost")
	assert.ErrorIs(t, err, platform.ErrChatNotFound)
}

func TestResolveChat_TransportError(t *testing.T) {
	bot := newFakeBot()
	bot.chatErr = errors.New("dial tcp: i/o timeout")
	client := newClient(bot, bot, "relay_bot", testOptions(nil))

	_, err := client.ResolveChat(context.Background(), "@relay_out")

	require.Error(t, err)
	assert.NotErrorIs(t, err, platform.ErrChatNotFound)
}

func TestSendText(t *testing.T) {
	bot := newFakeBot()
	client := newClient(bot, bot, "relay_bot", testOptions(nil))

	require.NoError(t, client.SendText(context.Background(), 42, "hello"))

	require.Len(t, bot.sent, 1)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "hello", msg.Text)
}

func TestChatInfo_TitleFallbacks(t *testing.T) {
	assert.Equal(t, "Ann Lee", chatInfo(&tgbotapi.Chat{ID: 1, FirstName: "Ann", LastName: "Lee"}).Title)
	assert.Equal(t, "@ann", chatInfo(&tgbotapi.Chat{ID: 1, UserName: "ann"}).Title)
}
