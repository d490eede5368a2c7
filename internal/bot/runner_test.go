package bot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"channel-relay/internal/dispatch"
	"channel-relay/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSource struct {
	events chan platform.Event
}

func (s *chanSource) Events(ctx context.Context) <-chan platform.Event {
	return s.events
}

type recordingDispatcher struct {
	mu      sync.Mutex
	handled []platform.MessagePosted
	release chan struct{}
	active  atomic.Int32
	peak    atomic.Int32
	err     error
}

func (d *recordingDispatcher) Handle(ctx context.Context, ev platform.Event) (*dispatch.Report, error) {
	n := d.active.Add(1)
	defer d.active.Add(-1)
	for {
		p := d.peak.Load()
		if n <= p || d.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if d.release != nil {
		<-d.release
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	d.mu.Lock()
	d.handled = append(d.handled, ev.(platform.MessagePosted))
	d.mu.Unlock()
	return &dispatch.Report{}, d.err
}

type recordingCommands struct {
	mu       sync.Mutex
	commands []string
}

func (c *recordingCommands) Handle(_ context.Context, cmd platform.CommandIssued) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = append(c.commands, cmd.Command)
	if cmd.Command == "panic" {
		panic("boom")
	}
	return nil
}

func TestRun_RoutesEventsByKind(t *testing.T) {
	source := &chanSource{events: make(chan platform.Event, 4)}
	dispatcher := &recordingDispatcher{err: errors.New("lookup failed")}
	commands := &recordingCommands{}
	runner := NewRunner(source, dispatcher, commands, 2, nil)

	source.events <- platform.MessagePosted{ChatID: 100, MessageID: 5}
	source.events <- platform.CommandIssued{ChatID: 42, Command: "help"}
	source.events <- platform.Unsupported{Kind: "edited_message"}
	source.events <- platform.CommandIssued{ChatID: 42, Command: "panic"}
	close(source.events)

	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, []platform.MessagePosted{{ChatID: 100, MessageID: 5}}, dispatcher.handled)
	assert.ElementsMatch(t, []string{"help", "panic"}, commands.commands)
}

func TestRun_BoundsConcurrency(t *testing.T) {
	source := &chanSource{events: make(chan platform.Event)}
	dispatcher := &recordingDispatcher{release: make(chan struct{})}
	runner := NewRunner(source, dispatcher, &recordingCommands{}, 3, nil)

	done := make(chan error, 1)
	go func() { done <- runner.Run(context.Background()) }()

	go func() {
		for i := 0; i < 10; i++ {
			source.events <- platform.MessagePosted{ChatID: 100, MessageID: i}
		}
		close(source.events)
	}()

	require.Eventually(t, func() bool { return dispatcher.active.Load() == 3 }, time.Second, time.Millisecond)
	close(dispatcher.release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Len(t, dispatcher.handled, 10)
	assert.LessOrEqual(t, dispatcher.peak.Load(), int32(3))
}

func TestRun_InFlightEventsSurviveCancellation(t *testing.T) {
	source := &chanSource{events: make(chan platform.Event, 1)}
	dispatcher := &recordingDispatcher{release: make(chan struct{})}
	runner := NewRunner(source, dispatcher, &recordingCommands{}, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())

	source.events <- platform.MessagePosted{ChatID: 100, MessageID: 1}
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	require.Eventually(t, func() bool { return dispatcher.active.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	close(source.events)
	close(dispatcher.release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Len(t, dispatcher.handled, 1)
}
