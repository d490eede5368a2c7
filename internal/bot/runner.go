package bot

import (
	"context"

	"channel-relay/internal/dispatch"
	"channel-relay/internal/logger"
	"channel-relay/internal/metrics"
	"channel-relay/internal/platform"

	"golang.org/x/sync/errgroup"
)

// Dispatcher handles posted messages
type Dispatcher interface {
	Handle(ctx context.Context, ev platform.Event) (*dispatch.Report, error)
}

// CommandHandler handles bot commands
type CommandHandler interface {
	Handle(ctx context.Context, cmd platform.CommandIssued) error
}

// Runner consumes platform events and processes each on its own goroutine,
// at most maxConcurrent at a time
type Runner struct {
	source        platform.EventSource
	dispatcher    Dispatcher
	commands      CommandHandler
	maxConcurrent int
	metrics       *metrics.Metrics
}

// NewRunner creates a new runner. m may be nil.
func NewRunner(source platform.EventSource, dispatcher Dispatcher, commands CommandHandler, maxConcurrent int, m *metrics.Metrics) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{
		source:        source,
		dispatcher:    dispatcher,
		commands:      commands,
		maxConcurrent: maxConcurrent,
		metrics:       m,
	}
}

// Run blocks until the event stream ends, which happens when ctx is cancelled.
// Events already accepted are processed to completion under a context that
// is not cancelled with ctx.
func (r *Runner) Run(ctx context.Context) error {
	log := logger.WithContext(ctx)
	log.WithField("max_concurrent", r.maxConcurrent).Info("Bot runner started")

	work := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(r.maxConcurrent)
	for ev := range r.source.Events(ctx) {
		ev := ev
		g.Go(func() error {
			r.handle(work, ev)
			return nil
		})
	}
	_ = g.Wait()

	log.Info("Bot runner stopped")
	return nil
}

func (r *Runner) handle(ctx context.Context, ev platform.Event) {
	if r.metrics != nil {
		r.metrics.EventsInFlight.Inc()
		defer r.metrics.EventsInFlight.Dec()
	}
	defer func() {
		if rec := recover(); rec != nil {
			logger.WithContext(ctx).WithField("panic", rec).Error("Event handler panicked")
		}
	}()

	switch e := ev.(type) {
	case platform.MessagePosted:
		if _, err := r.dispatcher.Handle(ctx, e); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("source_chat_id", e.ChatID).Error("Dispatch failed")
		}
	case platform.CommandIssued:
		if err := r.commands.Handle(ctx, e); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("chat_id", e.ChatID).Warn("Failed to reply to command")
		}
	}
}
