// Package dispatch copies every message posted in a source chat to the
// destinations of each tenant that watches that chat.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"channel-relay/internal/logger"
	"channel-relay/internal/metrics"
	"channel-relay/internal/platform"
	"channel-relay/internal/service"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Router is the read side of the routing table used during dispatch
type Router interface {
	TenantsForSource(ctx context.Context, chatID int64) ([]uuid.UUID, error)
	ListDestinations(ctx context.Context, tenantID uuid.UUID) ([]service.Binding, error)
}

// DeliveryFailure is the error of one (tenant, destination) copy attempt.
// It is recorded in the Report and never returned from Handle.
type DeliveryFailure struct {
	TenantID          uuid.UUID
	SourceChatID      int64
	MessageID         int
	DestinationChatID int64
	Err               error
}

func (f *DeliveryFailure) Error() string {
	return fmt.Sprintf("deliver message %d from chat %d to chat %d for tenant %s: %v",
		f.MessageID, f.SourceChatID, f.DestinationChatID, f.TenantID, f.Err)
}

func (f *DeliveryFailure) Unwrap() error {
	return f.Err
}

// Outcome is the result of one delivery. Err is nil or a *DeliveryFailure.
type Outcome struct {
	TenantID          uuid.UUID
	DestinationChatID int64
	Err               error
}

// Report summarizes the dispatch of one source message
type Report struct {
	SourceChatID int64
	MessageID    int
	Tenants      []uuid.UUID
	Outcomes     []Outcome
}

// Attempted is the number of deliveries tried
func (r *Report) Attempted() int {
	return len(r.Outcomes)
}

// Succeeded is the number of deliveries that reached their destination
func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed is the number of deliveries that did not
func (r *Report) Failed() int {
	return r.Attempted() - r.Succeeded()
}

// Failures returns the failed deliveries
func (r *Report) Failures() []*DeliveryFailure {
	var failures []*DeliveryFailure
	for _, o := range r.Outcomes {
		var f *DeliveryFailure
		if errors.As(o.Err, &f) {
			failures = append(failures, f)
		}
	}
	return failures
}

type delivery struct {
	tenantID uuid.UUID
	chatID   int64
}

// Engine fans source messages out to destinations through a bounded worker pool
type Engine struct {
	router  Router
	copier  platform.MessageCopier
	workers int
	metrics *metrics.Metrics
}

// NewEngine creates a dispatch engine running at most workers copies at once.
// m may be nil.
func NewEngine(router Router, copier platform.MessageCopier, workers int, m *metrics.Metrics) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		router:  router,
		copier:  copier,
		workers: workers,
		metrics: m,
	}
}

// Handle dispatches MessagePosted events. Other events are ignored with a nil report.
//
// A failed tenant lookup aborts the event. A failed destination lookup skips
// that tenant only and is returned, joined, after the other tenants are served.
// Delivery failures only appear in the report.
func (e *Engine) Handle(ctx context.Context, ev platform.Event) (*Report, error) {
	msg, ok := ev.(platform.MessagePosted)
	if !ok {
		return nil, nil
	}
	return e.dispatch(ctx, msg)
}

func (e *Engine) dispatch(ctx context.Context, msg platform.MessagePosted) (*Report, error) {
	start := time.Now()
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"source_chat_id": msg.ChatID,
		"message_id":     msg.MessageID,
	})

	tenants, err := e.router.TenantsForSource(ctx, msg.ChatID)
	if err != nil {
		e.recordDispatchError("tenants")
		log.WithError(err).Error("Failed to resolve tenants for source")
		return nil, fmt.Errorf("resolve tenants for chat %d: %w", msg.ChatID, err)
	}

	report := &Report{
		SourceChatID: msg.ChatID,
		MessageID:    msg.MessageID,
		Tenants:      tenants,
	}
	if len(tenants) == 0 {
		return report, nil
	}

	var lookupErrs []error
	var deliveries []delivery
	for _, tenantID := range tenants {
		destinations, err := e.router.ListDestinations(ctx, tenantID)
		if err != nil {
			e.recordDispatchError("destinations")
			log.WithError(err).WithField("tenant_id", tenantID.String()).Error("Failed to list destinations")
			lookupErrs = append(lookupErrs, fmt.Errorf("list destinations of tenant %s: %w", tenantID, err))
			continue
		}
		for _, d := range destinations {
			deliveries = append(deliveries, delivery{tenantID: tenantID, chatID: d.ChatID})
		}
	}

	report.Outcomes = make([]Outcome, len(deliveries))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, d := range deliveries {
		i, d := i, d
		g.Go(func() error {
			report.Outcomes[i] = e.deliver(ctx, log, msg, d)
			return nil
		})
	}
	_ = g.Wait()

	if e.metrics != nil {
		e.metrics.RecordDispatch(len(deliveries), time.Since(start).Seconds())
	}
	log.WithFields(map[string]interface{}{
		"tenants":   len(tenants),
		"attempted": report.Attempted(),
		"failed":    report.Failed(),
	}).Debug("Message dispatched")

	return report, errors.Join(lookupErrs...)
}

func (e *Engine) deliver(ctx context.Context, log *logger.Logger, msg platform.MessagePosted, d delivery) Outcome {
	outcome := Outcome{TenantID: d.tenantID, DestinationChatID: d.chatID}

	if err := e.copyMessage(ctx, msg, d); err != nil {
		failure := &DeliveryFailure{
			TenantID:          d.tenantID,
			SourceChatID:      msg.ChatID,
			MessageID:         msg.MessageID,
			DestinationChatID: d.chatID,
			Err:               err,
		}
		log.WithError(err).WithFields(map[string]interface{}{
			"tenant_id":           d.tenantID.String(),
			"destination_chat_id": d.chatID,
		}).Warn("Delivery failed")
		e.recordDelivery("failure")
		outcome.Err = failure
		return outcome
	}

	e.recordDelivery("success")
	return outcome
}

// copyMessage reports a panic in the copier as the delivery's error
func (e *Engine) copyMessage(ctx context.Context, msg platform.MessagePosted, d delivery) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("copier panicked: %v", rec)
		}
	}()
	return e.copier.CopyMessage(ctx, msg.ChatID, msg.MessageID, d.chatID)
}

func (e *Engine) recordDelivery(result string) {
	if e.metrics != nil {
		e.metrics.RecordDelivery(result)
	}
}

func (e *Engine) recordDispatchError(stage string) {
	if e.metrics != nil {
		e.metrics.RecordDispatchError(stage)
	}
}
