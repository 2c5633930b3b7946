package poller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/tracing"
)

const (
	defaultInterval    = 2 * time.Second
	defaultMaxAttempts = 5
)

var errStillPending = errors.New("transaction still pending")

type Reconciler interface {
	Reconcile(ctx context.Context, txID string) (reconciler.Classification, error)
}

type StatusStore interface {
	UpdateStatus(ctx context.Context, txID string, update store.StatusUpdate) (bool, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, data []byte) error
}

type State string

const (
	StatePending   State = "pending"
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
	// StateTimedOut means all attempts were used up. The record stays pending.
	StateTimedOut State = "timed_out"
)

type Outcome struct {
	TxID           string
	State          State
	ConfirmedRound uint64
	Reason         string
}

// StatusEvent is published whenever the poller persisted a status change.
type StatusEvent struct {
	TxID           string    `json:"txId"`
	Status         string    `json:"status"`
	ConfirmedRound uint64    `json:"confirmedRound,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Poller checks the status of broadcast transactions until they reach a terminal status or
// the attempts run out. Every transaction is polled in its own goroutine.
type Poller struct {
	logger      *slog.Logger
	reconciler  Reconciler
	store       StatusStore
	publisher   Publisher
	topic       string
	interval    time.Duration
	maxAttempts int
	newTimer    func() backoff.Timer
	now         func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithTimer replaces the timer used between attempts.
func WithTimer(newTimer func() backoff.Timer) Option {
	return func(p *Poller) {
		p.newTimer = newTimer
	}
}

func WithPublisher(publisher Publisher, topic string) Option {
	return func(p *Poller) {
		p.publisher = publisher
		p.topic = topic
	}
}

func WithNow(nowFunc func() time.Time) Option {
	return func(p *Poller) {
		p.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) Option {
	return func(p *Poller) {
		p.tracingEnabled = true
		if len(attr) > 0 {
			p.tracingAttributes = append(p.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			p.tracingAttributes = append(p.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(logger *slog.Logger, reconciler Reconciler, statusStore StatusStore, opts ...Option) *Poller {
	p := &Poller{
		logger:      logger.With(slog.String("module", "poller")),
		reconciler:  reconciler,
		store:       statusStore,
		interval:    defaultInterval,
		maxAttempts: defaultMaxAttempts,
		newTimer:    newRealTimer,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())

	return p
}

// Track polls txID in the background.
func (p *Poller) Track(txID string) {
	p.start(txID, nil)
}

// Await polls txID in the background and waits for the outcome. If ctx ends first the
// outcome is reported as timed out while polling continues.
func (p *Poller) Await(ctx context.Context, txID string) Outcome {
	result := make(chan Outcome, 1)
	p.start(txID, result)

	select {
	case outcome := <-result:
		return outcome
	case <-ctx.Done():
		return Outcome{TxID: txID, State: StateTimedOut}
	}
}

// Shutdown stops all polling loops and waits for them to return.
func (p *Poller) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *Poller) start(txID string, result chan<- Outcome) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		outcome := p.poll(p.ctx, txID)
		if result != nil {
			result <- outcome
		}
	}()
}

func (p *Poller) poll(ctx context.Context, txID string) Outcome {
	timer := p.newTimer()
	defer timer.Stop()

	// the transaction needs at least one interval to show up anywhere
	timer.Start(p.interval)
	select {
	case <-ctx.Done():
		return Outcome{TxID: txID, State: StateTimedOut}
	case <-timer.C():
	}

	var attempt int
	var classification reconciler.Classification

	operation := func() error {
		attempt++

		var err error
		classification, err = p.reconciler.Reconcile(ctx, txID)
		if err != nil {
			return err
		}

		if !classification.IsTerminal() {
			return errStillPending
		}

		return nil
	}

	notify := func(err error, next time.Duration) {
		if errors.Is(err, errStillPending) {
			p.logger.Debug("Transaction still pending", slog.String("hash", txID), slog.Int("attempt", attempt), slog.Duration("next", next))
			return
		}
		p.logger.Warn("Failed to reconcile transaction", slog.String("hash", txID), slog.Int("attempt", attempt), slog.String("err", err.Error()))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.interval), uint64(p.maxAttempts-1)), ctx)

	err := backoff.RetryNotifyWithTimer(operation, policy, notify, timer)
	if err != nil {
		p.logger.Info("Giving up polling transaction", slog.String("hash", txID), slog.Int("attempts", attempt), slog.String("reason", err.Error()))
		return Outcome{TxID: txID, State: StateTimedOut}
	}

	p.persist(ctx, txID, classification)

	outcome := Outcome{TxID: txID, ConfirmedRound: classification.ConfirmedRound, Reason: classification.Reason}
	switch classification.Status {
	case store.StatusConfirmed:
		outcome.State = StateConfirmed
	case store.StatusFailed:
		outcome.State = StateFailed
	default:
		outcome.State = StatePending
	}

	return outcome
}

func (p *Poller) persist(ctx context.Context, txID string, classification reconciler.Classification) {
	var err error
	ctx, span := tracing.StartTracing(ctx, "Poller.persist", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	update := store.StatusUpdate{
		Status: classification.Status,
		Reason: classification.Reason,
	}
	if classification.Status == store.StatusConfirmed {
		round := classification.ConfirmedRound
		update.ConfirmedRound = &round
	}

	updated, err := p.store.UpdateStatus(ctx, txID, update)
	if err != nil {
		p.logger.Error("Failed to update transaction status", slog.String("hash", txID), slog.String("status", string(classification.Status)), slog.String("err", err.Error()))
		return
	}

	if !updated {
		return
	}

	p.logger.Info("Transaction status updated", slog.String("hash", txID), slog.String("status", string(classification.Status)))

	if p.publisher == nil {
		return
	}

	data, err := json.Marshal(StatusEvent{
		TxID:           txID,
		Status:         string(classification.Status),
		ConfirmedRound: classification.ConfirmedRound,
		Reason:         classification.Reason,
		Timestamp:      p.now().UTC(),
	})
	if err != nil {
		p.logger.Error("Failed to marshal status event", slog.String("hash", txID), slog.String("err", err.Error()))
		return
	}

	err = p.publisher.Publish(ctx, p.topic, data)
	if err != nil {
		p.logger.Error("Failed to publish status event", slog.String("hash", txID), slog.String("err", err.Error()))
	}
}
