package reconciler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"runtime"

	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/tracing"
)

var ErrSourceUnavailable = errors.New("status source unavailable")

// LedgerIndex looks up transactions in the confirmed ledger.
type LedgerIndex interface {
	ConfirmedRound(ctx context.Context, txID string) (uint64, error)
}

// PendingPool queries the node's pool of not yet confirmed transactions.
type PendingPool interface {
	PendingTransaction(ctx context.Context, txID string) (confirmedRound uint64, poolError string, err error)
}

// Classification is the status of a transaction as seen by the network.
type Classification struct {
	Status         store.Status
	ConfirmedRound uint64
	Reason         string
}

func (c Classification) IsTerminal() bool {
	return c.Status.IsTerminal()
}

type Reconciler struct {
	ledger            LedgerIndex
	pool              PendingPool
	logger            *slog.Logger
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithTracer(attr ...attribute.KeyValue) func(*Reconciler) {
	return func(r *Reconciler) {
		r.tracingEnabled = true
		if len(attr) > 0 {
			r.tracingAttributes = append(r.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			r.tracingAttributes = append(r.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(ledger LedgerIndex, pool PendingPool, logger *slog.Logger, opts ...func(*Reconciler)) *Reconciler {
	r := &Reconciler{
		ledger: ledger,
		pool:   pool,
		logger: logger.With(slog.String("module", "reconciler")),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reconcile classifies txID from the ledger index, falling back to the node's pending pool.
// It does not retry. Transient transport errors of the pool query yield ErrSourceUnavailable.
func (r *Reconciler) Reconcile(ctx context.Context, txID string) (classification Classification, err error) {
	ctx, span := tracing.StartTracing(ctx, "Reconciler.Reconcile", r.tracingEnabled, r.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	round, err := r.ledger.ConfirmedRound(ctx, txID)
	if err == nil && round > 0 {
		return Classification{Status: store.StatusConfirmed, ConfirmedRound: round}, nil
	}

	if err != nil {
		r.logger.DebugContext(ctx, "Transaction not found in ledger index", slog.String("hash", txID), slog.String("err", err.Error()))
	}

	round, poolError, err := r.pool.PendingTransaction(ctx, txID)
	if err != nil {
		if isTransient(ctx, err) {
			return Classification{}, errors.Join(ErrSourceUnavailable, err)
		}

		return Classification{Status: store.StatusFailed, Reason: err.Error()}, nil
	}

	switch {
	case round > 0:
		return Classification{Status: store.StatusConfirmed, ConfirmedRound: round}, nil
	case poolError != "":
		return Classification{Status: store.StatusFailed, Reason: poolError}, nil
	default:
		return Classification{Status: store.StatusPending}, nil
	}
}

func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
