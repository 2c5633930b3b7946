package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/cache"
	"github.com/algosender/algosender/internal/poller"
	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/stats"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/submitter"
	"github.com/algosender/algosender/internal/wallet"
	"github.com/algosender/algosender/pkg/api"
)

const (
	// HeaderWaitForConfirmation requests a response that includes the outcome of the poll window.
	HeaderWaitForConfirmation = "X-WaitForConfirmation"

	defaultListLimit      = 50
	maxListLimit          = 500
	refreshLimitDefault   = 5
	refreshTimeoutDefault = 3 * time.Second
	balanceCacheTTL       = 10 * time.Second
	balanceCacheKeyPrefix = "balance:"
)

var (
	ErrMissingTxID   = errors.New("transaction ID is required")
	ErrInvalidStatus = errors.New("status must be one of pending, confirmed, failed")
	ErrInvalidLimit  = errors.New("limit must be an integer between 1 and 500")
	ErrInvalidSkip   = errors.New("skip must be a non-negative integer")
)

var _ api.ServerInterface = (*DefaultHandler)(nil)

type Submitter interface {
	Send(ctx context.Context, credential wallet.Credential, payment submitter.Payment) (*submitter.Submission, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, txID string) (reconciler.Classification, error)
}

type Tracker interface {
	Track(txID string)
	Await(ctx context.Context, txID string) poller.Outcome
}

type Aggregator interface {
	Summary(ctx context.Context) (*stats.Summary, error)
}

type NodeClient interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
	Health(ctx context.Context) error
}

type DefaultHandler struct {
	logger     *slog.Logger
	submitter  Submitter
	reconciler Reconciler
	tracker    Tracker
	aggregator Aggregator
	node       NodeClient
	store      store.TransactionStore

	now                 func() time.Time
	network             string
	waitForConfirmation bool
	refreshLimit        int
	refreshTimeout      time.Duration
	balanceCache        cache.Store
	balanceCacheTTL     time.Duration
	stats               *Stats

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type Option func(*DefaultHandler)

func WithNow(nowFunc func() time.Time) Option {
	return func(h *DefaultHandler) {
		h.now = nowFunc
	}
}

func WithNetwork(network string) Option {
	return func(h *DefaultHandler) {
		h.network = network
	}
}

// WithWaitForConfirmation makes every send wait for the poll window, as if the request carried the
// X-WaitForConfirmation header.
func WithWaitForConfirmation(wait bool) Option {
	return func(h *DefaultHandler) {
		h.waitForConfirmation = wait
	}
}

// WithRefresh bounds the opportunistic status refresh of the list endpoint.
func WithRefresh(limit int, timeout time.Duration) Option {
	return func(h *DefaultHandler) {
		if limit > 0 {
			h.refreshLimit = limit
		}
		if timeout > 0 {
			h.refreshTimeout = timeout
		}
	}
}

func WithBalanceCache(c cache.Store, ttl time.Duration) Option {
	return func(h *DefaultHandler) {
		h.balanceCache = c
		if ttl > 0 {
			h.balanceCacheTTL = ttl
		}
	}
}

func WithStats(s *Stats) Option {
	return func(h *DefaultHandler) {
		h.stats = s
	}
}

func WithTracer(attr ...attribute.KeyValue) Option {
	return func(h *DefaultHandler) {
		h.tracingEnabled = true
		if len(attr) > 0 {
			h.tracingAttributes = append(h.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			h.tracingAttributes = append(h.tracingAttributes, attribute.String("file", file))
		}
	}
}

func NewDefault(
	logger *slog.Logger,
	sender Submitter,
	statusReconciler Reconciler,
	tracker Tracker,
	aggregator Aggregator,
	node NodeClient,
	txStore store.TransactionStore,
	opts ...Option,
) *DefaultHandler {
	h := &DefaultHandler{
		logger:          logger.With(slog.String("module", "handler")),
		submitter:       sender,
		reconciler:      statusReconciler,
		tracker:         tracker,
		aggregator:      aggregator,
		node:            node,
		store:           txStore,
		now:             time.Now,
		network:         "testnet",
		refreshLimit:    refreshLimitDefault,
		refreshTimeout:  refreshTimeoutDefault,
		balanceCacheTTL: balanceCacheTTL,
	}

	// apply options
	for _, opt := range opts {
		opt(h)
	}

	return h
}

func jsonOK(ctx echo.Context, data any, message string) error {
	return ctx.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func jsonError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Response{Success: false, Message: message})
}
