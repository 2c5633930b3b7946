package indexer_client

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/indexer"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/tracing"
)

const defaultRequestTimeout = 5 * time.Second

var (
	ErrFailedToCreateClient = errors.New("failed to create indexer client")
	ErrTransactionNotFound  = errors.New("transaction not found in indexer")
	ErrFailedToLookupTx     = errors.New("failed to lookup transaction")
	ErrNotConfirmed         = errors.New("transaction has no confirmed round")
)

type Client struct {
	client            *indexer.Client
	requestTimeout    time.Duration
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithRequestTimeout(d time.Duration) func(*Client) {
	return func(c *Client) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Client) {
	return func(c *Client) {
		c.tracingEnabled = true
		if len(attr) > 0 {
			c.tracingAttributes = append(c.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			c.tracingAttributes = append(c.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(address, token string, opts ...func(*Client)) (*Client, error) {
	indexerClient, err := indexer.MakeClient(address, token)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateClient, err)
	}

	c := &Client{
		client:         indexerClient,
		requestTimeout: defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ConfirmedRound looks up txID in the confirmed ledger and returns the round it was included in.
func (c *Client) ConfirmedRound(ctx context.Context, txID string) (round uint64, err error) {
	ctx, span := tracing.StartTracing(ctx, "indexer_client.ConfirmedRound", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	response, err := c.client.LookupTransaction(txID).Do(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "HTTP 404") {
			return 0, errors.Join(ErrTransactionNotFound, err)
		}
		return 0, errors.Join(ErrFailedToLookupTx, err)
	}

	if response.Transaction.ConfirmedRound == 0 {
		return 0, ErrNotConfirmed
	}

	return response.Transaction.ConfirmedRound, nil
}
