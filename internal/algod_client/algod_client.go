package algod_client

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/internal/wallet"
)

const defaultRequestTimeout = 5 * time.Second

var (
	ErrFailedToCreateClient    = errors.New("failed to create algod client")
	ErrFailedToGetParams       = errors.New("failed to get suggested params")
	ErrFailedToSendTransaction = errors.New("failed to send raw transaction")
	ErrFailedToGetPendingTx    = errors.New("failed to get pending transaction information")
	ErrFailedToGetAccount      = errors.New("failed to get account information")
	ErrNodeUnhealthy           = errors.New("algod node unhealthy")
)

// Client is a thin wrapper around the algod REST API which bounds every call by the request timeout.
type Client struct {
	client            *algod.Client
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
	algodClient, err := algod.MakeClient(address, token)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateClient, err)
	}

	c := &Client{
		client:         algodClient,
		requestTimeout: defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) SuggestedParams(ctx context.Context) (params types.SuggestedParams, err error) {
	ctx, span := tracing.StartTracing(ctx, "algod_client.SuggestedParams", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	params, err = c.client.SuggestedParams().Do(ctx)
	if err != nil {
		return types.SuggestedParams{}, errors.Join(ErrFailedToGetParams, err)
	}

	return params, nil
}

// SendRawTransaction broadcasts an encoded signed transaction and returns the id assigned by the node.
func (c *Client) SendRawTransaction(ctx context.Context, signed []byte) (txID string, err error) {
	ctx, span := tracing.StartTracing(ctx, "algod_client.SendRawTransaction", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	txID, err = c.client.SendRawTransaction(signed).Do(ctx)
	if err != nil {
		return "", errors.Join(ErrFailedToSendTransaction, err)
	}

	return txID, nil
}

// PendingTransaction returns the confirmed round (0 if not yet confirmed) and the pool error
// reported by the node for txID.
func (c *Client) PendingTransaction(ctx context.Context, txID string) (confirmedRound uint64, poolError string, err error) {
	ctx, span := tracing.StartTracing(ctx, "algod_client.PendingTransaction", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	info, _, err := c.client.PendingTransactionInformation(txID).Do(ctx)
	if err != nil {
		return 0, "", errors.Join(ErrFailedToGetPendingTx, err)
	}

	return info.ConfirmedRound, info.PoolError, nil
}

// Balance returns the balance of address in whole units. Accounts unknown to the node hold nothing.
func (c *Client) Balance(ctx context.Context, address string) (balance decimal.Decimal, err error) {
	ctx, span := tracing.StartTracing(ctx, "algod_client.Balance", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	account, err := c.client.AccountInformation(address).Do(ctx)
	if err != nil {
		if IsNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.Join(ErrFailedToGetAccount, err)
	}

	return wallet.FromMicroUnits(account.Amount), nil
}

func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	err := c.client.HealthCheck().Do(ctx)
	if err != nil {
		return errors.Join(ErrNodeUnhealthy, err)
	}

	return nil
}

// IsNotFound reports whether err is a 404 response of the REST API.
func IsNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "HTTP 404")
}
