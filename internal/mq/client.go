package mq

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/tracing"
)

var (
	ErrFailedToPublish     = errors.New("failed to publish message")
	ErrConnectionNotActive = errors.New("message queue connection not active")
)

type NatsConnection interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// Client publishes status events on core NATS subjects.
type Client struct {
	nc     NatsConnection
	logger *slog.Logger

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
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

func New(nc NatsConnection, logger *slog.Logger, opts ...func(*Client)) *Client {
	c := &Client{
		nc:     nc,
		logger: logger.With(slog.String("module", "message-queue")),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Publish(ctx context.Context, topic string, data []byte) (err error) {
	_, span := tracing.StartTracing(ctx, "Client.Publish", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if c.nc == nil {
		return ErrConnectionNotActive
	}

	err = c.nc.Publish(topic, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, err)
	}

	return nil
}

func (c *Client) Shutdown() {
	if c.nc == nil {
		return
	}

	err := c.nc.Drain()
	if err != nil {
		c.logger.Error("Failed to drain nats connection", slog.String("err", err.Error()))
	}
}
