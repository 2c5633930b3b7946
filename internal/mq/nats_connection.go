package mq

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

// NewConnection connects to the NATS server at natsURL. Failed initial connects are retried in
// the background, so the returned connection may not be connected yet.
func NewConnection(natsURL string, logger *slog.Logger) (*nats.Conn, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	opts := []nats.Option{
		nats.Name(hostname),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("Connection error", slog.String("err", err.Error()))
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err == nil {
				logger.Warn("Client disconnected")
				return
			}
			logger.Error("Client disconnected", slog.String("err", err.Error()))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("Client reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("Client closed")
		}),
		nats.RetryOnFailedConnect(true),
		nats.PingInterval(2 * time.Minute),
		nats.MaxPingsOutstanding(2),
		nats.ReconnectBufSize(8 * 1024 * 1024),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %v", err)
	}

	return nc, nil
}
