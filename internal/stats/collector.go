package stats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const collectionIntervalDefault = 60 * time.Second

type SummaryProvider interface {
	Summary(ctx context.Context) (*Summary, error)
}

// Collector periodically copies the transaction summary into prometheus gauges.
type Collector struct {
	logger     *slog.Logger
	provider   SummaryProvider
	interval   time.Duration
	registerer prometheus.Registerer

	total     prometheus.Gauge
	confirmed prometheus.Gauge
	pending   prometheus.Gauge
	failed    prometheus.Gauge
	totalSent prometheus.Gauge

	cancelAll context.CancelFunc
	ctx       context.Context
	wg        sync.WaitGroup
}

type CollectorOption func(*Collector)

func WithCollectionInterval(d time.Duration) CollectorOption {
	return func(c *Collector) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithRegisterer(r prometheus.Registerer) CollectorOption {
	return func(c *Collector) {
		c.registerer = r
	}
}

func NewCollector(logger *slog.Logger, provider SummaryProvider, opts ...CollectorOption) *Collector {
	c := &Collector{
		logger:     logger.With(slog.String("module", "stats-collector")),
		provider:   provider,
		interval:   collectionIntervalDefault,
		registerer: prometheus.DefaultRegisterer,
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algosender_transactions_count",
			Help: "Shows the number of stored transactions",
		}),
		confirmed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algosender_status_confirmed_count",
			Help: "Shows the number of transactions with status confirmed",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algosender_status_pending_count",
			Help: "Shows the number of transactions with status pending",
		}),
		failed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algosender_status_failed_count",
			Help: "Shows the number of transactions with status failed",
		}),
		totalSent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algosender_total_sent_algo",
			Help: "Shows the sum of amounts in ALGO over confirmed transactions",
		}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.ctx, c.cancelAll = context.WithCancel(context.Background())

	return c
}

func (c *Collector) Start() error {
	err := registerGauges(c.registerer, c.total, c.confirmed, c.pending, c.failed, c.totalSent)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(c.interval)

	c.wg.Add(1)
	go func() {
		defer func() {
			ticker.Stop()
			c.wg.Done()
		}()

		c.collect()

		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				c.collect()
			}
		}
	}()

	return nil
}

func (c *Collector) collect() {
	summary, err := c.provider.Summary(c.ctx)
	if err != nil {
		c.logger.Error("Failed to get stats", slog.String("err", err.Error()))
		return
	}

	c.total.Set(float64(summary.Total))
	c.confirmed.Set(float64(summary.Confirmed))
	c.pending.Set(float64(summary.Pending))
	c.failed.Set(float64(summary.Failed))
	c.totalSent.Set(summary.TotalSent.InexactFloat64())
}

func (c *Collector) Shutdown() {
	c.cancelAll()
	c.wg.Wait()

	c.registerer.Unregister(c.total)
	c.registerer.Unregister(c.confirmed)
	c.registerer.Unregister(c.pending)
	c.registerer.Unregister(c.failed)
	c.registerer.Unregister(c.totalSent)
}

func registerGauges(registerer prometheus.Registerer, gauges ...prometheus.Collector) error {
	for _, g := range gauges {
		err := registerer.Register(g)
		if err != nil {
			return err
		}
	}

	return nil
}
