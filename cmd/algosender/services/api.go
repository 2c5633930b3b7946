package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/config"
	"github.com/algosender/algosender/internal/algod_client"
	apiHandler "github.com/algosender/algosender/internal/api/handler"
	"github.com/algosender/algosender/internal/cache"
	"github.com/algosender/algosender/internal/indexer_client"
	algoLogger "github.com/algosender/algosender/internal/logger"
	"github.com/algosender/algosender/internal/mq"
	"github.com/algosender/algosender/internal/poller"
	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/stats"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/submitter"
	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/pkg/api"
)

type apiComponents struct {
	echoServer   *echo.Echo
	poller       *poller.Poller
	collector    *stats.Collector
	handlerStats *apiHandler.Stats
	mqClient     *mq.Client
	txStore      store.TransactionStore
	shutdownFns  []func()
}

func StartAPIServer(logger *slog.Logger, cfg *config.AlgoSenderConfig) (func(), error) {
	logger = logger.With(slog.String("service", "api"))
	logger.Info("Starting")

	ctx := context.Background()

	c := &apiComponents{
		echoServer:  setAPIEcho(logger),
		shutdownFns: make([]func(), 0),
	}

	stopFn := func() {
		logger.Info("Shutting down api")
		disposeAPI(logger, c)
		logger.Info("Shutdown complete")
	}

	var (
		algodOpts      = []func(*algod_client.Client){algod_client.WithRequestTimeout(cfg.Algod.RequestTimeout)}
		indexerOpts    = []func(*indexer_client.Client){indexer_client.WithRequestTimeout(cfg.Indexer.RequestTimeout)}
		reconcilerOpts []func(*reconciler.Reconciler)
		submitterOpts  []submitter.Option
		mqOpts         []func(*mq.Client)
		pollerOpts     = []poller.Option{
			poller.WithInterval(cfg.Poller.Interval),
			poller.WithMaxAttempts(cfg.Poller.MaxAttempts),
		}
		apiOpts = []apiHandler.Option{
			apiHandler.WithNetwork(cfg.Network),
			apiHandler.WithWaitForConfirmation(cfg.API.WaitForConfirmation),
			apiHandler.WithRefresh(cfg.API.RefreshLimit, cfg.API.RefreshTimeout),
		}
	)

	if cfg.IsTracingEnabled() {
		cleanup, err := tracing.Enable(logger, "api", cfg.Tracing.DialAddr, cfg.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			c.shutdownFns = append(c.shutdownFns, cleanup)
		}

		attributes := cfg.Tracing.KeyValueAttributes()
		hostname, err := os.Hostname()
		if err == nil {
			attributes = append(attributes, attribute.String("hostname", hostname))
		}

		algodOpts = append(algodOpts, algod_client.WithTracer(attributes...))
		indexerOpts = append(indexerOpts, indexer_client.WithTracer(attributes...))
		reconcilerOpts = append(reconcilerOpts, reconciler.WithTracer(attributes...))
		submitterOpts = append(submitterOpts, submitter.WithTracer(attributes...))
		mqOpts = append(mqOpts, mq.WithTracer(attributes...))
		pollerOpts = append(pollerOpts, poller.WithTracer(attributes...))
		apiOpts = append(apiOpts, apiHandler.WithTracer(attributes...))
	}

	algodClient, err := algod_client.New(cfg.Algod.Address, cfg.Algod.Token, algodOpts...)
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create algod client: %v", err)
	}

	indexerClient, err := indexer_client.New(cfg.Indexer.Address, cfg.Indexer.Token, indexerOpts...)
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create indexer client: %v", err)
	}

	c.txStore, err = NewTransactionStore(ctx, logger, cfg.Db)
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create transaction store: %v", err)
	}

	cacheStore, err := cache.NewCacheStore(ctx, cfg.Cache)
	if err != nil {
		stopFn()
		return nil, fmt.Errorf("failed to create cache store: %v", err)
	}
	if cacheStore != nil {
		apiOpts = append(apiOpts, apiHandler.WithBalanceCache(cacheStore, cfg.API.BalanceCacheTTL))
	}

	if cfg.MessageQueue.URL != "" {
		nc, err := mq.NewConnection(cfg.MessageQueue.URL, logger)
		if err != nil {
			stopFn()
			return nil, fmt.Errorf("failed to establish connection to message queue at URL %s: %v", cfg.MessageQueue.URL, err)
		}

		c.mqClient = mq.New(nc, logger, mqOpts...)
		pollerOpts = append(pollerOpts, poller.WithPublisher(c.mqClient, cfg.MessageQueue.Topic))
	}

	statusReconciler := reconciler.New(indexerClient, algodClient, logger, reconcilerOpts...)
	cachedReconciler := reconciler.NewCached(statusReconciler, reconciler.WithCacheExpiration(cfg.API.StatusCacheTTL))

	c.poller = poller.New(logger, statusReconciler, c.txStore, pollerOpts...)

	sender := submitter.New(logger, algodClient, submitterOpts...)
	aggregator := stats.NewAggregator(c.txStore)

	if cfg.Prometheus.IsEnabled() {
		c.handlerStats, err = apiHandler.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}
		apiOpts = append(apiOpts, apiHandler.WithStats(c.handlerStats))

		collector := stats.NewCollector(logger, aggregator, stats.WithCollectionInterval(cfg.Stats.CollectionInterval))
		err = collector.Start()
		if err != nil {
			stopFn()
			return nil, fmt.Errorf("failed to start stats collector: %v", err)
		}
		c.collector = collector
	}

	defaultAPIHandler := apiHandler.NewDefault(logger, sender, cachedReconciler, c.poller, aggregator, algodClient, c.txStore, apiOpts...)

	// Check the requests against the OpenAPI document
	_, err = apiHandler.CheckOpenAPI(c.echoServer)
	if err != nil {
		stopFn()
		return nil, err
	}

	api.RegisterHandlers(c.echoServer, defaultAPIHandler)

	// Serve HTTP until the world ends.
	go func() {
		logger.Info("Starting API server", slog.String("address", cfg.API.Address))
		err := c.echoServer.Start(cfg.API.Address)
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("API http server closed")
				return
			}

			logger.Error("Failed to start API server", slog.String("err", err.Error()))
			return
		}
	}()

	return stopFn, nil
}

func setAPIEcho(logger *slog.Logger) *echo.Echo {
	// Set up a basic Echo router
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apiHandler.HTTPErrorHandler

	// Recover returns a middleware which recovers from panics anywhere in the chain
	e.Use(echomiddleware.Recover())

	// Add CORS headers to the server - all request origins are allowed
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, apiHandler.HeaderWaitForConfirmation},
	}))

	// Add event ID to the request context
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			//nolint:staticcheck // use string key on purpose
			reqCtx := context.WithValue(req.Context(), algoLogger.EventIDField, uuid.New().String()) //lint:ignore SA1029 use string key on purpose
			c.SetRequest(req.WithContext(reqCtx))

			return next(c)
		}
	})

	e.Use(otelecho.Middleware("api-server"))

	// Log info about requests
	e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(logger)))

	// add prometheus metrics
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "api",
		HistogramOptsFunc: func(opts prometheus.HistogramOpts) prometheus.HistogramOpts {
			if opts.Name == "request_duration_seconds" {
				opts.Buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30, 60}
			}
			return opts
		},
	}))

	return e
}

func disposeAPI(logger *slog.Logger, c *apiComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.echoServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
	}

	if c.poller != nil {
		c.poller.Shutdown()
	}

	if c.collector != nil {
		c.collector.Shutdown()
	}

	if c.handlerStats != nil {
		c.handlerStats.UnregisterStats()
	}

	if c.mqClient != nil {
		c.mqClient.Shutdown()
	}

	if c.txStore != nil {
		if err := c.txStore.Close(); err != nil {
			logger.Error("Failed to close transaction store", slog.String("err", err.Error()))
		}
	}

	for _, fn := range c.shutdownFns {
		fn()
	}
}

func requestLogConfig(logger *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogError:    true,
		LogHeaders:  []string{apiHandler.HeaderWaitForConfirmation},
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			if v.Error == nil {
				logger.InfoContext(ctx, "REQUEST",
					slog.String("verb", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				logger.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("verb", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}
