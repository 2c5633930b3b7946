package config

import (
	"time"
)

func getDefaultConfig() *AlgoSenderConfig {
	return &AlgoSenderConfig{
		LogLevel:     "DEBUG",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		Tracing:      getDefaultTracingConfig(),
		Network:      "testnet",
		Algod: &NodeConfig{
			Address:        "https://testnet-api.algonode.cloud",
			Token:          "",
			RequestTimeout: 5 * time.Second,
		},
		Indexer: &NodeConfig{
			Address:        "https://testnet-idx.algonode.cloud",
			Token:          "",
			RequestTimeout: 5 * time.Second,
		},
		Db:           getDefaultDbConfig(),
		Cache:        getDefaultCacheConfig(),
		MessageQueue: getDefaultMessageQueueConfig(),
		API:          getDefaultAPIConfig(),
		Poller: &PollerConfig{
			Interval:    2 * time.Second,
			MaxAttempts: 5,
		},
		Stats: &StatsConfig{
			CollectionInterval: 60 * time.Second,
		},
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled:  false,
		DialAddr: "",
		Sample:   100,
	}
}

func getDefaultDbConfig() *DbConfig {
	return &DbConfig{
		Mode: DbModePostgres,
		Postgres: &PostgresConfig{
			Host:          "localhost",
			Port:          5432,
			Name:          "algosender",
			User:          "algosender",
			Password:      "algosender",
			MaxIdleConns:  10,
			MaxOpenConns:  80,
			SslMode:       "disable",
			RunMigrations: true,
		},
	}
}

func getDefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Engine: FreeCache,
		Freecache: &FreeCacheConfig{
			Size: 10 * 1024 * 1024, // Default size 10MB.
		},
		Redis: &RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
	}
}

func getDefaultMessageQueueConfig() *MessageQueueConfig {
	return &MessageQueueConfig{
		URL:   "",
		Topic: "algosender.status",
	}
}

func getDefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Address:             "localhost:3000",
		WaitForConfirmation: false,
		RefreshLimit:        5,
		RefreshTimeout:      3 * time.Second,
		BalanceCacheTTL:     10 * time.Second,
		StatusCacheTTL:      30 * time.Second,
	}
}
