package config

import (
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	DbModePostgres = "postgres"
	DbModeMemory   = "memory"

	FreeCache = "freecache"
	Redis     = "redis"
	InMemory  = "in-memory"
	NoCache   = "none"
)

type AlgoSenderConfig struct {
	LogLevel     string              `mapstructure:"logLevel"`
	LogFormat    string              `mapstructure:"logFormat"`
	ProfilerAddr string              `mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig   `mapstructure:"prometheus"`
	Tracing      *TracingConfig      `mapstructure:"tracing"`
	Network      string              `mapstructure:"network"`
	Algod        *NodeConfig         `mapstructure:"algod"`
	Indexer      *NodeConfig         `mapstructure:"indexer"`
	Db           *DbConfig           `mapstructure:"db"`
	Cache        *CacheConfig        `mapstructure:"cache"`
	MessageQueue *MessageQueueConfig `mapstructure:"messageQueue"`
	API          *APIConfig          `mapstructure:"api"`
	Poller       *PollerConfig       `mapstructure:"poller"`
	Stats        *StatsConfig        `mapstructure:"stats"`
}

type PrometheusConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

type TracingConfig struct {
	Enabled    bool              `mapstructure:"enabled"`
	DialAddr   string            `mapstructure:"dialAddr"`
	Sample     int               `mapstructure:"sample"`
	Attributes map[string]string `mapstructure:"attributes"`
}

// KeyValueAttributes returns the configured attributes ordered by key.
func (t *TracingConfig) KeyValueAttributes() []attribute.KeyValue {
	if t == nil || len(t.Attributes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(t.Attributes))
	for key := range t.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attributes := make([]attribute.KeyValue, 0, len(keys))
	for _, key := range keys {
		attributes = append(attributes, attribute.String(key, t.Attributes[key]))
	}

	return attributes
}

func (c *AlgoSenderConfig) IsTracingEnabled() bool {
	return c.Tracing != nil && c.Tracing.Enabled
}

// NodeConfig addresses either the algod node or the indexer REST API.
type NodeConfig struct {
	Address        string        `mapstructure:"address"`
	Token          string        `mapstructure:"token"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

type DbConfig struct {
	Mode     string          `mapstructure:"mode"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Name          string `mapstructure:"name"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	MaxIdleConns  int    `mapstructure:"maxIdleConns"`
	MaxOpenConns  int    `mapstructure:"maxOpenConns"`
	SslMode       string `mapstructure:"sslMode"`
	RunMigrations bool   `mapstructure:"runMigrations"`
}

type CacheConfig struct {
	Engine    string           `mapstructure:"engine"`
	Freecache *FreeCacheConfig `mapstructure:"freecache"`
	Redis     *RedisConfig     `mapstructure:"redis"`
}

type FreeCacheConfig struct {
	Size int `mapstructure:"size"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MessageQueueConfig struct {
	URL   string `mapstructure:"url"`
	Topic string `mapstructure:"topic"`
}

type APIConfig struct {
	Address             string        `mapstructure:"address"`
	WaitForConfirmation bool          `mapstructure:"waitForConfirmation"`
	RefreshLimit        int           `mapstructure:"refreshLimit"`
	RefreshTimeout      time.Duration `mapstructure:"refreshTimeout"`
	BalanceCacheTTL     time.Duration `mapstructure:"balanceCacheTTL"`
	StatusCacheTTL      time.Duration `mapstructure:"statusCacheTTL"`
}

type PollerConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	MaxAttempts int           `mapstructure:"maxAttempts"`
}

type StatsConfig struct {
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}
