package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		// given
		viper.Reset()
		expectedConfig := getDefaultConfig()

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, expectedConfig.LogLevel, actualConfig.LogLevel)
		assert.Equal(t, expectedConfig.Algod, actualConfig.Algod)
		assert.Equal(t, expectedConfig.Indexer, actualConfig.Indexer)
		assert.Equal(t, expectedConfig.Db, actualConfig.Db)
		assert.Equal(t, expectedConfig.API, actualConfig.API)
		assert.Equal(t, expectedConfig.Poller, actualConfig.Poller)
		assert.Equal(t, expectedConfig.Cache, actualConfig.Cache)
		assert.False(t, actualConfig.IsTracingEnabled())
	})

	t.Run("partial file override", func(t *testing.T) {
		// given
		viper.Reset()
		expectedConfig := getDefaultConfig()

		// when
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err, "error loading config")

		// then
		// verify not overridden default values
		assert.Equal(t, expectedConfig.Indexer, actualConfig.Indexer)
		assert.Equal(t, expectedConfig.API, actualConfig.API)
		assert.Equal(t, expectedConfig.Poller.MaxAttempts, actualConfig.Poller.MaxAttempts)
		assert.Equal(t, expectedConfig.Db.Postgres, actualConfig.Db.Postgres)

		// verify correct override
		assert.Equal(t, "INFO", actualConfig.LogLevel)
		assert.Equal(t, "json", actualConfig.LogFormat)
		assert.Equal(t, "http://localhost:4001", actualConfig.Algod.Address)
		assert.Equal(t, 2*time.Second, actualConfig.Algod.RequestTimeout)
		assert.Equal(t, DbModeMemory, actualConfig.Db.Mode)
		assert.Equal(t, 500*time.Millisecond, actualConfig.Poller.Interval)
		assert.True(t, actualConfig.IsTracingEnabled())
		assert.Equal(t, "http://tracing:1234", actualConfig.Tracing.DialAddr)
		assert.Equal(t, []attribute.KeyValue{attribute.String("team", "payments")}, actualConfig.Tracing.KeyValueAttributes())
	})

	t.Run("environment override", func(t *testing.T) {
		// given
		viper.Reset()
		t.Setenv("ALGOSENDER_API_REFRESHLIMIT", "9")
		t.Setenv("ALGOSENDER_DB_MODE", "memory")

		// when
		actualConfig, err := Load()
		require.NoError(t, err)

		// then
		assert.Equal(t, 9, actualConfig.API.RefreshLimit)
		assert.Equal(t, DbModeMemory, actualConfig.Db.Mode)
	})

	t.Run("config path does not exist", func(t *testing.T) {
		// given
		viper.Reset()

		// when
		_, err := Load("./does_not_exist/")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})
}

func Test_DumpConfig(t *testing.T) {
	// given
	viper.Reset()
	_, err := Load()
	require.NoError(t, err)
	dumpFile := filepath.Join(t.TempDir(), "dumped_config.yaml")

	// when
	err = DumpConfig(dumpFile)

	// then
	require.NoError(t, err)
	content, err := os.ReadFile(dumpFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "testnet-api.algonode.cloud")
}
