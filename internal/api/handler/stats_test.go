package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	t.Run("register, add, unregister stats", func(t *testing.T) {
		sut, err := NewStats()
		require.NoError(t, err)

		sut.AddSubmission()
		sut.AddSubmission()
		sut.AddBroadcastFailure()

		require.Equal(t, 2.0, testutil.ToFloat64(sut.apiSubmissions))
		require.Equal(t, 1.0, testutil.ToFloat64(sut.apiBroadcastFailures))

		sut.UnregisterStats()

		again, err := NewStats()
		require.NoError(t, err)
		again.UnregisterStats()
	})
}
