package algod_client_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/algod_client"
)

const (
	testAddress = "7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q"
	testTxID    = "TXIDAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *algod_client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := algod_client.New(server.URL, "token", algod_client.WithRequestTimeout(time.Second))
	require.NoError(t, err)

	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_SuggestedParams(t *testing.T) {
	genesisHash := base64.StdEncoding.EncodeToString(make([]byte, 32))

	t.Run("success", func(t *testing.T) {
		// given
		sut := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/transactions/params", r.URL.Path)
			assert.Equal(t, "token", r.Header.Get("X-Algo-API-Token"))

			writeJSON(t, w, http.StatusOK, map[string]any{
				"consensus-version": "future",
				"fee":               0,
				"genesis-hash":      genesisHash,
				"genesis-id":        "testnet-v1.0",
				"last-round":        1000,
				"min-fee":           1000,
			})
		})

		// when
		params, err := sut.SuggestedParams(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "testnet-v1.0", params.GenesisID)
		assert.Equal(t, uint64(1000), params.MinFee)
		assert.EqualValues(t, 1000, params.FirstRoundValid)
	})

	t.Run("server error", func(t *testing.T) {
		// given
		sut := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "boom"})
		})

		// when
		_, err := sut.SuggestedParams(context.Background())

		// then
		require.ErrorIs(t, err, algod_client.ErrFailedToGetParams)
	})
}

func TestClient_SendRawTransaction(t *testing.T) {
	// given
	sut := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/transactions", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02}, body)

		writeJSON(t, w, http.StatusOK, map[string]string{"txId": testTxID})
	})

	// when
	txID, err := sut.SendRawTransaction(context.Background(), []byte{0x01, 0x02})

	// then
	require.NoError(t, err)
	assert.Equal(t, testTxID, txID)
}

func TestClient_PendingTransaction(t *testing.T) {
	tt := []struct {
		name     string
		status   int
		response models.PendingTransactionInfoResponse

		expectedRound     uint64
		expectedPoolError string
		expectedErr       error
	}{
		{
			name:          "confirmed",
			status:        http.StatusOK,
			response:      models.PendingTransactionInfoResponse{ConfirmedRound: 42},
			expectedRound: 42,
		},
		{
			name:              "rejected by pool",
			status:            http.StatusOK,
			response:          models.PendingTransactionInfoResponse{PoolError: "overspend"},
			expectedPoolError: "overspend",
		},
		{
			name:        "unknown transaction",
			status:      http.StatusNotFound,
			expectedErr: algod_client.ErrFailedToGetPendingTx,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/transactions/pending/"+testTxID, r.URL.Path)

				if tc.status != http.StatusOK {
					writeJSON(t, w, tc.status, map[string]string{"message": "txn not found"})
					return
				}

				w.Header().Set("Content-Type", "application/msgpack")
				_, err := w.Write(msgpack.Encode(tc.response))
				assert.NoError(t, err)
			})

			// when
			round, poolError, err := sut.PendingTransaction(context.Background(), testTxID)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.True(t, algod_client.IsNotFound(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedRound, round)
			assert.Equal(t, tc.expectedPoolError, poolError)
		})
	}
}

func TestClient_Balance(t *testing.T) {
	tt := []struct {
		name   string
		status int
		body   any

		expectedBalance string
		expectedErr     error
	}{
		{
			name:            "funded account",
			status:          http.StatusOK,
			body:            map[string]any{"address": testAddress, "amount": 1500000},
			expectedBalance: "1.5",
		},
		{
			name:            "unknown account",
			status:          http.StatusNotFound,
			body:            map[string]string{"message": "account not found"},
			expectedBalance: "0",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        map[string]string{"message": "boom"},
			expectedErr: algod_client.ErrFailedToGetAccount,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/accounts/"+testAddress, r.URL.Path)
				writeJSON(t, w, tc.status, tc.body)
			})

			// when
			balance, err := sut.Balance(context.Background(), testAddress)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedBalance, balance.String())
		})
	}
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		// given
		sut := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			// the SDK decodes the health response body as JSON
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("null"))
		})

		// then
		require.NoError(t, sut.Health(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		sut, err := algod_client.New(server.URL, "")
		require.NoError(t, err)

		// then
		require.ErrorIs(t, sut.Health(context.Background()), algod_client.ErrNodeUnhealthy)
	})
}
