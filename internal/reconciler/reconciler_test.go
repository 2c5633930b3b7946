package reconciler_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/reconciler/mocks"
	"github.com/algosender/algosender/internal/store"
)

const txID = "TESTTXAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

var errNotFound = errors.New("HTTP 404: no transaction found")

func TestReconciler_Reconcile(t *testing.T) {
	tt := []struct {
		name        string
		ledgerRound uint64
		ledgerErr   error
		poolRound   uint64
		poolError   string
		poolErr     error

		expected          reconciler.Classification
		expectedErr       error
		expectedPoolCalls int
	}{
		{
			name:              "found in ledger index",
			ledgerRound:       42,
			expected:          reconciler.Classification{Status: store.StatusConfirmed, ConfirmedRound: 42},
			expectedPoolCalls: 0,
		},
		{
			name:              "not indexed yet - confirmed in pool",
			ledgerErr:         errNotFound,
			poolRound:         43,
			expected:          reconciler.Classification{Status: store.StatusConfirmed, ConfirmedRound: 43},
			expectedPoolCalls: 1,
		},
		{
			name:              "not indexed - rejected by pool",
			ledgerErr:         errNotFound,
			poolError:         "transaction rejected: overspend",
			expected:          reconciler.Classification{Status: store.StatusFailed, Reason: "transaction rejected: overspend"},
			expectedPoolCalls: 1,
		},
		{
			name:              "not indexed - still in pool",
			ledgerErr:         errNotFound,
			expected:          reconciler.Classification{Status: store.StatusPending},
			expectedPoolCalls: 1,
		},
		{
			name:              "index error - still in pool",
			ledgerErr:         errors.New("HTTP 500: internal error"),
			expected:          reconciler.Classification{Status: store.StatusPending},
			expectedPoolCalls: 1,
		},
		{
			name:              "unknown to both sources",
			ledgerErr:         errNotFound,
			poolErr:           errors.New("HTTP 404: txn not found"),
			expected:          reconciler.Classification{Status: store.StatusFailed, Reason: "HTTP 404: txn not found"},
			expectedPoolCalls: 1,
		},
		{
			name:      "pool timeout",
			ledgerErr: errNotFound,
			poolErr: &url.Error{
				Op:  "Get",
				URL: "http://localhost/v2/transactions/pending",
				Err: context.DeadlineExceeded,
			},
			expectedErr:       reconciler.ErrSourceUnavailable,
			expectedPoolCalls: 1,
		},
		{
			name:      "pool connection refused",
			ledgerErr: errNotFound,
			poolErr: &net.OpError{
				Op:  "dial",
				Net: "tcp",
				Err: errors.New("connection refused"),
			},
			expectedErr:       reconciler.ErrSourceUnavailable,
			expectedPoolCalls: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ledger := &mocks.LedgerIndexMock{
				ConfirmedRoundFunc: func(_ context.Context, _ string) (uint64, error) {
					return tc.ledgerRound, tc.ledgerErr
				},
			}
			pool := &mocks.PendingPoolMock{
				PendingTransactionFunc: func(_ context.Context, _ string) (uint64, string, error) {
					return tc.poolRound, tc.poolError, tc.poolErr
				},
			}

			sut := reconciler.New(ledger, pool, slog.Default())

			// when
			actual, err := sut.Reconcile(context.Background(), txID)

			// then
			require.Len(t, ledger.ConfirmedRoundCalls(), 1)
			assert.Equal(t, txID, ledger.ConfirmedRoundCalls()[0].TxID)
			assert.Len(t, pool.PendingTransactionCalls(), tc.expectedPoolCalls)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)

			// reconciling again without a change in the sources yields the same result
			again, err := sut.Reconcile(context.Background(), txID)
			require.NoError(t, err)
			assert.Equal(t, actual, again)
		})
	}
}

func TestReconciler_Reconcile_Cancelled(t *testing.T) {
	// given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger := &mocks.LedgerIndexMock{
		ConfirmedRoundFunc: func(ctx context.Context, _ string) (uint64, error) {
			return 0, ctx.Err()
		},
	}
	pool := &mocks.PendingPoolMock{
		PendingTransactionFunc: func(ctx context.Context, _ string) (uint64, string, error) {
			return 0, "", errors.Join(errors.New("failed to get pending transaction information"), ctx.Err())
		},
	}

	sut := reconciler.New(ledger, pool, slog.Default())

	// when
	_, err := sut.Reconcile(ctx, txID)

	// then
	require.ErrorIs(t, err, reconciler.ErrSourceUnavailable)
}

func TestCachedReconciler_Reconcile(t *testing.T) {
	tt := []struct {
		name           string
		classification reconciler.Classification
		err            error

		expectedCalls int
		expectedErr   error
	}{
		{
			name:           "confirmed is cached",
			classification: reconciler.Classification{Status: store.StatusConfirmed, ConfirmedRound: 5},
			expectedCalls:  1,
		},
		{
			name:           "failed is cached",
			classification: reconciler.Classification{Status: store.StatusFailed, Reason: "rejected"},
			expectedCalls:  1,
		},
		{
			name:           "pending is not cached",
			classification: reconciler.Classification{Status: store.StatusPending},
			expectedCalls:  2,
		},
		{
			name:          "errors are not cached",
			err:           reconciler.ErrSourceUnavailable,
			expectedCalls: 2,
			expectedErr:   reconciler.ErrSourceUnavailable,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			inner := &mocks.StatusReconcilerMock{
				ReconcileFunc: func(_ context.Context, _ string) (reconciler.Classification, error) {
					return tc.classification, tc.err
				},
			}

			sut := reconciler.NewCached(inner)

			// when
			var actual reconciler.Classification
			var err error
			for i := 0; i < 2; i++ {
				actual, err = sut.Reconcile(context.Background(), txID)
			}

			// then
			assert.Len(t, inner.ReconcileCalls(), tc.expectedCalls)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.classification, actual)
		})
	}
}
