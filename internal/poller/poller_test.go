package poller_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/poller"
	"github.com/algosender/algosender/internal/poller/mocks"
	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/store"
)

type immediateTimer struct {
	c chan time.Time
}

func newImmediateTimer() backoff.Timer {
	return &immediateTimer{c: make(chan time.Time, 1)}
}

func (t *immediateTimer) Start(_ time.Duration) { t.c <- time.Now() }
func (t *immediateTimer) Stop()                 {}
func (t *immediateTimer) C() <-chan time.Time   { return t.c }

var (
	pending   = reconciler.Classification{Status: store.StatusPending}
	confirmed = reconciler.Classification{Status: store.StatusConfirmed, ConfirmedRound: 41000000}
	failed    = reconciler.Classification{Status: store.StatusFailed, Reason: "overspend"}
)

func TestPoller_Await(t *testing.T) {
	errUnavailable := errors.Join(reconciler.ErrSourceUnavailable, errors.New("connection refused"))

	tt := []struct {
		name        string
		results     []reconciler.Classification
		errs        []error
		updated     bool
		updateErr   error
		maxAttempts int

		expectedState          poller.State
		expectedRound          uint64
		expectedReason         string
		expectedReconcileCalls int
		expectedUpdateCalls    int
		expectedPublishCalls   int
	}{
		{
			name:        "confirmed on first attempt",
			results:     []reconciler.Classification{confirmed},
			updated:     true,
			maxAttempts: 5,

			expectedState:          poller.StateConfirmed,
			expectedRound:          41000000,
			expectedReconcileCalls: 1,
			expectedUpdateCalls:    1,
			expectedPublishCalls:   1,
		},
		{
			name:        "failed after pending attempts",
			results:     []reconciler.Classification{pending, pending, failed},
			updated:     true,
			maxAttempts: 5,

			expectedState:          poller.StateFailed,
			expectedReason:         "overspend",
			expectedReconcileCalls: 3,
			expectedUpdateCalls:    1,
			expectedPublishCalls:   1,
		},
		{
			name:        "timed out after max attempts",
			results:     []reconciler.Classification{pending, pending, pending, pending},
			maxAttempts: 3,

			expectedState:          poller.StateTimedOut,
			expectedReconcileCalls: 3,
		},
		{
			name:        "source unavailable then confirmed",
			results:     []reconciler.Classification{{}, confirmed},
			errs:        []error{errUnavailable, nil},
			updated:     true,
			maxAttempts: 5,

			expectedState:          poller.StateConfirmed,
			expectedRound:          41000000,
			expectedReconcileCalls: 2,
			expectedUpdateCalls:    1,
			expectedPublishCalls:   1,
		},
		{
			name:        "source unavailable on every attempt",
			results:     []reconciler.Classification{{}, {}},
			errs:        []error{errUnavailable, errUnavailable},
			maxAttempts: 2,

			expectedState:          poller.StateTimedOut,
			expectedReconcileCalls: 2,
		},
		{
			name:        "status already recorded",
			results:     []reconciler.Classification{confirmed},
			updated:     false,
			maxAttempts: 5,

			expectedState:          poller.StateConfirmed,
			expectedRound:          41000000,
			expectedReconcileCalls: 1,
			expectedUpdateCalls:    1,
		},
		{
			name:        "store update fails",
			results:     []reconciler.Classification{failed},
			updateErr:   store.ErrStorage,
			maxAttempts: 5,

			expectedState:          poller.StateFailed,
			expectedReason:         "overspend",
			expectedReconcileCalls: 1,
			expectedUpdateCalls:    1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
			now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

			reconcilerMock := &mocks.ReconcilerMock{}
			reconcilerMock.ReconcileFunc = func(_ context.Context, _ string) (reconciler.Classification, error) {
				i := len(reconcilerMock.ReconcileCalls()) - 1
				var err error
				if i < len(tc.errs) {
					err = tc.errs[i]
				}
				return tc.results[i], err
			}

			storeMock := &mocks.StatusStoreMock{
				UpdateStatusFunc: func(_ context.Context, _ string, _ store.StatusUpdate) (bool, error) {
					return tc.updated, tc.updateErr
				},
			}

			publisherMock := &mocks.PublisherMock{
				PublishFunc: func(_ context.Context, _ string, _ []byte) error {
					return nil
				},
			}

			sut := poller.New(logger, reconcilerMock, storeMock,
				poller.WithInterval(time.Second),
				poller.WithMaxAttempts(tc.maxAttempts),
				poller.WithTimer(newImmediateTimer),
				poller.WithPublisher(publisherMock, "algosender.status"),
				poller.WithNow(func() time.Time { return now }),
			)
			defer sut.Shutdown()

			// when
			outcome := sut.Await(context.Background(), "TXID")

			// then
			assert.Equal(t, "TXID", outcome.TxID)
			assert.Equal(t, tc.expectedState, outcome.State)
			assert.Equal(t, tc.expectedRound, outcome.ConfirmedRound)
			assert.Equal(t, tc.expectedReason, outcome.Reason)

			require.Len(t, reconcilerMock.ReconcileCalls(), tc.expectedReconcileCalls)
			require.Len(t, storeMock.UpdateStatusCalls(), tc.expectedUpdateCalls)
			require.Len(t, publisherMock.PublishCalls(), tc.expectedPublishCalls)

			if tc.expectedUpdateCalls > 0 {
				update := storeMock.UpdateStatusCalls()[0].Update
				assert.Equal(t, store.Status(tc.expectedState), update.Status)
				assert.Equal(t, tc.expectedReason, update.Reason)
				if tc.expectedState == poller.StateConfirmed {
					require.NotNil(t, update.ConfirmedRound)
					assert.Equal(t, tc.expectedRound, *update.ConfirmedRound)
				} else {
					assert.Nil(t, update.ConfirmedRound)
				}
			}

			if tc.expectedPublishCalls > 0 {
				call := publisherMock.PublishCalls()[0]
				assert.Equal(t, "algosender.status", call.Topic)

				var event poller.StatusEvent
				require.NoError(t, json.Unmarshal(call.Data, &event))
				assert.Equal(t, "TXID", event.TxID)
				assert.Equal(t, string(tc.expectedState), event.Status)
				assert.Equal(t, tc.expectedRound, event.ConfirmedRound)
				assert.Equal(t, now, event.Timestamp)
			}
		})
	}
}

func TestPoller_AwaitContextDone(t *testing.T) {
	// given
	reconcilerMock := &mocks.ReconcilerMock{
		ReconcileFunc: func(_ context.Context, _ string) (reconciler.Classification, error) {
			return confirmed, nil
		},
	}
	storeMock := &mocks.StatusStoreMock{}

	sut := poller.New(slog.Default(), reconcilerMock, storeMock, poller.WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// when
	outcome := sut.Await(ctx, "TXID")
	sut.Shutdown()

	// then
	assert.Equal(t, poller.StateTimedOut, outcome.State)
	assert.Empty(t, reconcilerMock.ReconcileCalls())
	assert.Empty(t, storeMock.UpdateStatusCalls())
}

func TestPoller_Track(t *testing.T) {
	// given
	reconcilerMock := &mocks.ReconcilerMock{
		ReconcileFunc: func(_ context.Context, _ string) (reconciler.Classification, error) {
			return confirmed, nil
		},
	}
	storeMock := &mocks.StatusStoreMock{
		UpdateStatusFunc: func(_ context.Context, _ string, _ store.StatusUpdate) (bool, error) {
			return true, nil
		},
	}

	sut := poller.New(slog.Default(), reconcilerMock, storeMock, poller.WithTimer(newImmediateTimer))

	// when
	sut.Track("TX1")
	sut.Track("TX2")

	require.Eventually(t, func() bool {
		return len(storeMock.UpdateStatusCalls()) == 2
	}, time.Second, 10*time.Millisecond)
	sut.Shutdown()

	// then
	require.Len(t, reconcilerMock.ReconcileCalls(), 2)
	require.Len(t, storeMock.UpdateStatusCalls(), 2)
	assert.ElementsMatch(t, []string{"TX1", "TX2"}, []string{storeMock.UpdateStatusCalls()[0].TxID, storeMock.UpdateStatusCalls()[1].TxID})
}
