package memorystore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/store/memorystore"
)

func newStore() *memorystore.Store {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex

	return memorystore.New(memorystore.WithNow(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}))
}

func newTx(id string, amount string) *store.Transaction {
	return &store.Transaction{
		TxID:   id,
		From:   "from",
		To:     "to",
		Amount: decimal.RequireFromString(amount),
		Status: store.StatusPending,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestStore_CreateGet(t *testing.T) {
	t.Run("create and get", func(t *testing.T) {
		// given
		sut := newStore()
		ctx := context.Background()

		// when
		err := sut.Create(ctx, newTx("tx-1", "0.5"))
		require.NoError(t, err)

		actual, err := sut.Get(ctx, "tx-1")

		// then
		require.NoError(t, err)
		assert.Equal(t, store.StatusPending, actual.Status)
		assert.Equal(t, "0.5", actual.Amount.String())
		assert.Nil(t, actual.ConfirmedRound)
		assert.False(t, actual.CreatedAt.IsZero())
	})

	t.Run("duplicate", func(t *testing.T) {
		// given
		sut := newStore()
		ctx := context.Background()
		require.NoError(t, sut.Create(ctx, newTx("tx-1", "1")))

		// when
		err := sut.Create(ctx, newTx("tx-1", "2"))

		// then
		require.ErrorIs(t, err, store.ErrDuplicateKey)
		actual, err := sut.Get(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, "1", actual.Amount.String())
	})

	t.Run("not found", func(t *testing.T) {
		// when
		_, err := newStore().Get(context.Background(), "unknown")

		// then
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("closed", func(t *testing.T) {
		// given
		sut := newStore()
		require.NoError(t, sut.Close())

		// then
		require.ErrorIs(t, sut.Create(context.Background(), newTx("tx-1", "1")), store.ErrStorage)
		require.ErrorIs(t, sut.Ping(context.Background()), store.ErrStorage)
	})
}

func TestStore_UpdateStatus(t *testing.T) {
	tt := []struct {
		name    string
		initial store.Status
		update  store.StatusUpdate

		expectedUpdated bool
		expectedStatus  store.Status
		expectedRound   *uint64
	}{
		{
			name:            "pending to confirmed",
			initial:         store.StatusPending,
			update:          store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(42))},
			expectedUpdated: true,
			expectedStatus:  store.StatusConfirmed,
			expectedRound:   ptr(uint64(42)),
		},
		{
			name:            "pending to failed",
			initial:         store.StatusPending,
			update:          store.StatusUpdate{Status: store.StatusFailed, Reason: "overspend"},
			expectedUpdated: true,
			expectedStatus:  store.StatusFailed,
		},
		{
			name:            "failed to confirmed",
			initial:         store.StatusFailed,
			update:          store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(7))},
			expectedUpdated: true,
			expectedStatus:  store.StatusConfirmed,
			expectedRound:   ptr(uint64(7)),
		},
		{
			name:            "confirmed is never overwritten",
			initial:         store.StatusConfirmed,
			update:          store.StatusUpdate{Status: store.StatusFailed, Reason: "late pool error"},
			expectedUpdated: false,
			expectedStatus:  store.StatusConfirmed,
			expectedRound:   ptr(uint64(1)),
		},
		{
			name:            "pending to pending",
			initial:         store.StatusPending,
			update:          store.StatusUpdate{Status: store.StatusPending},
			expectedUpdated: false,
			expectedStatus:  store.StatusPending,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := newStore()
			ctx := context.Background()
			tx := newTx("tx-1", "1")
			tx.Status = tc.initial
			if tc.initial == store.StatusConfirmed {
				tx.ConfirmedRound = ptr(uint64(1))
			}
			require.NoError(t, sut.Create(ctx, tx))

			// when
			updated, err := sut.UpdateStatus(ctx, "tx-1", tc.update)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedUpdated, updated)

			actual, err := sut.Get(ctx, "tx-1")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, actual.Status)
			assert.Equal(t, tc.expectedRound, actual.ConfirmedRound)
		})
	}

	t.Run("missing record", func(t *testing.T) {
		// when
		updated, err := newStore().UpdateStatus(context.Background(), "unknown", store.StatusUpdate{Status: store.StatusConfirmed})

		// then
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestStore_List(t *testing.T) {
	// given
	sut := newStore()
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		require.NoError(t, sut.Create(ctx, newTx(fmt.Sprintf("tx-%d", i), "1")))
	}
	_, err := sut.UpdateStatus(ctx, "tx-2", store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(10))})
	require.NoError(t, err)

	tt := []struct {
		name   string
		filter store.ListFilter

		expectedIDs []string
	}{
		{
			name:        "all newest first",
			filter:      store.ListFilter{},
			expectedIDs: []string{"tx-5", "tx-4", "tx-3", "tx-2", "tx-1"},
		},
		{
			name:        "limit 2 skip 1",
			filter:      store.ListFilter{Limit: 2, Skip: 1},
			expectedIDs: []string{"tx-4", "tx-3"},
		},
		{
			name:        "skip beyond end",
			filter:      store.ListFilter{Limit: 2, Skip: 10},
			expectedIDs: []string{},
		},
		{
			name:        "by status",
			filter:      store.ListFilter{Status: ptr(store.StatusConfirmed)},
			expectedIDs: []string{"tx-2"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actual, err := sut.List(ctx, tc.filter)

			// then
			require.NoError(t, err)
			ids := make([]string, 0, len(actual))
			for _, tx := range actual {
				ids = append(ids, tx.TxID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestStore_CountAndStats(t *testing.T) {
	// given
	sut := newStore()
	ctx := context.Background()
	require.NoError(t, sut.Create(ctx, newTx("tx-1", "1")))
	require.NoError(t, sut.Create(ctx, newTx("tx-2", "2")))
	require.NoError(t, sut.Create(ctx, newTx("tx-3", "3")))
	require.NoError(t, sut.Create(ctx, newTx("tx-4", "4")))

	_, err := sut.UpdateStatus(ctx, "tx-1", store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(1))})
	require.NoError(t, err)
	_, err = sut.UpdateStatus(ctx, "tx-2", store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(2))})
	require.NoError(t, err)
	_, err = sut.UpdateStatus(ctx, "tx-3", store.StatusUpdate{Status: store.StatusFailed, Reason: "rejected"})
	require.NoError(t, err)

	// when
	total, err := sut.Count(ctx, nil)
	require.NoError(t, err)
	pending, err := sut.Count(ctx, ptr(store.StatusPending))
	require.NoError(t, err)
	stats, err := sut.GetStats(ctx)
	require.NoError(t, err)

	// then
	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(1), pending)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Confirmed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, "3", stats.TotalSent.String())
}

func TestStore_ConcurrentWrites(t *testing.T) {
	// given
	sut := newStore()
	ctx := context.Background()
	wg := sync.WaitGroup{}

	// when
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("tx-%d", i)
			assert.NoError(t, sut.Create(ctx, newTx(id, "1")))
			_, err := sut.UpdateStatus(ctx, id, store.StatusUpdate{Status: store.StatusConfirmed, ConfirmedRound: ptr(uint64(i + 1))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// then
	confirmed, err := sut.Count(ctx, ptr(store.StatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, int64(50), confirmed)
}
