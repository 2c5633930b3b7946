package memorystore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/algosender/algosender/internal/store"
)

var ErrStoreClosed = errors.New("store is closed")

// Store keeps transactions in memory. It serves the CLI and db mode "memory".
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
	seq     uint64
	closed  bool
	now     func() time.Time
}

type record struct {
	tx  store.Transaction
	seq uint64
}

func WithNow(nowFunc func() time.Time) func(*Store) {
	return func(s *Store) {
		s.now = nowFunc
	}
}

func New(opts ...func(*Store)) *Store {
	s := &Store{
		records: make(map[string]*record),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) Create(_ context.Context, tx *store.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	if _, found := s.records[tx.TxID]; found {
		return store.ErrDuplicateKey
	}

	now := s.now()
	copied := copyTransaction(tx)
	if copied.Status == "" {
		copied.Status = store.StatusPending
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = now
	}
	copied.UpdatedAt = now

	s.seq++
	s.records[tx.TxID] = &record{tx: copied, seq: s.seq}

	return nil
}

func (s *Store) Get(_ context.Context, txID string) (*store.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	r, found := s.records[txID]
	if !found {
		return nil, store.ErrNotFound
	}

	tx := copyTransaction(&r.tx)
	return &tx, nil
}

func (s *Store) UpdateStatus(_ context.Context, txID string, update store.StatusUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	r, found := s.records[txID]
	if !found || !store.CanTransition(r.tx.Status, update.Status) {
		return false, nil
	}

	r.tx.Status = update.Status
	r.tx.Reason = update.Reason
	if update.Status == store.StatusConfirmed && update.ConfirmedRound != nil {
		round := *update.ConfirmedRound
		r.tx.ConfirmedRound = &round
	}
	r.tx.UpdatedAt = s.now()

	return true, nil
}

func (s *Store) List(_ context.Context, filter store.ListFilter) ([]*store.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	matching := make([]*record, 0, len(s.records))
	for _, r := range s.records {
		if filter.Status != nil && r.tx.Status != *filter.Status {
			continue
		}
		matching = append(matching, r)
	}

	// newest first, insertion order breaks ties
	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].tx.CreatedAt.Equal(matching[j].tx.CreatedAt) {
			return matching[i].tx.CreatedAt.After(matching[j].tx.CreatedAt)
		}
		return matching[i].seq > matching[j].seq
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(matching) {
			return []*store.Transaction{}, nil
		}
		matching = matching[filter.Skip:]
	}

	if filter.Limit > 0 && filter.Limit < len(matching) {
		matching = matching[:filter.Limit]
	}

	txs := make([]*store.Transaction, 0, len(matching))
	for _, r := range matching {
		tx := copyTransaction(&r.tx)
		txs = append(txs, &tx)
	}

	return txs, nil
}

func (s *Store) Count(_ context.Context, status *store.Status) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	if status == nil {
		return int64(len(s.records)), nil
	}

	var count int64
	for _, r := range s.records {
		if r.tx.Status == *status {
			count++
		}
	}

	return count, nil
}

func (s *Store) GetStats(_ context.Context) (*store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	stats := &store.Stats{TotalSent: decimal.Zero}
	for _, r := range s.records {
		stats.Total++
		switch r.tx.Status {
		case store.StatusConfirmed:
			stats.Confirmed++
			stats.TotalSent = stats.TotalSent.Add(r.tx.Amount)
		case store.StatusPending:
			stats.Pending++
		case store.StatusFailed:
			stats.Failed++
		}
	}

	return stats, nil
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errors.Join(store.ErrStorage, ErrStoreClosed)
	}

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func copyTransaction(tx *store.Transaction) store.Transaction {
	copied := *tx
	if tx.ConfirmedRound != nil {
		round := *tx.ConfirmedRound
		copied.ConfirmedRound = &round
	}
	return copied
}
