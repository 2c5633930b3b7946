package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrDuplicateKey  = errors.New("transaction already exists")
	ErrStorage       = errors.New("storage error")
	ErrInvalidStatus = errors.New("invalid status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusFailed:
		return Status(s), nil
	}

	return "", errors.Join(ErrInvalidStatus, fmt.Errorf("status: %q", s))
}

// IsTerminal reports whether no further polling is needed for the status.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// CanTransition reports whether a record in status from may be moved to status to.
// Confirmed is final; a failed record may still be proven confirmed by the ledger.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusFailed
	case StatusFailed:
		return to == StatusConfirmed
	default:
		return false
	}
}

type Transaction struct {
	TxID           string
	From           string
	To             string
	Amount         decimal.Decimal
	Note           string
	Status         Status
	ConfirmedRound *uint64
	Reason         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type StatusUpdate struct {
	Status         Status
	ConfirmedRound *uint64
	Reason         string
}

type ListFilter struct {
	Status *Status
	Limit  int
	Skip   int
}

type Stats struct {
	Total     int64
	Confirmed int64
	Pending   int64
	Failed    int64
	TotalSent decimal.Decimal
}

type TransactionStore interface {
	Create(ctx context.Context, tx *Transaction) error
	Get(ctx context.Context, txID string) (*Transaction, error)
	UpdateStatus(ctx context.Context, txID string, update StatusUpdate) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	Count(ctx context.Context, status *Status) (int64, error)
	GetStats(ctx context.Context) (*Stats, error)
	Ping(ctx context.Context) error
	Close() error
}
