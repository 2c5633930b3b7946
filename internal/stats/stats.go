package stats

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/algosender/algosender/internal/store"
)

var ErrFailedToGetStats = errors.New("failed to get stats")

type StatsReader interface {
	GetStats(ctx context.Context) (*store.Stats, error)
}

type Summary struct {
	Total       int64           `json:"total"`
	Confirmed   int64           `json:"confirmed"`
	Pending     int64           `json:"pending"`
	Failed      int64           `json:"failed"`
	TotalSent   decimal.Decimal `json:"totalSent"`
	SuccessRate string          `json:"successRate"`
}

type Aggregator struct {
	reader StatsReader
}

func NewAggregator(reader StatsReader) *Aggregator {
	return &Aggregator{reader: reader}
}

// Summary aggregates all stored transactions. Reads may interleave with concurrent updates.
func (a *Aggregator) Summary(ctx context.Context) (*Summary, error) {
	s, err := a.reader.GetStats(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToGetStats, err)
	}

	return &Summary{
		Total:       s.Total,
		Confirmed:   s.Confirmed,
		Pending:     s.Pending,
		Failed:      s.Failed,
		TotalSent:   s.TotalSent,
		SuccessRate: SuccessRate(s.Confirmed, s.Total),
	}, nil
}

// SuccessRate formats confirmed/total as a percentage with two decimals.
func SuccessRate(confirmed, total int64) string {
	if total == 0 {
		return "0%"
	}

	rate := decimal.NewFromInt(confirmed).Div(decimal.NewFromInt(total)).Mul(decimal.NewFromInt(100))

	return rate.StringFixed(2) + "%"
}
