package submitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/internal/wallet"
)

// MaxNoteBytes is the maximum size of a transaction note.
const MaxNoteBytes = 1000

var (
	ErrInvalidAddress = errors.New("invalid recipient address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNoteTooLong    = fmt.Errorf("note exceeds %d bytes", MaxNoteBytes)
	ErrNetwork        = errors.New("network error")
	ErrBuildFailed    = errors.New("failed to build payment transaction")
)

type NodeClient interface {
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
	SendRawTransaction(ctx context.Context, signed []byte) (string, error)
}

type Payment struct {
	To     string
	Amount decimal.Decimal
	Note   string
}

type Submission struct {
	TxID   string
	From   string
	To     string
	Amount decimal.Decimal
	Note   string
}

type Submitter struct {
	logger            *slog.Logger
	node              NodeClient
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type Option func(*Submitter)

func WithTracer(attr ...attribute.KeyValue) Option {
	return func(s *Submitter) {
		s.tracingEnabled = true
		if len(attr) > 0 {
			s.tracingAttributes = append(s.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			s.tracingAttributes = append(s.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(logger *slog.Logger, node NodeClient, opts ...Option) *Submitter {
	s := &Submitter{
		logger: logger.With(slog.String("module", "submitter")),
		node:   node,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Send validates the payment, signs it with the key derived from credential and broadcasts it.
// Nothing is sent to the node unless address, amount, note and credential are valid.
func (s *Submitter) Send(ctx context.Context, credential wallet.Credential, payment Payment) (submission *Submission, err error) {
	ctx, span := tracing.StartTracing(ctx, "Submitter.Send", s.tracingEnabled, s.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	err = wallet.ValidateAddress(payment.To)
	if err != nil {
		return nil, errors.Join(ErrInvalidAddress, err)
	}

	microAmount, err := wallet.ToMicroUnits(payment.Amount)
	if err != nil {
		return nil, errors.Join(ErrInvalidAmount, err)
	}

	if len(payment.Note) > MaxNoteBytes {
		return nil, ErrNoteTooLong
	}

	account, err := credential.Account()
	if err != nil {
		return nil, err
	}

	params, err := s.node.SuggestedParams(ctx)
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}

	var note []byte
	if payment.Note != "" {
		note = []byte(payment.Note)
	}

	tx, err := transaction.MakePaymentTxn(account.Address(), payment.To, microAmount, note, "", params)
	if err != nil {
		return nil, errors.Join(ErrBuildFailed, err)
	}

	txID, signed, err := account.Sign(tx)
	if err != nil {
		return nil, err
	}

	sentID, err := s.node.SendRawTransaction(ctx, signed)
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}

	if sentID != "" && sentID != txID {
		s.logger.WarnContext(ctx, "Node returned unexpected transaction id", slog.String("expected", txID), slog.String("actual", sentID))
		txID = sentID
	}

	s.logger.InfoContext(ctx, "Payment broadcast",
		slog.String("hash", txID),
		slog.String("from", account.Address()),
		slog.String("to", payment.To),
		slog.String("amount", payment.Amount.String()),
	)

	return &Submission{
		TxID:   txID,
		From:   account.Address(),
		To:     payment.To,
		Amount: payment.Amount,
		Note:   payment.Note,
	}, nil
}
