package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/algosender/algosender/internal/store"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type SendResponse struct {
	TxID           string          `json:"txId"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note,omitempty"`
	Status         string          `json:"status,omitempty"`
	ConfirmedRound *uint64         `json:"confirmedRound,omitempty"`
}

type StatusResponse struct {
	TxID           string  `json:"txId"`
	Status         string  `json:"status"`
	ConfirmedRound *uint64 `json:"confirmedRound,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

type Transaction struct {
	TxID           string          `json:"txId"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note,omitempty"`
	Status         string          `json:"status"`
	ConfirmedRound *uint64         `json:"confirmedRound,omitempty"`
	Reason         string          `json:"reason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Limit        int           `json:"limit"`
	Skip         int           `json:"skip"`
}

type BalanceResponse struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

type AddressResponse struct {
	Address string `json:"address"`
}

type MnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
	Address  string `json:"address"`
}

type HealthResponse struct {
	Healthy   bool      `json:"healthy"`
	Network   string    `json:"network"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Reason    *string   `json:"reason,omitempty"`
}

func toTransaction(tx *store.Transaction) Transaction {
	return Transaction{
		TxID:           tx.TxID,
		From:           tx.From,
		To:             tx.To,
		Amount:         tx.Amount,
		Note:           tx.Note,
		Status:         string(tx.Status),
		ConfirmedRound: tx.ConfirmedRound,
		Reason:         tx.Reason,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}
