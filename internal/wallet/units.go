package wallet

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places of one whole unit.
const Decimals = 6

var (
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrAmountPrecision   = fmt.Errorf("amount must not have more than %d decimal places", Decimals)
	ErrAmountOutOfRange  = errors.New("amount out of range")
)

// ToMicroUnits converts an amount of whole units into micro units.
func ToMicroUnits(amount decimal.Decimal) (uint64, error) {
	if amount.Sign() <= 0 {
		return 0, ErrAmountNotPositive
	}

	micro := amount.Shift(Decimals)
	if !micro.IsInteger() {
		return 0, ErrAmountPrecision
	}

	value := micro.BigInt()
	if !value.IsUint64() {
		return 0, ErrAmountOutOfRange
	}

	return value.Uint64(), nil
}

// FromMicroUnits converts micro units into whole units.
func FromMicroUnits(micro uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(micro), -Decimals)
}
