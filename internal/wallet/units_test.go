package wallet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/wallet"
)

func TestToMicroUnits(t *testing.T) {
	tt := []struct {
		name   string
		amount string

		expected    uint64
		expectedErr error
	}{
		{
			name:     "half",
			amount:   "0.5",
			expected: 500_000,
		},
		{
			name:     "whole",
			amount:   "3",
			expected: 3_000_000,
		},
		{
			name:     "smallest unit",
			amount:   "0.000001",
			expected: 1,
		},
		{
			name:     "trailing zeros",
			amount:   "1.500000000",
			expected: 1_500_000,
		},
		{
			name:        "zero",
			amount:      "0",
			expectedErr: wallet.ErrAmountNotPositive,
		},
		{
			name:        "negative",
			amount:      "-1",
			expectedErr: wallet.ErrAmountNotPositive,
		},
		{
			name:        "too precise",
			amount:      "0.0000001",
			expectedErr: wallet.ErrAmountPrecision,
		},
		{
			name:        "out of range",
			amount:      "18446744073709.551616",
			expectedErr: wallet.ErrAmountOutOfRange,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			amount, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)

			// when
			actual, err := wallet.ToMicroUnits(amount)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFromMicroUnits(t *testing.T) {
	assert.Equal(t, "1.5", wallet.FromMicroUnits(1_500_000).String())
	assert.Equal(t, "0", wallet.FromMicroUnits(0).String())
	assert.Equal(t, "0.000001", wallet.FromMicroUnits(1).String())
	assert.True(t, decimal.RequireFromString("18446744073709.551615").Equal(wallet.FromMicroUnits(^uint64(0))))
}
