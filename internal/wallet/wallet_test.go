package wallet_test

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/internal/wallet"
)

func TestGenerateAccount(t *testing.T) {
	// when
	credential, address, err := wallet.GenerateAccount()

	// then
	require.NoError(t, err)
	assert.Len(t, strings.Fields(string(credential)), 25)
	assert.Len(t, address, 58)
	require.NoError(t, wallet.ValidateAddress(address))

	derived, err := wallet.DeriveAddress(credential)
	require.NoError(t, err)
	assert.Equal(t, address, derived)
}

func TestDeriveAddress(t *testing.T) {
	credential, address, err := wallet.GenerateAccount()
	require.NoError(t, err)

	words := strings.Fields(string(credential))

	tt := []struct {
		name       string
		credential wallet.Credential

		expectedAddress string
		expectedErr     error
	}{
		{
			name:            "valid phrase",
			credential:      credential,
			expectedAddress: address,
		},
		{
			name:            "valid phrase with extra whitespace",
			credential:      wallet.Credential("  " + strings.Join(words, "   ") + "\n"),
			expectedAddress: address,
		},
		{
			name:        "empty phrase",
			credential:  "",
			expectedErr: wallet.ErrInvalidCredential,
		},
		{
			name:        "too few words",
			credential:  wallet.Credential(strings.Join(words[:24], " ")),
			expectedErr: wallet.ErrInvalidCredential,
		},
		{
			name:        "unknown words",
			credential:  wallet.Credential(strings.Repeat("notaword ", 25)),
			expectedErr: wallet.ErrInvalidCredential,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actual, err := wallet.DeriveAddress(tc.credential)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedAddress, actual)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	_, address, err := wallet.GenerateAccount()
	require.NoError(t, err)

	tt := []struct {
		name    string
		address string

		expectedErr error
	}{
		{
			name:    "valid address",
			address: address,
		},
		{
			name:        "empty",
			address:     "",
			expectedErr: wallet.ErrInvalidAddress,
		},
		{
			name:        "40 characters",
			address:     address[:40],
			expectedErr: wallet.ErrInvalidAddress,
		},
		{
			name:        "not base32",
			address:     strings.Repeat("1", 58),
			expectedErr: wallet.ErrInvalidAddress,
		},
		{
			name:        "wrong checksum",
			address:     address[:50] + flip(address[50:54]) + address[54:],
			expectedErr: wallet.ErrInvalidAddress,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := wallet.ValidateAddress(tc.address)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCredential_Redacted(t *testing.T) {
	// given
	credential, _, err := wallet.GenerateAccount()
	require.NoError(t, err)
	firstWord := strings.Fields(string(credential))[0]

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	// when
	logger.Info("credential", slog.Any("mnemonic", credential))
	formatted := fmt.Sprintf("%v %s %+v %#v", credential, credential, credential, credential)

	// then
	assert.NotContains(t, buf.String(), string(credential))
	assert.Contains(t, buf.String(), "[REDACTED]")
	assert.NotContains(t, formatted, firstWord+" ")
	assert.Equal(t, "[REDACTED] [REDACTED] [REDACTED] [REDACTED]", formatted)
}

func TestAccount_Sign(t *testing.T) {
	// given
	credential, from, err := wallet.GenerateAccount()
	require.NoError(t, err)
	_, to, err := wallet.GenerateAccount()
	require.NoError(t, err)

	account, err := credential.Account()
	require.NoError(t, err)

	genesisHash, err := base64.StdEncoding.DecodeString("SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=")
	require.NoError(t, err)

	params := types.SuggestedParams{
		Fee:             0,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     genesisHash,
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
		MinFee:          1000,
	}

	tx, err := transaction.MakePaymentTxn(from, to, 500_000, []byte("note"), "", params)
	require.NoError(t, err)

	// when
	txID, signed, err := account.Sign(tx)

	// then
	require.NoError(t, err)
	assert.Len(t, txID, 52)
	assert.NotEmpty(t, signed)
	assert.Equal(t, from, account.Address())
}

// flip swaps every character of s for a different base32 character.
func flip(s string) string {
	out := make([]byte, len(s))
	for i := range s {
		if s[i] == 'A' {
			out[i] = 'B'
			continue
		}
		out[i] = 'A'
	}
	return string(out)
}
