package wallet

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

const redacted = "[REDACTED]"

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrSigningFailed     = errors.New("failed to sign transaction")
)

// Credential is a 25 word secret phrase. It is only held for the duration of a request
// and never shows up in logs or formatted output.
type Credential string

func (c Credential) String() string {
	return redacted
}

func (c Credential) GoString() string {
	return redacted
}

func (c Credential) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// Account derives the signing account from the phrase.
func (c Credential) Account() (*Account, error) {
	phrase := strings.Join(strings.Fields(string(c)), " ")
	if phrase == "" {
		return nil, errors.Join(ErrInvalidCredential, errors.New("empty phrase"))
	}

	sk, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredential, err)
	}

	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredential, err)
	}

	return &Account{account: account}, nil
}

type Account struct {
	account crypto.Account
}

func (a *Account) Address() string {
	return a.account.Address.String()
}

// Sign signs tx and returns its id together with the encoded signed transaction.
func (a *Account) Sign(tx types.Transaction) (string, []byte, error) {
	txID, signed, err := crypto.SignTransaction(a.account.PrivateKey, tx)
	if err != nil {
		return "", nil, errors.Join(ErrSigningFailed, err)
	}

	return txID, signed, nil
}

// GenerateAccount creates a new random key pair. Nothing is persisted.
func GenerateAccount() (Credential, string, error) {
	account := crypto.GenerateAccount()

	phrase, err := mnemonic.FromPrivateKey(account.PrivateKey)
	if err != nil {
		return "", "", err
	}

	return Credential(phrase), account.Address.String(), nil
}

func DeriveAddress(credential Credential) (string, error) {
	account, err := credential.Account()
	if err != nil {
		return "", err
	}

	return account.Address(), nil
}

// ValidateAddress checks length, encoding and checksum of an address.
func ValidateAddress(address string) error {
	if address == "" {
		return errors.Join(ErrInvalidAddress, errors.New("empty address"))
	}

	_, err := types.DecodeAddress(address)
	if err != nil {
		return errors.Join(ErrInvalidAddress, err)
	}

	return nil
}
