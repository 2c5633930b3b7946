package helper

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/algosender/algosender/internal/algod_client"
	"github.com/algosender/algosender/internal/indexer_client"
	algoLogger "github.com/algosender/algosender/internal/logger"
	"github.com/algosender/algosender/internal/wallet"
)

var ErrMissingSetting = errors.New("missing setting")

func GetLogger() *slog.Logger {
	logger, err := algoLogger.NewLogger(viper.GetString("logLevel"), "tint")
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return logger
}

// GetString returns the setting from flags, environment or config file.
func GetString(settingName string) (string, error) {
	setting := viper.GetString(settingName)
	if setting == "" {
		return "", errors.Join(ErrMissingSetting, fmt.Errorf("setting: %s", settingName))
	}

	return setting, nil
}

func NewAlgodClient() (*algod_client.Client, error) {
	address, err := GetString("algod")
	if err != nil {
		return nil, err
	}

	return algod_client.New(address, viper.GetString("algodToken"))
}

func NewIndexerClient() (*indexer_client.Client, error) {
	address, err := GetString("indexer")
	if err != nil {
		return nil, err
	}

	return indexer_client.New(address, viper.GetString("indexerToken"))
}

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

// GetMnemonic returns the --mnemonic flag, falling back to ALGOSENDER_CLI_MNEMONIC or the config file.
func GetMnemonic(flags *pflag.FlagSet) (wallet.Credential, error) {
	mnemonic, err := flags.GetString("mnemonic")
	if err != nil {
		return "", err
	}

	if mnemonic == "" {
		mnemonic, err = GetString("mnemonic")
		if err != nil {
			return "", err
		}
	}

	return wallet.Credential(mnemonic), nil
}
