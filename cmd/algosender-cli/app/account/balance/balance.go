package balance

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/helper"
	"github.com/algosender/algosender/internal/wallet"
)

var Cmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show balance of an account in ALGO",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		address := args[0]
		if err := wallet.ValidateAddress(address); err != nil {
			return err
		}

		logger := helper.GetLogger()

		algodClient, err := helper.NewAlgodClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		balance, err := algodClient.Balance(ctx, address)
		if err != nil {
			return err
		}

		logger.Info("balance", slog.String("address", address), slog.String("algo", balance.String()))
		return nil
	},
}
