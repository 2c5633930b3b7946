package address

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/helper"
	"github.com/algosender/algosender/internal/wallet"
)

var Cmd = &cobra.Command{
	Use:   "address",
	Short: "Derive the address of a mnemonic",
	RunE: func(cmd *cobra.Command, _ []string) error {
		credential, err := helper.GetMnemonic(cmd.Flags())
		if err != nil {
			return err
		}

		address, err := wallet.DeriveAddress(credential)
		if err != nil {
			return err
		}

		fmt.Println(address)
		return nil
	},
}

func init() {
	Cmd.Flags().String("mnemonic", "", "25 word mnemonic of the account")
}
