package new

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/helper"
	"github.com/algosender/algosender/internal/wallet"
)

var Cmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new account",
	RunE: func(_ *cobra.Command, _ []string) error {
		credential, address, err := wallet.GenerateAccount()
		if err != nil {
			return err
		}

		t := helper.NewTable()
		t.AppendRow(table.Row{"Address", address})
		t.AppendRow(table.Row{"Mnemonic", string(credential)})
		fmt.Println(t.Render())
		fmt.Println("Fund the address at https://bank.testnet.algorand.network before sending")

		return nil
	},
}
