package account

import (
	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/app/account/address"
	"github.com/algosender/algosender/cmd/algosender-cli/app/account/balance"
	"github.com/algosender/algosender/cmd/algosender-cli/app/account/new"
)

var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Function set for accounts",
}

func init() {
	Cmd.AddCommand(address.Cmd)
	Cmd.AddCommand(balance.Cmd)
	Cmd.AddCommand(new.Cmd)
}
