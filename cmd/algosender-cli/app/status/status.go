package status

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/helper"
	"github.com/algosender/algosender/internal/reconciler"
)

var Cmd = &cobra.Command{
	Use:   "status <txId>",
	Short: "Show the network status of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		txID := args[0]
		logger := helper.GetLogger()

		algodClient, err := helper.NewAlgodClient()
		if err != nil {
			return err
		}
		indexerClient, err := helper.NewIndexerClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		classification, err := reconciler.New(indexerClient, algodClient, logger).Reconcile(ctx, txID)
		if err != nil {
			return err
		}

		round := "-"
		if classification.ConfirmedRound > 0 {
			round = strconv.FormatUint(classification.ConfirmedRound, 10)
		}

		t := helper.NewTable()
		t.AppendHeader(table.Row{"TxID", "Status", "Confirmed round", "Reason"})
		t.AppendRow(table.Row{txID, string(classification.Status), round, classification.Reason})
		fmt.Println(t.Render())

		return nil
	},
}
