package send

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/algosender/algosender/cmd/algosender-cli/helper"
	"github.com/algosender/algosender/internal/poller"
	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/store/memorystore"
	"github.com/algosender/algosender/internal/submitter"
)

var Cmd = &cobra.Command{
	Use:   "send",
	Short: "Send a payment and optionally wait for confirmation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		credential, err := helper.GetMnemonic(cmd.Flags())
		if err != nil {
			return err
		}

		to, err := cmd.Flags().GetString("to")
		if err != nil {
			return err
		}
		amountStr, err := cmd.Flags().GetString("amount")
		if err != nil {
			return err
		}
		note, err := cmd.Flags().GetString("note")
		if err != nil {
			return err
		}
		wait, err := cmd.Flags().GetBool("wait")
		if err != nil {
			return err
		}
		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return err
		}
		attempts, err := cmd.Flags().GetInt("attempts")
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return fmt.Errorf("%w: %v", submitter.ErrInvalidAmount, err)
		}

		logger := helper.GetLogger()

		algodClient, err := helper.NewAlgodClient()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sender := submitter.New(logger, algodClient)
		submission, err := sender.Send(ctx, credential, submitter.Payment{To: to, Amount: amount, Note: note})
		if err != nil {
			return err
		}

		t := helper.NewTable()
		t.AppendRow(table.Row{"TxID", submission.TxID})
		t.AppendRow(table.Row{"From", submission.From})
		t.AppendRow(table.Row{"To", submission.To})
		t.AppendRow(table.Row{"Amount (ALGO)", submission.Amount.String()})
		if submission.Note != "" {
			t.AppendRow(table.Row{"Note", submission.Note})
		}

		if !wait {
			fmt.Println(t.Render())
			return nil
		}

		indexerClient, err := helper.NewIndexerClient()
		if err != nil {
			return err
		}

		txStore := memorystore.New()
		err = txStore.Create(ctx, &store.Transaction{
			TxID:   submission.TxID,
			From:   submission.From,
			To:     submission.To,
			Amount: submission.Amount,
			Note:   submission.Note,
			Status: store.StatusPending,
		})
		if err != nil {
			return err
		}

		statusReconciler := reconciler.New(indexerClient, algodClient, logger)
		txPoller := poller.New(logger, statusReconciler, txStore,
			poller.WithInterval(interval),
			poller.WithMaxAttempts(attempts),
		)
		defer txPoller.Shutdown()

		outcome := txPoller.Await(ctx, submission.TxID)

		t.AppendRow(table.Row{"Status", outcome.State})
		if outcome.State == poller.StateConfirmed {
			t.AppendRow(table.Row{"Confirmed round", outcome.ConfirmedRound})
		}
		if outcome.Reason != "" {
			t.AppendRow(table.Row{"Reason", outcome.Reason})
		}
		fmt.Println(t.Render())

		return nil
	},
}

func init() {
	Cmd.Flags().String("mnemonic", "", "25 word mnemonic of the sending account")
	Cmd.Flags().String("to", "", "Recipient address")
	Cmd.Flags().String("amount", "", "Amount in ALGO, e.g. 0.5")
	Cmd.Flags().String("note", "", "Optional note, at most 1000 bytes")
	Cmd.Flags().Bool("wait", false, "Poll until the transaction is confirmed, failed or timed out")
	Cmd.Flags().Duration("interval", 2*time.Second, "Polling interval when waiting")
	Cmd.Flags().Int("attempts", 5, "Maximum number of polls when waiting")
}
