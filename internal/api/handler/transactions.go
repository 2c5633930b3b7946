package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/algosender/algosender/internal/cache"
	"github.com/algosender/algosender/internal/poller"
	"github.com/algosender/algosender/internal/reconciler"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/submitter"
	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/internal/wallet"
	"github.com/algosender/algosender/pkg/api"
)

// POSTSend signs and broadcasts a payment and records it as pending.
func (h *DefaultHandler) POSTSend(ctx echo.Context, params api.POSTSendParams) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "POSTSend", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var req api.POSTSendJSONRequestBody
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	payment := submitter.Payment{
		To:     req.RecipientAddress,
		Amount: req.Amount,
	}
	if req.Note != nil {
		payment.Note = *req.Note
	}

	submission, sendErr := h.submitter.Send(reqCtx, wallet.Credential(req.Mnemonic), payment)
	if sendErr != nil {
		return h.sendErrorResponse(ctx, sendErr)
	}

	h.invalidateBalances(submission.From, submission.To)

	if h.stats != nil {
		h.stats.AddSubmission()
	}

	// the broadcast already happened, the record must not depend on the client staying connected
	storeCtx := context.WithoutCancel(reqCtx)
	createErr := h.store.Create(storeCtx, &store.Transaction{
		TxID:   submission.TxID,
		From:   submission.From,
		To:     submission.To,
		Amount: submission.Amount,
		Note:   submission.Note,
		Status: store.StatusPending,
	})
	if createErr != nil {
		if errors.Is(createErr, store.ErrDuplicateKey) {
			h.logger.Warn("Transaction already stored", slog.String("hash", submission.TxID))
		} else {
			h.logger.Error("Failed to store transaction", slog.String("hash", submission.TxID), slog.String("err", createErr.Error()))
		}
	}

	resp := SendResponse{
		TxID:   submission.TxID,
		From:   submission.From,
		To:     submission.To,
		Amount: submission.Amount,
		Note:   submission.Note,
	}

	if h.shouldWait(params.XWaitForConfirmation) {
		outcome := h.tracker.Await(reqCtx, submission.TxID)
		resp.Status = outcomeStatus(outcome)
		if outcome.State == poller.StateConfirmed {
			round := outcome.ConfirmedRound
			resp.ConfirmedRound = &round
		}
	} else {
		h.tracker.Track(submission.TxID)
	}

	return jsonOK(ctx, resp, "Transaction sent successfully")
}

func (h *DefaultHandler) sendErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, submitter.ErrInvalidAddress):
		return jsonError(ctx, http.StatusBadRequest, "invalid recipient address")
	case errors.Is(err, submitter.ErrInvalidAmount):
		return jsonError(ctx, http.StatusBadRequest, "amount must be positive with at most 6 decimal places")
	case errors.Is(err, submitter.ErrNoteTooLong):
		return jsonError(ctx, http.StatusBadRequest, submitter.ErrNoteTooLong.Error())
	case errors.Is(err, wallet.ErrInvalidCredential):
		return jsonError(ctx, http.StatusBadRequest, "invalid mnemonic")
	}

	if h.stats != nil {
		h.stats.AddBroadcastFailure()
	}
	h.logger.Error("Failed to send transaction", slog.String("err", err.Error()))

	return jsonError(ctx, http.StatusInternalServerError, "failed to send transaction")
}

func (h *DefaultHandler) shouldWait(header *bool) bool {
	if header == nil {
		return h.waitForConfirmation
	}

	return *header
}

// invalidateBalances drops the cached balances of both parties of a broadcast payment.
func (h *DefaultHandler) invalidateBalances(addresses ...string) {
	if h.balanceCache == nil {
		return
	}

	keys := make([]string, 0, len(addresses))
	for _, address := range addresses {
		keys = append(keys, balanceCacheKeyPrefix+address)
	}

	err := h.balanceCache.Del(keys...)
	if err != nil && !errors.Is(err, cache.ErrCacheNotFound) {
		h.logger.Warn("Failed to invalidate balance cache", slog.Any("addresses", addresses), slog.String("err", err.Error()))
	}
}

// outcomeStatus reports a poll window that ran out as pending, which is what stays stored.
func outcomeStatus(outcome poller.Outcome) string {
	if outcome.State == poller.StateTimedOut {
		return string(store.StatusPending)
	}

	return string(outcome.State)
}

// GETStatus reconciles a transaction against the network and stores a changed terminal status.
func (h *DefaultHandler) GETStatus(ctx echo.Context, txID string) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "GETStatus", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if txID == "" {
		return jsonError(ctx, http.StatusBadRequest, ErrMissingTxID.Error())
	}

	classification, reconcileErr := h.reconciler.Reconcile(reqCtx, txID)
	if reconcileErr != nil {
		h.logger.Error("Failed to reconcile transaction", slog.String("hash", txID), slog.String("err", reconcileErr.Error()))
		return jsonError(ctx, http.StatusInternalServerError, "failed to check transaction status")
	}

	h.storeIfChanged(reqCtx, txID, classification)

	resp := StatusResponse{
		TxID:   txID,
		Status: string(classification.Status),
		Reason: classification.Reason,
	}
	if classification.Status == store.StatusConfirmed {
		round := classification.ConfirmedRound
		resp.ConfirmedRound = &round
	}

	return jsonOK(ctx, resp, "")
}

func (h *DefaultHandler) storeIfChanged(ctx context.Context, txID string, classification reconciler.Classification) {
	if !classification.IsTerminal() {
		return
	}

	existing, err := h.store.Get(ctx, txID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.Error("Failed to get transaction", slog.String("hash", txID), slog.String("err", err.Error()))
		}
		return
	}

	if existing.Status == classification.Status {
		return
	}

	_, err = h.store.UpdateStatus(ctx, txID, statusUpdate(classification))
	if err != nil {
		h.logger.Error("Failed to update transaction status", slog.String("hash", txID), slog.String("err", err.Error()))
	}
}

// GETTransactions lists stored transactions newest first and refreshes pending ones on the page.
func (h *DefaultHandler) GETTransactions(ctx echo.Context, params api.GETTransactionsParams) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "GETTransactions", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	filter, parseErr := listFilter(params)
	if parseErr != nil {
		return jsonError(ctx, http.StatusBadRequest, parseErr.Error())
	}

	txs, listErr := h.store.List(reqCtx, filter)
	if listErr != nil {
		h.logger.Error("Failed to list transactions", slog.String("err", listErr.Error()))
		return jsonError(ctx, http.StatusInternalServerError, "failed to fetch transactions")
	}

	total, countErr := h.store.Count(reqCtx, filter.Status)
	if countErr != nil {
		h.logger.Error("Failed to count transactions", slog.String("err", countErr.Error()))
		return jsonError(ctx, http.StatusInternalServerError, "failed to fetch transactions")
	}

	h.refreshPending(reqCtx, txs)

	resp := TransactionsResponse{
		Transactions: make([]Transaction, 0, len(txs)),
		Total:        total,
		Limit:        filter.Limit,
		Skip:         filter.Skip,
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTransaction(tx))
	}

	return jsonOK(ctx, resp, "")
}

// refreshPending reconciles up to refreshLimit pending transactions of the page concurrently. The
// page entries are updated in place when a new terminal status was stored.
func (h *DefaultHandler) refreshPending(ctx context.Context, txs []*store.Transaction) {
	ctx, cancel := context.WithTimeout(ctx, h.refreshTimeout)
	defer cancel()

	g := &errgroup.Group{}
	g.SetLimit(h.refreshLimit)

	var scheduled int
	for _, tx := range txs {
		if tx.Status != store.StatusPending {
			continue
		}
		if scheduled >= h.refreshLimit {
			break
		}
		scheduled++

		g.Go(func() error {
			classification, err := h.reconciler.Reconcile(ctx, tx.TxID)
			if err != nil {
				h.logger.Debug("Failed to refresh transaction", slog.String("hash", tx.TxID), slog.String("err", err.Error()))
				return nil
			}

			if !classification.IsTerminal() {
				return nil
			}

			update := statusUpdate(classification)
			updated, err := h.store.UpdateStatus(ctx, tx.TxID, update)
			if err != nil {
				h.logger.Error("Failed to update transaction status", slog.String("hash", tx.TxID), slog.String("err", err.Error()))
				return nil
			}

			if updated {
				tx.Status = update.Status
				tx.ConfirmedRound = update.ConfirmedRound
				tx.Reason = update.Reason
			}

			return nil
		})
	}

	_ = g.Wait()
}

func statusUpdate(classification reconciler.Classification) store.StatusUpdate {
	update := store.StatusUpdate{
		Status: classification.Status,
		Reason: classification.Reason,
	}
	if classification.Status == store.StatusConfirmed {
		round := classification.ConfirmedRound
		update.ConfirmedRound = &round
	}

	return update
}

// GETStats returns aggregate statistics over all stored transactions.
func (h *DefaultHandler) GETStats(ctx echo.Context) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "GETStats", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	summary, summaryErr := h.aggregator.Summary(reqCtx)
	if summaryErr != nil {
		h.logger.Error("Failed to get stats", slog.String("err", summaryErr.Error()))
		return jsonError(ctx, http.StatusInternalServerError, "failed to fetch stats")
	}

	return jsonOK(ctx, summary, "")
}
