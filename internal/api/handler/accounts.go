package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/algosender/algosender/internal/cache"
	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/internal/wallet"
	"github.com/algosender/algosender/pkg/api"
)

// GETBalance returns the balance of an address in whole units.
func (h *DefaultHandler) GETBalance(ctx echo.Context, address string) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "GETBalance", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if validateErr := wallet.ValidateAddress(address); validateErr != nil {
		return jsonError(ctx, http.StatusBadRequest, "valid address is required")
	}

	balance, found := h.cachedBalance(address)
	if !found {
		var balanceErr error
		balance, balanceErr = h.node.Balance(reqCtx, address)
		if balanceErr != nil {
			h.logger.Error("Failed to get balance", slog.String("address", address), slog.String("err", balanceErr.Error()))
			return jsonError(ctx, http.StatusInternalServerError, "failed to fetch balance")
		}
		h.cacheBalance(address, balance)
	}

	return jsonOK(ctx, BalanceResponse{Address: address, Balance: balance}, "")
}

func (h *DefaultHandler) cachedBalance(address string) (decimal.Decimal, bool) {
	if h.balanceCache == nil {
		return decimal.Zero, false
	}

	value, err := h.balanceCache.Get(balanceCacheKeyPrefix + address)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheNotFound) {
			h.logger.Warn("Failed to read balance cache", slog.String("address", address), slog.String("err", err.Error()))
		}
		return decimal.Zero, false
	}

	balance, err := decimal.NewFromString(string(value))
	if err != nil {
		return decimal.Zero, false
	}

	return balance, true
}

func (h *DefaultHandler) cacheBalance(address string, balance decimal.Decimal) {
	if h.balanceCache == nil {
		return
	}

	err := h.balanceCache.Set(balanceCacheKeyPrefix+address, []byte(balance.String()), h.balanceCacheTTL)
	if err != nil {
		h.logger.Warn("Failed to write balance cache", slog.String("address", address), slog.String("err", err.Error()))
	}
}

// POSTDeriveAddress returns the address belonging to a mnemonic.
func (h *DefaultHandler) POSTDeriveAddress(ctx echo.Context) (err error) {
	_, span := tracing.StartTracing(ctx.Request().Context(), "POSTDeriveAddress", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var req api.POSTDeriveAddressJSONRequestBody
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	address, deriveErr := wallet.DeriveAddress(wallet.Credential(req.Mnemonic))
	if deriveErr != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid mnemonic")
	}

	return jsonOK(ctx, AddressResponse{Address: address}, "")
}

// GETGenerateMnemonic creates a new random account. Nothing is stored.
func (h *DefaultHandler) GETGenerateMnemonic(ctx echo.Context) (err error) {
	_, span := tracing.StartTracing(ctx.Request().Context(), "GETGenerateMnemonic", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	credential, address, generateErr := wallet.GenerateAccount()
	if generateErr != nil {
		h.logger.Error("Failed to generate account", slog.String("err", generateErr.Error()))
		return jsonError(ctx, http.StatusInternalServerError, "failed to generate mnemonic")
	}

	return jsonOK(ctx, MnemonicResponse{Mnemonic: string(credential), Address: address}, "")
}
