package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algosender/algosender/internal/tracing"
	"github.com/algosender/algosender/internal/version"
)

// GETHealth reports liveness. Dependency failures are reported in the body with status 200.
func (h *DefaultHandler) GETHealth(ctx echo.Context) (err error) {
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), "GETHealth", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	resp := HealthResponse{
		Healthy:   true,
		Network:   h.network,
		Version:   version.Version,
		Timestamp: h.now().UTC(),
	}

	healthErr := errors.Join(h.store.Ping(reqCtx), h.node.Health(reqCtx))
	if healthErr != nil {
		reason := healthErr.Error()
		resp.Healthy = false
		resp.Reason = &reason
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Data: resp, Message: "AlgoSender server is running"})
}
