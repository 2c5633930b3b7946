package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	oapimiddleware "github.com/oapi-codegen/echo-middleware"

	"github.com/algosender/algosender/pkg/api"
)

// CheckOpenAPI validates every request against the OpenAPI document before it reaches a handler.
func CheckOpenAPI(e *echo.Echo) (*openapi3.T, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	// Clear out the servers array, that skips validating that server names match.
	swagger.Servers = nil
	swagger.Security = nil

	e.Use(oapimiddleware.OapiRequestValidator(swagger))

	return swagger, nil
}

// HTTPErrorHandler renders errors returned by middleware and parameter binding in the response envelope.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = http.StatusText(status)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}

	_ = jsonError(ctx, status, message)
}
