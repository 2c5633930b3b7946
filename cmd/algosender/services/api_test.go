package services

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algosender/algosender/config"
	"github.com/algosender/algosender/internal/store/memorystore"
)

func TestNewTransactionStore(t *testing.T) {
	logger := slog.Default()

	t.Run("memory", func(t *testing.T) {
		// when
		txStore, err := NewTransactionStore(context.Background(), logger, &config.DbConfig{Mode: config.DbModeMemory})

		// then
		require.NoError(t, err)
		require.IsType(t, &memorystore.Store{}, txStore)
	})

	t.Run("unknown mode", func(t *testing.T) {
		// when
		txStore, err := NewTransactionStore(context.Background(), logger, &config.DbConfig{Mode: "sqlite"})

		// then
		require.ErrorIs(t, err, ErrUnknownDbMode)
		require.Nil(t, txStore)
	})
}

func TestRequestLogConfig(t *testing.T) {
	tt := []struct {
		name         string
		handler      echo.HandlerFunc
		expectedCode int
		expectedLog  string
	}{
		{
			name: "request ok",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			expectedCode: http.StatusOK,
			expectedLog:  "msg=REQUEST verb=GET uri=/ping status=200",
		},
		{
			name: "request error",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusTeapot, "teapot")
			},
			expectedCode: http.StatusTeapot,
			expectedLog:  "msg=REQUEST_ERROR verb=GET uri=/ping status=418",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			buf := &bytes.Buffer{}
			logger := slog.New(slog.NewTextHandler(buf, nil))

			e := echo.New()
			e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(logger)))
			e.GET("/ping", tc.handler)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			rec := httptest.NewRecorder()

			// when
			e.ServeHTTP(rec, req)

			// then
			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Contains(t, buf.String(), tc.expectedLog)
		})
	}
}

func TestSetAPIEcho(t *testing.T) {
	// given
	e := setAPIEcho(slog.Default())
	e.GET("/panic", func(_ echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	// when
	e.ServeHTTP(rec, req)

	// then
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal Server Error"}`, rec.Body.String())
}
