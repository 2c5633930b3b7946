package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/algosender/algosender/config"
	"github.com/algosender/algosender/internal/dbconn"
	"github.com/algosender/algosender/internal/store"
	"github.com/algosender/algosender/internal/store/memorystore"
	"github.com/algosender/algosender/internal/store/postgresql"
)

var ErrUnknownDbMode = errors.New("unknown db mode")

// NewTransactionStore creates the store selected by db.mode and applies migrations if configured.
func NewTransactionStore(ctx context.Context, logger *slog.Logger, dbConfig *config.DbConfig) (store.TransactionStore, error) {
	switch dbConfig.Mode {
	case config.DbModeMemory:
		logger.Warn("Using in-memory transaction store, records are lost on exit")
		return memorystore.New(), nil
	case config.DbModePostgres:
		pg := dbConfig.Postgres
		params := dbconn.NewParams(pg.Host, pg.Port, pg.User, pg.Password, pg.Name, pg.SslMode)
		handle := dbconn.New(params, pg.MaxIdleConns, pg.MaxOpenConns)

		if pg.RunMigrations {
			db, err := handle.DB(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to open postgres connection: %w", err)
			}

			err = postgresql.RunMigrations(db)
			if err != nil {
				_ = handle.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
			logger.Info("Migrations applied", slog.String("db", params.Redacted()))
		}

		return postgresql.New(handle), nil
	default:
		return nil, errors.Join(ErrUnknownDbMode, fmt.Errorf("mode: %s", dbConfig.Mode))
	}
}
