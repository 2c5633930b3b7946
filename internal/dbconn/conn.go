package dbconn

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
)

const postgresDriverName = "postgres"

var ErrFailedToConnect = errors.New("failed to connect to database")

type DBConnectionParams struct {
	host     string
	port     int
	username string
	password string
	dBName   string
	sslMode  string
}

func NewParams(host string, port int, username string, password string, dBName string, sslMode string) DBConnectionParams {
	return DBConnectionParams{
		host:     host,
		port:     port,
		username: username,
		password: password,
		dBName:   dBName,
		sslMode:  sslMode,
	}
}

// String returns the lib/pq key value connection string.
func (p DBConnectionParams) String() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", p.host, p.port, p.username, p.password, p.dBName, p.sslMode)
}

// Redacted returns the connection parameters without the password, for logging.
func (p DBConnectionParams) Redacted() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", p.host, p.port, p.username, p.dBName, p.sslMode)
}

type OpenFunc func(ctx context.Context) (*sql.DB, error)

// Handle lazily opens a single shared *sql.DB. Concurrent first callers open it once, and a
// failed open is attempted again on the next call.
type Handle struct {
	mu   sync.Mutex
	db   *sql.DB
	open OpenFunc
}

func WithOpenFunc(open OpenFunc) func(*Handle) {
	return func(h *Handle) {
		h.open = open
	}
}

func New(params DBConnectionParams, maxIdleConns int, maxOpenConns int, opts ...func(*Handle)) *Handle {
	h := &Handle{
		open: func(ctx context.Context) (*sql.DB, error) {
			db, err := sql.Open(postgresDriverName, params.String())
			if err != nil {
				return nil, err
			}

			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)

			err = db.PingContext(ctx)
			if err != nil {
				_ = db.Close()
				return nil, err
			}

			return db, nil
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handle) DB(ctx context.Context) (*sql.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	db, err := h.open(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnect, err)
	}

	h.db = db
	return h.db, nil
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}

	err := h.db.Close()
	h.db = nil

	return err
}
