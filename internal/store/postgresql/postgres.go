package postgresql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/algosender/algosender/internal/store"
)

const uniqueViolation = "23505"

//go:embed migrations/*.sql
var migrationFiles embed.FS

var ErrFailedToMigrate = errors.New("failed to run migrations")

// Connection provides the lazily opened database handle.
type Connection interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}

type PostgreSQL struct {
	conn Connection
	now  func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*PostgreSQL) {
	return func(p *PostgreSQL) {
		p.now = nowFunc
	}
}

func New(conn Connection, opts ...func(postgreSQL *PostgreSQL)) *PostgreSQL {
	p := &PostgreSQL{
		conn: conn,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// RunMigrations applies all embedded schema migrations which have not been applied yet.
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Join(ErrFailedToMigrate, err)
	}

	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{
		MigrationsTable: "algosender_schema_migrations",
	})
	if err != nil {
		return errors.Join(ErrFailedToMigrate, err)
	}

	migrations, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Join(ErrFailedToMigrate, err)
	}

	err = migrations.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(ErrFailedToMigrate, err)
	}

	return nil
}

func (p *PostgreSQL) db(ctx context.Context) (*sql.DB, error) {
	db, err := p.conn.DB(ctx)
	if err != nil {
		return nil, errors.Join(store.ErrStorage, err)
	}

	return db, nil
}

func (p *PostgreSQL) Create(ctx context.Context, tx *store.Transaction) error {
	db, err := p.db(ctx)
	if err != nil {
		return err
	}

	confirmedRound, err := toNullInt64(tx.ConfirmedRound)
	if err != nil {
		return errors.Join(store.ErrStorage, err)
	}

	status := tx.Status
	if status == "" {
		status = store.StatusPending
	}

	now := p.now()
	createdAt := tx.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	q := `INSERT INTO algosender.transactions (
			tx_id
			,from_address
			,to_address
			,amount
			,note
			,status
			,confirmed_round
			,reason
			,created_at
			,updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err = db.ExecContext(ctx, q,
		tx.TxID,
		tx.From,
		tx.To,
		tx.Amount,
		tx.Note,
		string(status),
		confirmedRound,
		tx.Reason,
		createdAt.UTC(),
		now.UTC(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return store.ErrDuplicateKey
		}
		return errors.Join(store.ErrStorage, err)
	}

	return nil
}

const selectColumns = `tx_id
		,from_address
		,to_address
		,amount
		,note
		,status
		,confirmed_round
		,reason
		,created_at
		,updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*store.Transaction, error) {
	tx := &store.Transaction{}

	var status string
	var confirmedRound sql.NullInt64

	err := row.Scan(
		&tx.TxID,
		&tx.From,
		&tx.To,
		&tx.Amount,
		&tx.Note,
		&status,
		&confirmedRound,
		&tx.Reason,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Status = store.Status(status)
	tx.CreatedAt = tx.CreatedAt.UTC()
	tx.UpdatedAt = tx.UpdatedAt.UTC()

	if confirmedRound.Valid {
		round, err := safecast.ToUint64(confirmedRound.Int64)
		if err != nil {
			return nil, err
		}
		tx.ConfirmedRound = &round
	}

	return tx, nil
}

func (p *PostgreSQL) Get(ctx context.Context, txID string) (*store.Transaction, error) {
	db, err := p.db(ctx)
	if err != nil {
		return nil, err
	}

	q := `SELECT ` + selectColumns + ` FROM algosender.transactions WHERE tx_id = $1 LIMIT 1;`

	tx, err := scanTransaction(db.QueryRowContext(ctx, q, txID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, errors.Join(store.ErrStorage, err)
	}

	return tx, nil
}

// UpdateStatus applies the update only if the stored status allows the transition.
func (p *PostgreSQL) UpdateStatus(ctx context.Context, txID string, update store.StatusUpdate) (bool, error) {
	if update.Status != store.StatusConfirmed && update.Status != store.StatusFailed {
		return false, nil
	}

	db, err := p.db(ctx)
	if err != nil {
		return false, err
	}

	var confirmedRound sql.NullInt64
	if update.Status == store.StatusConfirmed {
		confirmedRound, err = toNullInt64(update.ConfirmedRound)
		if err != nil {
			return false, errors.Join(store.ErrStorage, err)
		}
	}

	q := `UPDATE algosender.transactions
		SET status = $2::TEXT
			,confirmed_round = COALESCE($3, confirmed_round)
			,reason = $4
			,updated_at = $5
		WHERE tx_id = $1
			AND status <> $2::TEXT
			AND (status = 'pending' OR (status = 'failed' AND $2::TEXT = 'confirmed'));`

	result, err := db.ExecContext(ctx, q, txID, string(update.Status), confirmedRound, update.Reason, p.now().UTC())
	if err != nil {
		return false, errors.Join(store.ErrStorage, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Join(store.ErrStorage, err)
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) List(ctx context.Context, filter store.ListFilter) ([]*store.Transaction, error) {
	db, err := p.db(ctx)
	if err != nil {
		return nil, err
	}

	var (
		qBuilder strings.Builder
		args     []any
	)

	qBuilder.WriteString(`SELECT ` + selectColumns + ` FROM algosender.transactions`)

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		qBuilder.WriteString(fmt.Sprintf(" WHERE status = $%d", len(args)))
	}

	qBuilder.WriteString(" ORDER BY created_at DESC, tx_id DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		qBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	if filter.Skip > 0 {
		args = append(args, filter.Skip)
		qBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := db.QueryContext(ctx, qBuilder.String(), args...)
	if err != nil {
		return nil, errors.Join(store.ErrStorage, err)
	}
	defer rows.Close()

	txs := make([]*store.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, errors.Join(store.ErrStorage, err)
		}
		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(store.ErrStorage, err)
	}

	return txs, nil
}

func (p *PostgreSQL) Count(ctx context.Context, status *store.Status) (int64, error) {
	db, err := p.db(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if status == nil {
		err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM algosender.transactions;`).Scan(&count)
	} else {
		err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM algosender.transactions WHERE status = $1;`, string(*status)).Scan(&count)
	}
	if err != nil {
		return 0, errors.Join(store.ErrStorage, err)
	}

	return count, nil
}

func (p *PostgreSQL) GetStats(ctx context.Context) (*store.Stats, error) {
	db, err := p.db(ctx)
	if err != nil {
		return nil, err
	}

	q := `SELECT
		COUNT(*)
		,COUNT(*) FILTER (WHERE status = 'confirmed')
		,COUNT(*) FILTER (WHERE status = 'pending')
		,COUNT(*) FILTER (WHERE status = 'failed')
		,COALESCE(SUM(amount) FILTER (WHERE status = 'confirmed'), 0)
		FROM algosender.transactions;`

	stats := &store.Stats{}
	var totalSent decimal.Decimal

	err = db.QueryRowContext(ctx, q).Scan(
		&stats.Total,
		&stats.Confirmed,
		&stats.Pending,
		&stats.Failed,
		&totalSent,
	)
	if err != nil {
		return nil, errors.Join(store.ErrStorage, err)
	}

	stats.TotalSent = totalSent

	return stats, nil
}

func (p *PostgreSQL) Ping(ctx context.Context) error {
	db, err := p.db(ctx)
	if err != nil {
		return err
	}

	err = db.PingContext(ctx)
	if err != nil {
		return errors.Join(store.ErrStorage, err)
	}

	return nil
}

func (p *PostgreSQL) Close() error {
	return p.conn.Close()
}

func toNullInt64(value *uint64) (sql.NullInt64, error) {
	if value == nil {
		return sql.NullInt64{}, nil
	}

	converted, err := safecast.ToInt64(*value)
	if err != nil {
		return sql.NullInt64{}, err
	}

	return sql.NullInt64{Int64: converted, Valid: true}, nil
}
