package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgx operations shared by pools and transactions. Every
// repository method takes an explicit handle; passing the pool executes in
// auto-commit mode, passing a transaction joins it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager owns transaction boundaries. Services wrap multi-step writes in
// WithinTx; repositories never begin transactions themselves.
type TxManager interface {
	// Handle returns the auto-commit handle for single-statement calls.
	Handle() DB
	// WithinTx runs fn inside one transaction, committing on nil error and
	// rolling back otherwise.
	WithinTx(ctx context.Context, fn func(db DB) error) error
}

type pgxTxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager wraps a pgx pool as a TxManager.
func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &pgxTxManager{pool: pool}
}

func (m *pgxTxManager) Handle() DB {
	return m.pool
}

func (m *pgxTxManager) WithinTx(ctx context.Context, fn func(db DB) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation. The staff email unique index is the authoritative guard against
// concurrent duplicate creates.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
