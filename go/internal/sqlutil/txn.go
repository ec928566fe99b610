package sqlutil

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run executes fn inside a *sql.Tx.
// If fn returns an error the tx rolls back, else it commits.
func Run[T any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, nil) // BEGIN
	if err != nil {
		return err
	}
	q := newQueries(tx) // bind sqlc Queries to this tx
	if err := fn(q); err != nil {
		_ = tx.Rollback() // ROLLBACK
		return err
	}
	return tx.Commit() // COMMIT
}

// RunPgx executes fn inside a pgx transaction with the given options.
// The auction domain runs serializable so check-then-act sequences
// (read current bid, insert new bid) cannot interleave.
func RunPgx[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	opts pgx.TxOptions,
	newQueries func(pgx.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	q := newQueries(tx)
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
