package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgx shared by a pool and a transaction, so every
// repository method runs against whichever one the context carries.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKeyType struct{}

var txCtxKey = txCtxKeyType{}

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db resolves the querier for ctx: the enclosing transaction when one was
// started by the TxManager, the pool otherwise.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// mapSaveError converts store-level errors on insert paths into the
// application taxonomy.
func mapSaveError(err error, what, id string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s %s already exists", apperrors.ErrConflict, what, id)
	}
	return fmt.Errorf("failed to save %s %s: %w", what, id, err)
}
