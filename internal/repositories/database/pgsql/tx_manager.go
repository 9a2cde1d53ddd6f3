package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/platform/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxTxManager wraps multi-document writes in a database transaction. The
// transaction handle travels in the context so repositories pick it up
// transparently via BaseRepository.db.
type pgxTxManager struct {
	pool *pgxpool.Pool
}

var _ portsrepo.TxManager = (*pgxTxManager)(nil)

func (m *pgxTxManager) SupportsAtomicGroups() bool { return true }

func (m *pgxTxManager) WithOptionalAtomicGroup(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested groups join the outer transaction.
	if _, ok := ctx.Value(txCtxKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Transaction rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// nopTxManager runs groups without any transactional envelope. Each write
// inside a group lands individually; the services compensate partial
// failures themselves.
type nopTxManager struct{}

var _ portsrepo.TxManager = (*nopTxManager)(nil)

func (nopTxManager) SupportsAtomicGroups() bool { return false }

func (nopTxManager) WithOptionalAtomicGroup(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NewTxManager selects the transaction strategy for the configured mode,
// probing the store once in auto mode. A pool that cannot open a
// transaction degrades to ungrouped writes instead of failing startup.
func NewTxManager(ctx context.Context, pool *pgxpool.Pool, mode config.AtomicGroupMode, logger *slog.Logger) portsrepo.TxManager {
	switch mode {
	case config.AtomicOff:
		logger.Warn("Atomic groups disabled by configuration; multi-document writes will be compensated, not rolled back")
		return nopTxManager{}
	case config.AtomicOn:
		return &pgxTxManager{pool: pool}
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		logger.Warn("Atomic group probe failed; degrading to compensated writes", slog.String("error", err.Error()))
		return nopTxManager{}
	}
	_ = tx.Rollback(ctx)
	return &pgxTxManager{pool: pool}
}
