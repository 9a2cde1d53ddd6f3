package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/platform/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository against the pool and selects
// the transaction strategy once at startup.
func NewRepositoryProvider(ctx context.Context, dbPool *pgxpool.Pool, mode config.AtomicGroupMode, logger *slog.Logger) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TxManager:           NewTxManager(ctx, dbPool, mode, logger),
		LedgerRepo:          newPgxLedgerRepository(dbPool),
		StockRepo:           newPgxStockRepository(dbPool),
		VoucherRepo:         newPgxVoucherRepository(dbPool),
		SettlementRepo:      newPgxSettlementRepository(dbPool),
		MetalSettlementRepo: newPgxMetalSettlementRepository(dbPool),
		KarigarRepo:         newPgxKarigarRepository(dbPool),
		SequenceRepo:        newPgxSequenceRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
	}
}
