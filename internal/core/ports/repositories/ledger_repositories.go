package repositories

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
)

// LedgerRepositoryFacade persists counterparty ledgers. Balances are only
// ever written through UpdateLedgerBalances; callers compute the new
// balances via the domain's balance model.
type LedgerRepositoryFacade interface {
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	FindLedgerByID(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error)
	// FindLedgerForUpdate locks the ledger row when called inside an atomic
	// group; outside one it behaves like FindLedgerByID.
	FindLedgerForUpdate(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error)
	ListLedgersByTenant(ctx context.Context, tenantID string) ([]domain.Ledger, error)
	UpdateLedgerBalances(ctx context.Context, tenantID, ledgerID string, balances domain.Balances, updatedBy string, updatedAt time.Time) error
	DeleteLedger(ctx context.Context, tenantID, ledgerID string) error
}
