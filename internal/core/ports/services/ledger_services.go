package services

import (
	"context"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
)

// LedgerSvcFacade manages counterparty ledgers and their balance lifecycle.
type LedgerSvcFacade interface {
	CreateLedger(ctx context.Context, tenantID string, req dto.CreateLedgerRequest, creatorUserID string) (*domain.Ledger, error)
	GetLedgerByID(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, tenantID string) ([]domain.Ledger, error)
	// DeleteLedger removes a ledger that owns zero transactions.
	DeleteLedger(ctx context.Context, tenantID, ledgerID string) error
	// PurgeLedgerTransactions deletes every record owned by the ledger and
	// resets balances to the opening reference.
	PurgeLedgerTransactions(ctx context.Context, tenantID, ledgerID, userID string) (*domain.Ledger, error)
	// RecomputeLedgerBalances replays all still-active records from the
	// opening balance, repairing any drift.
	RecomputeLedgerBalances(ctx context.Context, tenantID, ledgerID, userID string) (*domain.Ledger, error)
}
