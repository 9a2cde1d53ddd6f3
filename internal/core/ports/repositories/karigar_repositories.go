package repositories

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
)

// KarigarRepositoryFacade persists artisans and their stock-only handoffs.
type KarigarRepositoryFacade interface {
	SaveKarigar(ctx context.Context, karigar domain.Karigar) error
	FindKarigarByID(ctx context.Context, tenantID, karigarID string) (*domain.Karigar, error)
	ListKarigarsByTenant(ctx context.Context, tenantID string) ([]domain.Karigar, error)

	SaveKarigarTransaction(ctx context.Context, txn domain.KarigarTransaction) error
	FindKarigarTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.KarigarTransaction, error)
	MarkKarigarTransactionDeleted(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error
	MarkKarigarTransactionStockRestored(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error
	ListKarigarTransactions(ctx context.Context, tenantID, karigarID string) ([]domain.KarigarTransaction, error)
}
