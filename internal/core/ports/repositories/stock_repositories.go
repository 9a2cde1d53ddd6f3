package repositories

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRepositoryFacade maintains the per-tenant metal counters. AdjustMetals
// is the only way to move gold/silver and must be a single conditional
// update so concurrent deductions cannot both pass a stale non-negativity
// check.
type StockRepositoryFacade interface {
	// EnsureStock lazily creates a zero-valued stock record, tolerating a
	// duplicate-create race by falling back to the existing row.
	EnsureStock(ctx context.Context, tenantID, createdBy string) error
	FindStockByTenant(ctx context.Context, tenantID string) (*domain.Stock, error)
	// AdjustMetals applies the signed adjustment atomically, only if both
	// counters remain non-negative afterwards. Returns
	// apperrors.ErrInsufficientStock when the guard fails, with no change.
	AdjustMetals(ctx context.Context, tenantID string, adj domain.StockAdjustment, updatedBy string, updatedAt time.Time) error
	// AdjustCashInHand moves the free-running signed cash accumulator.
	AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
	UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, updatedBy string, updatedAt time.Time) error
}
