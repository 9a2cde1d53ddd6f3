package services

import (
	"context"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockSvcFacade guards the per-tenant metal counters. Deduct and Restore
// take non-negative magnitudes; passing a negative magnitude is a caller
// error, never a deduction in reverse.
type StockSvcFacade interface {
	EnsureExists(ctx context.Context, tenantID, userID string) error
	GetStock(ctx context.Context, tenantID string) (*domain.Stock, error)
	// Deduct atomically decrements both counters only if both remain
	// non-negative; fails with apperrors.ErrInsufficientStock otherwise.
	Deduct(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error
	// Restore atomically increments both counters; no upper bound.
	Restore(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error
	// Apply applies a signed adjustment (used by the processor and the
	// reversal engine, which carry adjustments rather than magnitudes).
	Apply(ctx context.Context, tenantID string, adj domain.StockAdjustment, userID string) error
	AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, userID string) error
	UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, userID string) (*domain.Stock, error)
}
