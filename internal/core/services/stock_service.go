package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// stockService guards the per-tenant metal counters. All gold/silver
// movement funnels through the repository's single conditional update, so
// concurrent deductions can never both pass a stale non-negativity check.
type stockService struct {
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// EnsureExists lazily creates the tenant's zero-valued stock record.
// Idempotent; a duplicate-create race falls back to the existing row.
func (s *stockService) EnsureExists(ctx context.Context, tenantID, userID string) error {
	return s.stockRepo.EnsureStock(ctx, tenantID, userID)
}

// GetStock returns the tenant's stock record, creating it on first use.
func (s *stockService) GetStock(ctx context.Context, tenantID string) (*domain.Stock, error) {
	if err := s.stockRepo.EnsureStock(ctx, tenantID, ""); err != nil {
		return nil, err
	}
	return s.stockRepo.FindStockByTenant(ctx, tenantID)
}

// Deduct atomically decrements both counters only if both remain
// non-negative afterwards. Magnitudes must be non-negative.
func (s *stockService) Deduct(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error {
	if err := validateMagnitudes(gold, silver); err != nil {
		return err
	}
	return s.Apply(ctx, tenantID, domain.StockAdjustment{Gold: gold.Neg(), Silver: silver.Neg()}, userID)
}

// Restore atomically increments both counters. Magnitudes must be
// non-negative; there is no upper bound.
func (s *stockService) Restore(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error {
	if err := validateMagnitudes(gold, silver); err != nil {
		return err
	}
	return s.Apply(ctx, tenantID, domain.StockAdjustment{Gold: gold, Silver: silver}, userID)
}

// Apply applies a signed adjustment through the guarded repository
// primitive. The guard fires when either counter would go negative.
func (s *stockService) Apply(ctx context.Context, tenantID string, adj domain.StockAdjustment, userID string) error {
	if adj.IsZero() {
		return nil
	}
	now := time.Now().UTC()
	if err := s.stockRepo.AdjustMetals(ctx, tenantID, adj, userID, now); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Stock adjusted",
		slog.String("tenant_id", tenantID),
		slog.String("gold_delta", adj.Gold.String()),
		slog.String("silver_delta", adj.Silver.String()),
	)
	return nil
}

// AdjustCashInHand moves the free-running signed cash accumulator. It is
// informational and may go negative.
func (s *stockService) AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, userID string) error {
	return s.stockRepo.AdjustCashInHand(ctx, tenantID, delta, userID, time.Now().UTC())
}

// UpdateRates sets the informational daily metal rates.
func (s *stockService) UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, userID string) (*domain.Stock, error) {
	if goldRate.IsNegative() || silverRate.IsNegative() {
		return nil, fmt.Errorf("%w: rates must be non-negative", apperrors.ErrValidation)
	}
	if err := s.stockRepo.EnsureStock(ctx, tenantID, userID); err != nil {
		return nil, err
	}
	if err := s.stockRepo.UpdateRates(ctx, tenantID, goldRate, silverRate, userID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.stockRepo.FindStockByTenant(ctx, tenantID)
}

// validateMagnitudes rejects negative magnitudes: a negative input is a
// caller error, not a deduction in reverse.
func validateMagnitudes(gold, silver decimal.Decimal) error {
	if gold.IsNegative() || silver.IsNegative() {
		return apperrors.ErrInvalidStockAmount
	}
	return nil
}
