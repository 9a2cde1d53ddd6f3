package repositories

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
)

// SettlementRepositoryFacade persists standalone cash/metal settlements.
type SettlementRepositoryFacade interface {
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error
	FindSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.Settlement, error)
	MarkSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error
	ListActiveSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Settlement, error)
	CountSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
	DeleteSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
}

// MetalSettlementRepositoryFacade persists directional metal settlements
// with their stock adjustments.
type MetalSettlementRepositoryFacade interface {
	SaveMetalSettlement(ctx context.Context, settlement domain.MetalSettlement) error
	FindMetalSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.MetalSettlement, error)
	MarkMetalSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error
	MarkMetalSettlementStockRestored(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error
	ListActiveMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.MetalSettlement, error)
	CountMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
	DeleteMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
}
