package services

import (
	"context"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
)

// TransactionSvcFacade is the transaction processor: it computes and applies
// the one-shot effect of a commercial event on a ledger and on stock, and
// records a reversal snapshot on the persisted record.
type TransactionSvcFacade interface {
	CreateVoucher(ctx context.Context, tenantID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error)
	ListVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error)
	CreateSettlement(ctx context.Context, tenantID string, req dto.CreateSettlementRequest, userID string) (*domain.Settlement, error)
	CreateMetalSettlement(ctx context.Context, tenantID string, req dto.CreateMetalSettlementRequest, userID string) (*domain.MetalSettlement, error)
	CreateKarigarTransaction(ctx context.Context, tenantID string, req dto.CreateKarigarTransactionRequest, userID string) (*domain.KarigarTransaction, error)
}

// ReversalSvcFacade is the reversal engine: it undoes a previously applied
// record exactly via its stored snapshot, gated by the reversal window.
type ReversalSvcFacade interface {
	CancelVoucher(ctx context.Context, tenantID, voucherID, userID string) (*dto.ReversalResult, error)
	DeleteVoucher(ctx context.Context, tenantID, voucherID, userID string) (*dto.ReversalResult, error)
	// UpdateVoucher reverses the old state and applies the new one
	// back-to-back inside one atomic unit. Rejected outside the window.
	UpdateVoucher(ctx context.Context, tenantID, voucherID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	DeleteSettlement(ctx context.Context, tenantID, settlementID, userID string) (*dto.ReversalResult, error)
	DeleteMetalSettlement(ctx context.Context, tenantID, settlementID, userID string) (*dto.ReversalResult, error)
	DeleteKarigarTransaction(ctx context.Context, tenantID, transactionID, userID string) (*dto.ReversalResult, error)
}
