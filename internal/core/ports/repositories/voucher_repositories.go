package repositories

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
)

// VoucherRepositoryFacade persists billing documents with their reversal
// snapshots. Uniqueness of (tenant, voucher_no) and (tenant, invoice_no) is
// enforced by the store and surfaced as apperrors.ErrConflict.
type VoucherRepositoryFacade interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error)
	// UpdateVoucher rewrites an existing voucher in place (edit flow); the
	// voucher number and ID are preserved.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error
	UpdateVoucherStatus(ctx context.Context, tenantID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error
	// DeleteVoucher removes a voucher row outright (the delete flow, after
	// any in-window reversal has been applied).
	DeleteVoucher(ctx context.Context, tenantID, voucherID string) error
	MarkVoucherStockRestored(ctx context.Context, tenantID, voucherID string, updatedBy string, updatedAt time.Time) error
	// ListActiveVouchersByLedger returns active vouchers in creation order,
	// used by the full-replay recompute.
	ListActiveVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error)
	ListVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error)
	CountVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
	DeleteVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error)
}
