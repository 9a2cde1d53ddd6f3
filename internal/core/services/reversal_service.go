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
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/utils/accounting"
)

// ReversalVariant names the two ways a record's balance effect can be
// undone. The variant is selected by the presence of the stored snapshot
// and the two paths are never mixed on a single record.
type ReversalVariant string

const (
	// SnapshotReversal overwrites the ledger's balances with the stored
	// snapshot verbatim. Exact and idempotent.
	SnapshotReversal ReversalVariant = "SNAPSHOT"
	// LegacyArithmeticReversal applies the arithmetic inverse of the
	// original effect. Used only for records that predate snapshots.
	LegacyArithmeticReversal ReversalVariant = "LEGACY_ARITHMETIC"
)

// IsReversible reports whether a record created at createdAt may still have
// its effects undone at instant now. The boundary at exactly windowHours is
// inclusive.
func IsReversible(createdAt, now time.Time, windowHours int) bool {
	return now.Sub(createdAt) <= time.Duration(windowHours)*time.Hour
}

// reversalService undoes previously applied records. Within the window the
// record's effect on ledger and stock is rolled back before the record goes
// inactive; past the window the record still goes inactive but balances and
// stock are intentionally left as they are, which permanently diverges them
// from the record set. That divergence is accepted for stale records and
// reported via ReversalResult.Reversed=false.
type reversalService struct {
	txManager           portsrepo.TxManager
	ledgerRepo          portsrepo.LedgerRepositoryFacade
	voucherRepo         portsrepo.VoucherRepositoryFacade
	settlementRepo      portsrepo.SettlementRepositoryFacade
	metalSettlementRepo portsrepo.MetalSettlementRepositoryFacade
	karigarRepo         portsrepo.KarigarRepositoryFacade
	stockSvc            portssvc.StockSvcFacade
	windowHours         int
}

// NewReversalService creates a new ReversalService.
func NewReversalService(repos *portsrepo.RepositoryProvider, stockSvc portssvc.StockSvcFacade, windowHours int) portssvc.ReversalSvcFacade {
	return &reversalService{
		txManager:           repos.TxManager,
		ledgerRepo:          repos.LedgerRepo,
		voucherRepo:         repos.VoucherRepo,
		settlementRepo:      repos.SettlementRepo,
		metalSettlementRepo: repos.MetalSettlementRepo,
		karigarRepo:         repos.KarigarRepo,
		stockSvc:            stockSvc,
		windowHours:         windowHours,
	}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

const (
	statusCancelled = "CANCELLED"
	statusDeleted   = "DELETED"
)

func windowExpiredResult(recordID, status string) *dto.ReversalResult {
	return &dto.ReversalResult{
		RecordID: recordID,
		Status:   status,
		Reversed: false,
		Message:  "reversal window expired; record deactivated but ledger and stock were left untouched",
	}
}

func reversedResult(recordID, status string) *dto.ReversalResult {
	return &dto.ReversalResult{RecordID: recordID, Status: status, Reversed: true}
}

// reverseVoucherBalances undoes the voucher's balance effect on the ledger
// in memory and reports which variant applied. GST vouchers never had a
// balance effect, so the GST check must run before the legacy fallback: a
// nil snapshot on a GST voucher means "no effect", not "legacy record".
func reverseVoucherBalances(ledger *domain.Ledger, v *domain.Voucher) (ReversalVariant, error) {
	if v.GSTInvoice || !ledger.CarriesBalances() {
		return SnapshotReversal, nil
	}
	if v.PreviousLedgerState != nil {
		ledger.RestoreBalances(*v.PreviousLedgerState)
		return SnapshotReversal, nil
	}
	delta, err := accounting.VoucherBalanceDelta(v)
	if err != nil {
		return LegacyArithmeticReversal, err
	}
	ledger.ApplyDelta(delta.Inverse())
	return LegacyArithmeticReversal, nil
}

// reverseVoucherEffects rolls back a voucher's ledger and stock effects
// inside the current atomic group. The voucher row itself is not written;
// the caller finishes with its own terminal write (cancel or delete) so the
// record write stays last in the group.
func (s *reversalService) reverseVoucherEffects(ctx context.Context, v *domain.Voucher, userID string, now time.Time, comp *compensation) error {
	ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, v.TenantID, v.LedgerID)
	if err != nil {
		return err
	}

	snapshot := ledger.Balances
	variant, err := reverseVoucherBalances(ledger, v)
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.UpdateLedgerBalances(ctx, v.TenantID, ledger.LedgerID, ledger.Balances, userID, now); err != nil {
		return err
	}
	comp.balanceSnapshot = snapshot
	comp.balancesWritten = true
	comp.ledgerID = ledger.LedgerID

	if !v.StockRestored && !v.StockAdjustment.IsZero() {
		if err := s.stockSvc.Apply(ctx, v.TenantID, v.StockAdjustment.Inverse(), userID); err != nil {
			return err
		}
		comp.stockAdj = v.StockAdjustment.Inverse()
		comp.stockApplied = true
		v.StockRestored = true
	}

	middleware.GetLoggerFromCtx(ctx).Info("Voucher effects reversed",
		slog.String("voucher_id", v.VoucherID),
		slog.String("variant", string(variant)),
	)
	return nil
}

// compensate mirrors the transaction processor's failure handling: with
// atomic grouping the group abort already rolled everything back, without
// it each completed write is undone with its exact inverse.
func (s *reversalService) compensate(ctx context.Context, comp *compensation, tenantID, userID string, origErr error) error {
	if s.txManager.SupportsAtomicGroups() {
		return origErr
	}
	if compErr := comp.undo(ctx, s.ledgerRepo, s.stockSvc, tenantID, userID); compErr != nil {
		return fmt.Errorf("%w (compensation also failed: %v)", origErr, compErr)
	}
	return origErr
}

// CancelVoucher moves an active voucher to its terminal CANCELLED state,
// undoing its effects when still inside the reversal window.
func (s *reversalService) CancelVoucher(ctx context.Context, tenantID, voucherID, userID string) (*dto.ReversalResult, error) {
	return s.retireVoucher(ctx, tenantID, voucherID, userID, false)
}

// DeleteVoucher removes a voucher outright. Inside the window its effects
// are undone first; outside it the row still goes away with effects kept.
func (s *reversalService) DeleteVoucher(ctx context.Context, tenantID, voucherID, userID string) (*dto.ReversalResult, error) {
	return s.retireVoucher(ctx, tenantID, voucherID, userID, true)
}

func (s *reversalService) retireVoucher(ctx context.Context, tenantID, voucherID, userID string, remove bool) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status == domain.VoucherCancelled && !remove {
		return nil, fmt.Errorf("%w: voucher %s is already cancelled", apperrors.ErrAlreadyReversed, voucherID)
	}

	status := statusCancelled
	if remove {
		status = statusDeleted
	}

	if !IsReversible(voucher.CreatedAt, now, s.windowHours) {
		logger.Warn("Reversal window expired, deactivating without reversing",
			slog.String("voucher_id", voucherID),
			slog.Time("created_at", voucher.CreatedAt),
			slog.Int("window_hours", s.windowHours),
		)
		if remove {
			if err := s.voucherRepo.DeleteVoucher(ctx, tenantID, voucherID); err != nil {
				return nil, err
			}
		} else {
			if err := s.voucherRepo.UpdateVoucherStatus(ctx, tenantID, voucherID, domain.VoucherCancelled, userID, now); err != nil {
				return nil, err
			}
		}
		return windowExpiredResult(voucherID, status), nil
	}

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		// Cancelled vouchers had their effects reversed already; delete
		// only removes the row.
		if voucher.Status != domain.VoucherCancelled {
			if err := s.reverseVoucherEffects(ctx, voucher, userID, now, comp); err != nil {
				return err
			}
		}
		if remove {
			return s.voucherRepo.DeleteVoucher(ctx, tenantID, voucherID)
		}
		voucher.Status = domain.VoucherCancelled
		voucher.LastUpdatedAt = now
		voucher.LastUpdatedBy = userID
		return s.voucherRepo.UpdateVoucher(ctx, *voucher)
	})
	if err != nil {
		return nil, s.compensate(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Voucher retired",
		slog.String("voucher_id", voucherID),
		slog.String("status", status),
	)
	return reversedResult(voucherID, status), nil
}

// UpdateVoucher replaces a voucher's content: the old state is reversed and
// the new one applied back-to-back inside one atomic unit, so no
// half-reversed intermediate is observable. Unlike cancel/delete, edits are
// rejected outright once the window has expired.
func (s *reversalService) UpdateVoucher(ctx context.Context, tenantID, voucherID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	old, err := s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
	if err != nil {
		return nil, err
	}
	if old.Status == domain.VoucherCancelled {
		return nil, fmt.Errorf("%w: voucher %s is cancelled", apperrors.ErrAlreadyReversed, voucherID)
	}
	if !IsReversible(old.CreatedAt, now, s.windowHours) {
		return nil, fmt.Errorf("%w: voucher %s is older than %d hours", apperrors.ErrWindowExpired, voucherID, s.windowHours)
	}
	if req.LedgerID != old.LedgerID {
		return nil, fmt.Errorf("%w: a voucher cannot be moved to another ledger", apperrors.ErrValidation)
	}

	replacement, err := rebuiltVoucher(old, req, userID)
	if err != nil {
		return nil, err
	}
	replacement.LastUpdatedAt = now
	replacement.LastUpdatedBy = userID

	newStockAdj := accounting.VoucherStockAdjustment(replacement)

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		if err := s.reverseVoucherEffects(ctx, old, userID, now, comp); err != nil {
			return err
		}

		// Re-apply with the new content against the just-restored state.
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, old.LedgerID)
		if err != nil {
			return err
		}

		if err := s.stockSvc.Apply(ctx, tenantID, newStockAdj, userID); err != nil {
			return err
		}
		comp.stockAdj = comp.stockAdj.Add(newStockAdj)
		comp.stockApplied = true
		replacement.StockAdjustment = newStockAdj

		if ledger.CarriesBalances() && !replacement.GSTInvoice {
			snapshot := ledger.Balances
			replacement.PreviousLedgerState = &snapshot

			delta, err := accounting.VoucherBalanceDelta(replacement)
			if err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
			}
			ledger.ApplyDelta(delta)
			if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, now); err != nil {
				return err
			}
			comp.balancesWritten = true
			comp.ledgerID = ledger.LedgerID
		}

		return s.voucherRepo.UpdateVoucher(ctx, *replacement)
	})
	if err != nil {
		return nil, s.compensate(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Voucher updated",
		slog.String("voucher_id", voucherID),
		slog.Int64("voucher_no", replacement.VoucherNo),
	)
	return replacement, nil
}

// DeleteSettlement soft-deletes a settlement, restoring the ledger snapshot
// when inside the window. Settlements never touch stock.
func (s *reversalService) DeleteSettlement(ctx context.Context, tenantID, settlementID, userID string) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	settlement, err := s.settlementRepo.FindSettlementByID(ctx, tenantID, settlementID)
	if err != nil {
		return nil, err
	}
	if settlement.IsDeleted {
		return nil, fmt.Errorf("%w: settlement %s is already deleted", apperrors.ErrAlreadyReversed, settlementID)
	}

	if !IsReversible(settlement.CreatedAt, now, s.windowHours) {
		logger.Warn("Reversal window expired, deactivating without reversing",
			slog.String("settlement_id", settlementID),
			slog.Time("created_at", settlement.CreatedAt),
			slog.Int("window_hours", s.windowHours),
		)
		if err := s.settlementRepo.MarkSettlementDeleted(ctx, tenantID, settlementID, userID, now); err != nil {
			return nil, err
		}
		return windowExpiredResult(settlementID, statusDeleted), nil
	}

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, settlement.LedgerID)
		if err != nil {
			return err
		}

		snapshot := ledger.Balances
		if settlement.PreviousLedgerState != nil {
			ledger.RestoreBalances(*settlement.PreviousLedgerState)
		} else {
			delta, err := accounting.SettlementBalanceDelta(settlement)
			if err != nil {
				return err
			}
			ledger.ApplyDelta(delta.Inverse())
		}
		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, now); err != nil {
			return err
		}
		comp.balanceSnapshot = snapshot
		comp.balancesWritten = true
		comp.ledgerID = ledger.LedgerID

		return s.settlementRepo.MarkSettlementDeleted(ctx, tenantID, settlementID, userID, now)
	})
	if err != nil {
		return nil, s.compensate(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Settlement deleted", slog.String("settlement_id", settlementID))
	return reversedResult(settlementID, statusDeleted), nil
}

// DeleteMetalSettlement soft-deletes a metal settlement, restoring both the
// ledger snapshot and the recorded stock adjustment when inside the window.
func (s *reversalService) DeleteMetalSettlement(ctx context.Context, tenantID, settlementID, userID string) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	settlement, err := s.metalSettlementRepo.FindMetalSettlementByID(ctx, tenantID, settlementID)
	if err != nil {
		return nil, err
	}
	if settlement.IsDeleted {
		return nil, fmt.Errorf("%w: metal settlement %s is already deleted", apperrors.ErrAlreadyReversed, settlementID)
	}

	if !IsReversible(settlement.CreatedAt, now, s.windowHours) {
		logger.Warn("Reversal window expired, deactivating without reversing",
			slog.String("metal_settlement_id", settlementID),
			slog.Time("created_at", settlement.CreatedAt),
			slog.Int("window_hours", s.windowHours),
		)
		if err := s.metalSettlementRepo.MarkMetalSettlementDeleted(ctx, tenantID, settlementID, userID, now); err != nil {
			return nil, err
		}
		return windowExpiredResult(settlementID, statusDeleted), nil
	}

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, settlement.LedgerID)
		if err != nil {
			return err
		}

		snapshot := ledger.Balances
		if settlement.PreviousLedgerState != nil {
			ledger.RestoreBalances(*settlement.PreviousLedgerState)
		} else {
			delta, err := accounting.MetalSettlementBalanceDelta(settlement)
			if err != nil {
				return err
			}
			ledger.ApplyDelta(delta.Inverse())
		}
		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, now); err != nil {
			return err
		}
		comp.balanceSnapshot = snapshot
		comp.balancesWritten = true
		comp.ledgerID = ledger.LedgerID

		if !settlement.StockRestored && !settlement.StockAdjustment.IsZero() {
			if err := s.stockSvc.Apply(ctx, tenantID, settlement.StockAdjustment.Inverse(), userID); err != nil {
				return err
			}
			comp.stockAdj = settlement.StockAdjustment.Inverse()
			comp.stockApplied = true
			if err := s.metalSettlementRepo.MarkMetalSettlementStockRestored(ctx, tenantID, settlementID, userID, now); err != nil {
				return err
			}
		}

		return s.metalSettlementRepo.MarkMetalSettlementDeleted(ctx, tenantID, settlementID, userID, now)
	})
	if err != nil {
		return nil, s.compensate(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Metal settlement deleted", slog.String("metal_settlement_id", settlementID))
	return reversedResult(settlementID, statusDeleted), nil
}

// DeleteKarigarTransaction soft-deletes an artisan handoff, restoring the
// recorded stock adjustment when inside the window. Karigar transactions
// carry no ledger effect.
func (s *reversalService) DeleteKarigarTransaction(ctx context.Context, tenantID, transactionID, userID string) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	txn, err := s.karigarRepo.FindKarigarTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsDeleted {
		return nil, fmt.Errorf("%w: karigar transaction %s is already deleted", apperrors.ErrAlreadyReversed, transactionID)
	}

	if !IsReversible(txn.CreatedAt, now, s.windowHours) {
		logger.Warn("Reversal window expired, deactivating without reversing",
			slog.String("transaction_id", transactionID),
			slog.Time("created_at", txn.CreatedAt),
			slog.Int("window_hours", s.windowHours),
		)
		if err := s.karigarRepo.MarkKarigarTransactionDeleted(ctx, tenantID, transactionID, userID, now); err != nil {
			return nil, err
		}
		return windowExpiredResult(transactionID, statusDeleted), nil
	}

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		if !txn.StockRestored && !txn.StockAdjustment.IsZero() {
			if err := s.stockSvc.Apply(ctx, tenantID, txn.StockAdjustment.Inverse(), userID); err != nil {
				return err
			}
			comp.stockAdj = txn.StockAdjustment.Inverse()
			comp.stockApplied = true
			if err := s.karigarRepo.MarkKarigarTransactionStockRestored(ctx, tenantID, transactionID, userID, now); err != nil {
				return err
			}
		}
		return s.karigarRepo.MarkKarigarTransactionDeleted(ctx, tenantID, transactionID, userID, now)
	})
	if err != nil {
		return nil, s.compensate(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Karigar transaction deleted", slog.String("transaction_id", transactionID))
	return reversedResult(transactionID, statusDeleted), nil
}
