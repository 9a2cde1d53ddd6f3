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
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/ids"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/utils/accounting"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/utils/numeric"
)

const voucherSequenceName = "voucher"

// transactionService is the transaction processor: given a commercial-event
// request it computes and applies the one-shot effect on a ledger and on
// stock, and records a reversal snapshot on the persisted record.
//
// Ordering inside each atomic group is fixed: stock first (so its guard
// fires before any ledger write), then the balance delta, then the record.
// Without atomic grouping every completed write is compensated with its
// exact inverse before the error is surfaced.
type transactionService struct {
	txManager           portsrepo.TxManager
	ledgerRepo          portsrepo.LedgerRepositoryFacade
	voucherRepo         portsrepo.VoucherRepositoryFacade
	settlementRepo      portsrepo.SettlementRepositoryFacade
	metalSettlementRepo portsrepo.MetalSettlementRepositoryFacade
	karigarRepo         portsrepo.KarigarRepositoryFacade
	sequenceRepo        portsrepo.SequenceRepositoryFacade
	stockSvc            portssvc.StockSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repos *portsrepo.RepositoryProvider, stockSvc portssvc.StockSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txManager:           repos.TxManager,
		ledgerRepo:          repos.LedgerRepo,
		voucherRepo:         repos.VoucherRepo,
		settlementRepo:      repos.SettlementRepo,
		metalSettlementRepo: repos.MetalSettlementRepo,
		karigarRepo:         repos.KarigarRepo,
		sequenceRepo:        repos.SequenceRepo,
		stockSvc:            stockSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// compensation tracks the writes already applied inside a non-atomic group
// so they can be undone with their exact inverses when a later step fails.
type compensation struct {
	stockAdj         domain.StockAdjustment
	stockApplied     bool
	balanceSnapshot  domain.Balances
	balancesWritten  bool
	ledgerID         string
}

// undo issues the compensating inverse calls. Compensation failure is
// reported back so the caller can surface it alongside the original error;
// it is never retried automatically.
func (c *compensation) undo(ctx context.Context, ledgerRepo portsrepo.LedgerRepositoryFacade, stockSvc portssvc.StockSvcFacade, tenantID, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	var failure error

	if c.balancesWritten {
		if err := ledgerRepo.UpdateLedgerBalances(ctx, tenantID, c.ledgerID, c.balanceSnapshot, userID, time.Now().UTC()); err != nil {
			logger.Error("Balance compensation failed, ledger left diverged",
				slog.String("ledger_id", c.ledgerID), slog.String("error", err.Error()))
			failure = err
		}
	}
	if c.stockApplied && !c.stockAdj.IsZero() {
		if err := stockSvc.Apply(ctx, tenantID, c.stockAdj.Inverse(), userID); err != nil {
			logger.Error("Stock compensation failed, counters left diverged",
				slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
			if failure == nil {
				failure = err
			}
		}
	}
	return failure
}

// finishWithCompensation combines the original failure with any
// compensation failure. With atomic grouping the group's abort already
// rolled everything back and no compensation runs.
func (s *transactionService) finishWithCompensation(ctx context.Context, comp *compensation, tenantID, userID string, origErr error) error {
	if s.txManager.SupportsAtomicGroups() {
		return origErr
	}
	if compErr := comp.undo(ctx, s.ledgerRepo, s.stockSvc, tenantID, userID); compErr != nil {
		return fmt.Errorf("%w (compensation also failed: %v)", origErr, compErr)
	}
	return origErr
}

// CreateVoucher validates, numbers and applies a billing document.
func (s *transactionService) CreateVoucher(ctx context.Context, tenantID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := buildVoucher(tenantID, req, userID)
	if err != nil {
		return nil, err
	}

	// Fast not-found path before any write.
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, tenantID, voucher.LedgerID)
	if err != nil {
		return nil, err
	}
	if err := s.stockSvc.EnsureExists(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	stockAdj := accounting.VoucherStockAdjustment(voucher)
	skipBalances := !ledger.CarriesBalances() || voucher.GSTInvoice

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, voucher.LedgerID)
		if err != nil {
			return err
		}

		// Stock goes first so its guard fires before any ledger write.
		if err := s.stockSvc.Apply(ctx, tenantID, stockAdj, userID); err != nil {
			return err
		}
		comp.stockAdj = stockAdj
		comp.stockApplied = true
		voucher.StockAdjustment = stockAdj

		if !skipBalances {
			snapshot := ledger.Balances
			voucher.PreviousLedgerState = &snapshot

			delta, err := accounting.VoucherBalanceDelta(voucher)
			if err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
			}
			ledger.ApplyDelta(delta)

			if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, voucher.CreatedAt); err != nil {
				return err
			}
			comp.balanceSnapshot = snapshot
			comp.balancesWritten = true
			comp.ledgerID = ledger.LedgerID
		}

		voucherNo, err := s.sequenceRepo.AllocateSequence(ctx, tenantID, voucherSequenceName)
		if err != nil {
			return err
		}
		voucher.VoucherNo = voucherNo

		// Unique (tenant, voucher_no) / (tenant, invoice_no) violations
		// surface here as ErrConflict when grouping was unavailable.
		return s.voucherRepo.SaveVoucher(ctx, *voucher)
	})
	if err != nil {
		return nil, s.finishWithCompensation(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Voucher created",
		slog.String("voucher_id", voucher.VoucherID),
		slog.Int64("voucher_no", voucher.VoucherNo),
		slog.String("ledger_id", voucher.LedgerID),
	)
	return voucher, nil
}

// GetVoucherByID retrieves a voucher scoped to the tenant.
func (s *transactionService) GetVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, tenantID, voucherID)
}

// ListVouchersByLedger returns all of the ledger's vouchers, newest first.
func (s *transactionService) ListVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error) {
	if _, err := s.ledgerRepo.FindLedgerByID(ctx, tenantID, ledgerID); err != nil {
		return nil, err
	}
	return s.voucherRepo.ListVouchersByLedger(ctx, tenantID, ledgerID)
}

// CreateSettlement applies a standalone cash/metal settlement. Settlements
// never touch stock.
func (s *transactionService) CreateSettlement(ctx context.Context, tenantID string, req dto.CreateSettlementRequest, userID string) (*domain.Settlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	settlement, err := buildSettlement(tenantID, req, userID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, tenantID, settlement.LedgerID)
	if err != nil {
		return nil, err
	}
	if !ledger.CarriesBalances() {
		return nil, fmt.Errorf("%w: GST ledgers carry no running balances to settle", apperrors.ErrValidation)
	}

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, settlement.LedgerID)
		if err != nil {
			return err
		}

		snapshot := ledger.Balances
		settlement.PreviousLedgerState = &snapshot

		if settlement.Kind == domain.AddCash {
			settlement.Target = accounting.ChooseSettlementTarget(ledger.Balances)
		}

		delta, err := accounting.SettlementBalanceDelta(settlement)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		ledger.ApplyDelta(delta)

		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, settlement.CreatedAt); err != nil {
			return err
		}
		comp.balanceSnapshot = snapshot
		comp.balancesWritten = true
		comp.ledgerID = ledger.LedgerID

		return s.settlementRepo.SaveSettlement(ctx, *settlement)
	})
	if err != nil {
		return nil, s.finishWithCompensation(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Settlement created",
		slog.String("settlement_id", settlement.SettlementID),
		slog.String("kind", string(settlement.Kind)),
	)
	return settlement, nil
}

// CreateMetalSettlement applies a directional metal settlement: PAYMENT
// hands metal out (stock deduct, credit down), RECEIPT takes metal in. The
// PAYMENT direction requires sufficient pre-existing fine balance and
// pending credit; the check runs before any mutation.
func (s *transactionService) CreateMetalSettlement(ctx context.Context, tenantID string, req dto.CreateMetalSettlementRequest, userID string) (*domain.MetalSettlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	settlement, err := buildMetalSettlement(tenantID, req, userID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, tenantID, settlement.LedgerID)
	if err != nil {
		return nil, err
	}
	if !ledger.CarriesBalances() {
		return nil, fmt.Errorf("%w: GST ledgers carry no running balances to settle", apperrors.ErrValidation)
	}
	if err := s.stockSvc.EnsureExists(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	stockAdj := accounting.MetalSettlementStockAdjustment(settlement)

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		ledger, err := s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, settlement.LedgerID)
		if err != nil {
			return err
		}

		if settlement.Direction == domain.Payment {
			if err := checkPaymentCovered(ledger, settlement); err != nil {
				return err
			}
		}

		if err := s.stockSvc.Apply(ctx, tenantID, stockAdj, userID); err != nil {
			return err
		}
		comp.stockAdj = stockAdj
		comp.stockApplied = true
		settlement.StockAdjustment = stockAdj

		snapshot := ledger.Balances
		settlement.PreviousLedgerState = &snapshot

		delta, err := accounting.MetalSettlementBalanceDelta(settlement)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		ledger.ApplyDelta(delta)

		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledger.LedgerID, ledger.Balances, userID, settlement.CreatedAt); err != nil {
			return err
		}
		comp.balanceSnapshot = snapshot
		comp.balancesWritten = true
		comp.ledgerID = ledger.LedgerID

		return s.metalSettlementRepo.SaveMetalSettlement(ctx, *settlement)
	})
	if err != nil {
		return nil, s.finishWithCompensation(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Metal settlement created",
		slog.String("metal_settlement_id", settlement.MetalSettlementID),
		slog.String("direction", string(settlement.Direction)),
	)
	return settlement, nil
}

// CreateKarigarTransaction records an artisan handoff. Karigars carry no
// ledger; the only effect is on stock.
func (s *transactionService) CreateKarigarTransaction(ctx context.Context, tenantID string, req dto.CreateKarigarTransactionRequest, userID string) (*domain.KarigarTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := buildKarigarTransaction(tenantID, req, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.karigarRepo.FindKarigarByID(ctx, tenantID, txn.KarigarID); err != nil {
		return nil, err
	}
	if err := s.stockSvc.EnsureExists(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	stockAdj := accounting.KarigarStockAdjustment(txn)

	comp := &compensation{}
	err = s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		if err := s.stockSvc.Apply(ctx, tenantID, stockAdj, userID); err != nil {
			return err
		}
		comp.stockAdj = stockAdj
		comp.stockApplied = true
		txn.StockAdjustment = stockAdj

		return s.karigarRepo.SaveKarigarTransaction(ctx, *txn)
	})
	if err != nil {
		return nil, s.finishWithCompensation(ctx, comp, tenantID, userID, err)
	}

	logger.Info("Karigar transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("direction", string(txn.Direction)),
	)
	return txn, nil
}

// checkPaymentCovered verifies the PAYMENT direction's preconditions:
// sufficient pre-existing fine balance on the matching metal and sufficient
// pending credit. Nothing has been mutated when this runs.
func checkPaymentCovered(ledger *domain.Ledger, m *domain.MetalSettlement) error {
	fine := ledger.Balances.GoldFineWeight
	if m.MetalType == domain.Silver {
		fine = ledger.Balances.SilverFineWeight
	}
	if fine.LessThan(m.FineGiven) {
		return fmt.Errorf("%w: fine weight balance %s is less than %s", apperrors.ErrInsufficientBalance, fine, m.FineGiven)
	}
	if ledger.Balances.CreditBalance.LessThan(m.Amount) {
		return fmt.Errorf("%w: credit balance %s is less than %s", apperrors.ErrInsufficientBalance, ledger.Balances.CreditBalance, m.Amount)
	}
	return nil
}

// buildVoucher converts and validates a voucher request, self-healing a
// zero or missing total from the items plus adjustments.
func buildVoucher(tenantID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	now := time.Now().UTC()

	items := make([]domain.VoucherItem, len(req.Items))
	for i, item := range req.Items {
		fine := numeric.DecimalOrZero(item.FineWeight)
		if fine.IsNegative() {
			return nil, fmt.Errorf("%w: item fine weight must be non-negative", apperrors.ErrValidation)
		}
		items[i] = domain.VoucherItem{
			Name:        item.Name,
			MetalType:   domain.MetalType(item.MetalType),
			GrossWeight: numeric.DecimalOrZero(item.GrossWeight),
			FineWeight:  fine,
			Rate:        numeric.DecimalOrZero(item.Rate),
			Amount:      numeric.DecimalOrZero(item.Amount),
		}
	}

	voucher := &domain.Voucher{
		VoucherID:    ids.New(),
		TenantID:     tenantID,
		LedgerID:     req.LedgerID,
		InvoiceNo:    req.InvoiceNo,
		VoucherType:  domain.VoucherType(req.VoucherType),
		PaymentType:  domain.PaymentType(req.PaymentType),
		GSTInvoice:   req.GSTInvoice,
		Items:        items,
		Total:        numeric.DecimalOrZero(req.Total),
		CashReceived: numeric.DecimalOrZero(req.CashReceived),
		Adjustments:  numeric.DecimalOrZero(req.Adjustments),
		Notes:        req.Notes,
		Status:       domain.VoucherActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if voucher.Total.IsNegative() || voucher.CashReceived.IsNegative() {
		return nil, fmt.Errorf("%w: total and cash received must be non-negative", apperrors.ErrValidation)
	}
	if voucher.Total.IsZero() {
		voucher.Total = voucher.ItemsTotal()
	}
	return voucher, nil
}

func buildSettlement(tenantID string, req dto.CreateSettlementRequest, userID string) (*domain.Settlement, error) {
	now := time.Now().UTC()

	settlement := &domain.Settlement{
		SettlementID: ids.New(),
		TenantID:     tenantID,
		LedgerID:     req.LedgerID,
		Kind:         domain.SettlementKind(req.Kind),
		Amount:       numeric.DecimalOrZero(req.Amount),
		FineGiven:    numeric.DecimalOrZero(req.FineGiven),
		MetalRate:    numeric.DecimalOrZero(req.MetalRate),
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	switch settlement.Kind {
	case domain.AddCash:
		if !settlement.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive for %s", apperrors.ErrValidation, settlement.Kind)
		}
	case domain.AddGold, domain.AddSilver:
		if !settlement.FineGiven.IsPositive() {
			return nil, fmt.Errorf("%w: fineGiven must be positive for %s", apperrors.ErrValidation, settlement.Kind)
		}
	case domain.MoneyToGold, domain.MoneyToSilver:
		if !settlement.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive for %s", apperrors.ErrValidation, settlement.Kind)
		}
		if !settlement.MetalRate.IsPositive() {
			return nil, fmt.Errorf("%w: metalRate must be positive for %s", apperrors.ErrValidation, settlement.Kind)
		}
	default:
		return nil, fmt.Errorf("%w: unrecognized settlement kind %q", apperrors.ErrValidation, req.Kind)
	}
	return settlement, nil
}

func buildMetalSettlement(tenantID string, req dto.CreateMetalSettlementRequest, userID string) (*domain.MetalSettlement, error) {
	now := time.Now().UTC()

	settlement := &domain.MetalSettlement{
		MetalSettlementID: ids.New(),
		TenantID:          tenantID,
		LedgerID:          req.LedgerID,
		Direction:         domain.MetalSettlementDirection(req.Direction),
		MetalType:         domain.MetalType(req.MetalType),
		Amount:            numeric.DecimalOrZero(req.Amount),
		FineGiven:         numeric.DecimalOrZero(req.FineGiven),
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if !settlement.FineGiven.IsPositive() {
		return nil, fmt.Errorf("%w: fineGiven must be positive", apperrors.ErrValidation)
	}
	if settlement.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	return settlement, nil
}

func buildKarigarTransaction(tenantID string, req dto.CreateKarigarTransactionRequest, userID string) (*domain.KarigarTransaction, error) {
	now := time.Now().UTC()

	txn := &domain.KarigarTransaction{
		TransactionID: ids.New(),
		TenantID:      tenantID,
		KarigarID:     req.KarigarID,
		Direction:     domain.KarigarDirection(req.Direction),
		MetalType:     domain.MetalType(req.MetalType),
		FineWeight:    numeric.DecimalOrZero(req.FineWeight),
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if !txn.FineWeight.IsPositive() {
		return nil, fmt.Errorf("%w: fineWeight must be positive", apperrors.ErrValidation)
	}
	return txn, nil
}

// rebuiltVoucher builds the replacement voucher for the edit flow, keeping
// the identity and number of the voucher being edited.
func rebuiltVoucher(old *domain.Voucher, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	replacement, err := buildVoucher(old.TenantID, req, userID)
	if err != nil {
		return nil, err
	}
	replacement.VoucherID = old.VoucherID
	replacement.VoucherNo = old.VoucherNo
	replacement.CreatedAt = old.CreatedAt
	replacement.CreatedBy = old.CreatedBy
	return replacement, nil
}
