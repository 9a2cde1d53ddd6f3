package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
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

type ledgerService struct {
	txManager           portsrepo.TxManager
	ledgerRepo          portsrepo.LedgerRepositoryFacade
	voucherRepo         portsrepo.VoucherRepositoryFacade
	settlementRepo      portsrepo.SettlementRepositoryFacade
	metalSettlementRepo portsrepo.MetalSettlementRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(repos *portsrepo.RepositoryProvider) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txManager:           repos.TxManager,
		ledgerRepo:          repos.LedgerRepo,
		voucherRepo:         repos.VoucherRepo,
		settlementRepo:      repos.SettlementRepo,
		metalSettlementRepo: repos.MetalSettlementRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateLedger registers a counterparty. The running balances start at the
// opening reference (cash component only, credit starts at zero); GST
// ledgers start and stay at zero.
func (s *ledgerService) CreateLedger(ctx context.Context, tenantID string, req dto.CreateLedgerRequest, creatorUserID string) (*domain.Ledger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	ledgerType := domain.Regular
	if req.LedgerType != "" {
		ledgerType = domain.LedgerType(req.LedgerType)
	}

	ledger := &domain.Ledger{
		LedgerID:   ids.New(),
		TenantID:   tenantID,
		Name:       req.Name,
		Phone:      req.Phone,
		LedgerType: ledgerType,
		OpeningBalance: domain.OpeningBalance{
			Amount:           numeric.DecimalOrZero(req.OpeningAmount),
			GoldFineWeight:   numeric.DecimalOrZero(req.OpeningGold),
			SilverFineWeight: numeric.DecimalOrZero(req.OpeningSilver),
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if ledger.CarriesBalances() {
		ledger.ResetToOpening()
	} else {
		ledger.ResetToZero()
	}

	if err := s.ledgerRepo.SaveLedger(ctx, *ledger); err != nil {
		return nil, err
	}
	logger.Info("Ledger created",
		slog.String("ledger_id", ledger.LedgerID),
		slog.String("type", string(ledger.LedgerType)),
	)
	return ledger, nil
}

// GetLedgerByID retrieves a ledger scoped to the tenant.
func (s *ledgerService) GetLedgerByID(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error) {
	return s.ledgerRepo.FindLedgerByID(ctx, tenantID, ledgerID)
}

// ListLedgers returns all of the tenant's ledgers.
func (s *ledgerService) ListLedgers(ctx context.Context, tenantID string) ([]domain.Ledger, error) {
	return s.ledgerRepo.ListLedgersByTenant(ctx, tenantID)
}

// DeleteLedger removes a ledger. Ledgers that still own any transaction,
// active or not, are refused; purge them first.
func (s *ledgerService) DeleteLedger(ctx context.Context, tenantID, ledgerID string) error {
	if _, err := s.ledgerRepo.FindLedgerByID(ctx, tenantID, ledgerID); err != nil {
		return err
	}

	owned, err := s.countOwnedRecords(ctx, tenantID, ledgerID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return fmt.Errorf("%w: ledger %s still owns %d transactions", apperrors.ErrConflict, ledgerID, owned)
	}
	return s.ledgerRepo.DeleteLedger(ctx, tenantID, ledgerID)
}

func (s *ledgerService) countOwnedRecords(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	vouchers, err := s.voucherRepo.CountVouchersByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return 0, err
	}
	settlements, err := s.settlementRepo.CountSettlementsByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return 0, err
	}
	metalSettlements, err := s.metalSettlementRepo.CountMetalSettlementsByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return 0, err
	}
	return vouchers + settlements + metalSettlements, nil
}

// PurgeLedgerTransactions hard-deletes every record owned by the ledger and
// resets the running balances to the opening reference. Stock is not
// touched: purge discards history, it does not reverse it.
func (s *ledgerService) PurgeLedgerTransactions(ctx context.Context, tenantID, ledgerID, userID string) (*domain.Ledger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	var ledger *domain.Ledger
	err := s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		var err error
		ledger, err = s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}

		vouchers, err := s.voucherRepo.DeleteVouchersByLedger(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}
		settlements, err := s.settlementRepo.DeleteSettlementsByLedger(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}
		metalSettlements, err := s.metalSettlementRepo.DeleteMetalSettlementsByLedger(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}

		if ledger.CarriesBalances() {
			ledger.ResetToOpening()
		} else {
			ledger.ResetToZero()
		}
		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledgerID, ledger.Balances, userID, now); err != nil {
			return err
		}

		logger.Info("Ledger transactions purged",
			slog.String("ledger_id", ledgerID),
			slog.Int64("vouchers", vouchers),
			slog.Int64("settlements", settlements),
			slog.Int64("metal_settlements", metalSettlements),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// balanceEvent is one historical record's effect, ordered by creation time
// for the full replay.
type balanceEvent struct {
	at    time.Time
	delta domain.BalanceDelta
}

// RecomputeLedgerBalances rebuilds the running balances from scratch: reset
// to the opening reference, then replay every still-active record in
// creation order through the same effect table the processor used. Repairs
// drift left behind by window-expired reversals, at the cost of declaring
// the replayed history authoritative.
func (s *ledgerService) RecomputeLedgerBalances(ctx context.Context, tenantID, ledgerID, userID string) (*domain.Ledger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	var ledger *domain.Ledger
	err := s.txManager.WithOptionalAtomicGroup(ctx, func(ctx context.Context) error {
		var err error
		ledger, err = s.ledgerRepo.FindLedgerForUpdate(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}
		if !ledger.CarriesBalances() {
			ledger.ResetToZero()
			return s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledgerID, ledger.Balances, userID, now)
		}

		events, err := s.collectActiveEvents(ctx, tenantID, ledgerID)
		if err != nil {
			return err
		}
		sort.SliceStable(events, func(i, j int) bool { return events[i].at.Before(events[j].at) })

		ledger.ResetToOpening()
		for _, ev := range events {
			ledger.ApplyDelta(ev.delta)
		}

		if err := s.ledgerRepo.UpdateLedgerBalances(ctx, tenantID, ledgerID, ledger.Balances, userID, now); err != nil {
			return err
		}
		logger.Info("Ledger balances recomputed",
			slog.String("ledger_id", ledgerID),
			slog.Int("events", len(events)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) collectActiveEvents(ctx context.Context, tenantID, ledgerID string) ([]balanceEvent, error) {
	var events []balanceEvent

	vouchers, err := s.voucherRepo.ListActiveVouchersByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return nil, err
	}
	for i := range vouchers {
		v := &vouchers[i]
		if v.GSTInvoice {
			continue
		}
		if v.Total.IsZero() {
			v.Total = v.ItemsTotal()
		}
		delta, err := accounting.VoucherBalanceDelta(v)
		if err != nil {
			return nil, fmt.Errorf("voucher %s: %w", v.VoucherID, err)
		}
		events = append(events, balanceEvent{at: v.CreatedAt, delta: delta})
	}

	settlements, err := s.settlementRepo.ListActiveSettlementsByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return nil, err
	}
	for i := range settlements {
		delta, err := accounting.SettlementBalanceDelta(&settlements[i])
		if err != nil {
			return nil, fmt.Errorf("settlement %s: %w", settlements[i].SettlementID, err)
		}
		events = append(events, balanceEvent{at: settlements[i].CreatedAt, delta: delta})
	}

	metalSettlements, err := s.metalSettlementRepo.ListActiveMetalSettlementsByLedger(ctx, tenantID, ledgerID)
	if err != nil {
		return nil, err
	}
	for i := range metalSettlements {
		delta, err := accounting.MetalSettlementBalanceDelta(&metalSettlements[i])
		if err != nil {
			return nil, fmt.Errorf("metal settlement %s: %w", metalSettlements[i].MetalSettlementID, err)
		}
		events = append(events, balanceEvent{at: metalSettlements[i].CreatedAt, delta: delta})
	}

	return events, nil
}
