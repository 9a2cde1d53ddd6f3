package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testWindowHours = 48

func TestIsReversible_BoundaryIsInclusive(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if !services.IsReversible(createdAt, createdAt.Add(47*time.Hour), testWindowHours) {
		t.Error("expected a 47h old record to be reversible")
	}
	if !services.IsReversible(createdAt, createdAt.Add(48*time.Hour), testWindowHours) {
		t.Error("expected a record at exactly the window boundary to be reversible")
	}
	if services.IsReversible(createdAt, createdAt.Add(48*time.Hour+time.Second), testWindowHours) {
		t.Error("expected a record past the window to not be reversible")
	}
}

type ReversalServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo     *MockLedgerRepository
	mockVoucherRepo    *MockVoucherRepository
	mockSettlementRepo *MockSettlementRepository
	mockMetalRepo      *MockMetalSettlementRepository
	mockKarigarRepo    *MockKarigarRepository
	mockStockSvc       *MockStockService
	txManager          *fakeTxManager
	service            portssvc.ReversalSvcFacade
	tenantID           string
	userID             string
	ledger             domain.Ledger
	snapshot           domain.Balances
}

func (suite *ReversalServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockSettlementRepo = new(MockSettlementRepository)
	suite.mockMetalRepo = new(MockMetalSettlementRepository)
	suite.mockKarigarRepo = new(MockKarigarRepository)
	suite.mockStockSvc = new(MockStockService)
	suite.txManager = &fakeTxManager{atomic: true}

	repos := &portsrepo.RepositoryProvider{
		TxManager:           suite.txManager,
		LedgerRepo:          suite.mockLedgerRepo,
		VoucherRepo:         suite.mockVoucherRepo,
		SettlementRepo:      suite.mockSettlementRepo,
		MetalSettlementRepo: suite.mockMetalRepo,
		KarigarRepo:         suite.mockKarigarRepo,
	}
	suite.service = services.NewReversalService(repos, suite.mockStockSvc, testWindowHours)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()

	// Balances as they were before the voucher under test was applied.
	suite.snapshot = domain.Balances{
		CashBalance:      dec("1000"),
		CreditBalance:    dec("200"),
		Amount:           dec("1200"),
		GoldFineWeight:   dec("10"),
		SilverFineWeight: dec("5"),
	}

	// Current drifted balances, after the voucher's effect.
	suite.ledger = domain.Ledger{
		LedgerID:   uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Sharma Jewellers",
		LedgerType: domain.Regular,
		Balances: domain.Balances{
			CashBalance:      dec("1500"),
			CreditBalance:    dec("200"),
			Amount:           dec("1700"),
			GoldFineWeight:   dec("13"),
			SilverFineWeight: dec("5"),
		},
	}
}

func (suite *ReversalServiceTestSuite) ledgerCopy() *domain.Ledger {
	lg := suite.ledger
	return &lg
}

// activeVoucher builds a sale/credit voucher carrying a snapshot and a
// recorded stock deduction, created at the given age before now.
func (suite *ReversalServiceTestSuite) activeVoucher(age time.Duration) *domain.Voucher {
	snapshot := suite.snapshot
	return &domain.Voucher{
		VoucherID:           uuid.NewString(),
		TenantID:            suite.tenantID,
		LedgerID:            suite.ledger.LedgerID,
		VoucherNo:           7,
		VoucherType:         domain.Sale,
		PaymentType:         domain.PaymentCredit,
		Items:               []domain.VoucherItem{{Name: "Ring", MetalType: domain.Gold, FineWeight: dec("3"), Amount: dec("500")}},
		Total:               dec("500"),
		Status:              domain.VoucherActive,
		PreviousLedgerState: &snapshot,
		StockAdjustment:     domain.StockAdjustment{Gold: dec("-3")},
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC().Add(-age),
		},
	}
}

func (suite *ReversalServiceTestSuite) TestCancelVoucher_RestoresSnapshotAndStock() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	// Snapshot restore puts the balances back verbatim.
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("3", "0"), suite.userID).Return(nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Status == domain.VoucherCancelled && v.StockRestored
	})).Return(nil).Once()

	result, err := suite.service.CancelVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.Equal("CANCELLED", result.Status)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestCancelVoucher_AlreadyCancelled() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)
	voucher.Status = domain.VoucherCancelled

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()

	_, err := suite.service.CancelVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedgerForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestCancelVoucher_WindowExpiredDeactivatesOnly() {
	ctx := context.Background()
	voucher := suite.activeVoucher(49 * time.Hour)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.tenantID, voucher.VoucherID,
		domain.VoucherCancelled, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.CancelVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.False(result.Reversed)
	suite.NotEmpty(result.Message)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedgerBalances",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockStockSvc.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestDeleteVoucher_WindowExpiredRemovesRowOnly() {
	ctx := context.Background()
	voucher := suite.activeVoucher(50 * time.Hour)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("DeleteVoucher", ctx, suite.tenantID, voucher.VoucherID).Return(nil).Once()

	result, err := suite.service.DeleteVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.False(result.Reversed)
	suite.Equal("DELETED", result.Status)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedgerBalances",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestDeleteVoucher_AlreadyCancelledSkipsEffectReversal() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)
	voucher.Status = domain.VoucherCancelled
	voucher.StockRestored = true

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("DeleteVoucher", ctx, suite.tenantID, voucher.VoucherID).Return(nil).Once()

	result, err := suite.service.DeleteVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedgerForUpdate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockStockSvc.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestCancelVoucher_LegacyRecordUsesArithmeticInverse() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)
	voucher.PreviousLedgerState = nil

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	// Arithmetic inverse of sale/credit: cash -= total, gold fine -= items'.
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("3", "0"), suite.userID).Return(nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	result, err := suite.service.CancelVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestCancelVoucher_GSTLeavesBalancesUntouched() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)
	voucher.GSTInvoice = true
	voucher.PreviousLedgerState = nil

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	// A GST voucher never had a balance effect; the write carries the
	// current balances unchanged rather than a legacy inverse.
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1500", "200", "1700", "13", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("3", "0"), suite.userID).Return(nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	result, err := suite.service.CancelVoucher(ctx, suite.tenantID, voucher.VoucherID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestUpdateVoucher_RejectsLedgerMove() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)

	req := dto.CreateVoucherRequest{
		LedgerID:    uuid.NewString(),
		VoucherType: "SALE",
		PaymentType: "CREDIT",
		Items:       []dto.VoucherItemRequest{{Name: "Ring", MetalType: "GOLD", FineWeight: decPtr("3")}},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()

	_, err := suite.service.UpdateVoucher(ctx, suite.tenantID, voucher.VoucherID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReversalServiceTestSuite) TestUpdateVoucher_RejectedPastWindow() {
	ctx := context.Background()
	voucher := suite.activeVoucher(49 * time.Hour)

	req := dto.CreateVoucherRequest{
		LedgerID:    voucher.LedgerID,
		VoucherType: "SALE",
		PaymentType: "CREDIT",
		Items:       []dto.VoucherItemRequest{{Name: "Ring", MetalType: "GOLD", FineWeight: decPtr("3")}},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()

	_, err := suite.service.UpdateVoucher(ctx, suite.tenantID, voucher.VoucherID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrWindowExpired)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucher", mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestUpdateVoucher_ReversesThenReapplies() {
	ctx := context.Background()
	voucher := suite.activeVoucher(time.Hour)

	// Replacement halves the sale: total 250, fine 1.5.
	req := dto.CreateVoucherRequest{
		LedgerID:    voucher.LedgerID,
		VoucherType: "SALE",
		PaymentType: "CREDIT",
		Items:       []dto.VoucherItemRequest{{Name: "Ring", MetalType: "GOLD", FineWeight: decPtr("1.5"), Amount: decPtr("250")}},
		Total:       decPtr("250"),
	}

	// Ledger state after the reversal half of the edit.
	restored := suite.ledger
	restored.Balances = suite.snapshot

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.tenantID, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, voucher.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, voucher.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("3", "0"), suite.userID).Return(nil).Once()

	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, voucher.LedgerID).Return(&restored, nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-1.5", "0"), suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, voucher.LedgerID,
		balancesMatch("1250", "200", "1450", "11.5", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.VoucherID == voucher.VoucherID && v.VoucherNo == voucher.VoucherNo && v.Total.Equal(dec("250"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateVoucher(ctx, suite.tenantID, voucher.VoucherID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(voucher.VoucherID, updated.VoucherID)
	suite.Equal(voucher.VoucherNo, updated.VoucherNo)
	suite.Require().NotNil(updated.PreviousLedgerState)
	suite.True(updated.PreviousLedgerState.CashBalance.Equal(dec("1000")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestDeleteSettlement_RestoresSnapshot() {
	ctx := context.Background()
	snapshot := suite.snapshot
	settlement := &domain.Settlement{
		SettlementID:        uuid.NewString(),
		TenantID:            suite.tenantID,
		LedgerID:            suite.ledger.LedgerID,
		Kind:                domain.AddCash,
		Amount:              dec("400"),
		Target:              domain.TargetCash,
		PreviousLedgerState: &snapshot,
		AuditFields:         domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockSettlementRepo.On("FindSettlementByID", ctx, suite.tenantID, settlement.SettlementID).Return(settlement, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSettlementRepo.On("MarkSettlementDeleted", ctx, suite.tenantID, settlement.SettlementID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.DeleteSettlement(ctx, suite.tenantID, settlement.SettlementID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockSettlementRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestDeleteMetalSettlement_RestoresBalancesAndStock() {
	ctx := context.Background()
	snapshot := suite.snapshot
	settlement := &domain.MetalSettlement{
		MetalSettlementID:   uuid.NewString(),
		TenantID:            suite.tenantID,
		LedgerID:            suite.ledger.LedgerID,
		Direction:           domain.Payment,
		MetalType:           domain.Gold,
		Amount:              dec("100"),
		FineGiven:           dec("5"),
		PreviousLedgerState: &snapshot,
		StockAdjustment:     domain.StockAdjustment{Gold: dec("-5")},
		AuditFields:         domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockMetalRepo.On("FindMetalSettlementByID", ctx, suite.tenantID, settlement.MetalSettlementID).Return(settlement, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("5", "0"), suite.userID).Return(nil).Once()
	suite.mockMetalRepo.On("MarkMetalSettlementStockRestored", ctx, suite.tenantID, settlement.MetalSettlementID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockMetalRepo.On("MarkMetalSettlementDeleted", ctx, suite.tenantID, settlement.MetalSettlementID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.DeleteMetalSettlement(ctx, suite.tenantID, settlement.MetalSettlementID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockMetalRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestDeleteKarigarTransaction_RestoresStockOnly() {
	ctx := context.Background()
	txn := &domain.KarigarTransaction{
		TransactionID:   uuid.NewString(),
		TenantID:        suite.tenantID,
		KarigarID:       uuid.NewString(),
		Direction:       domain.Given,
		MetalType:       domain.Gold,
		FineWeight:      dec("4"),
		StockAdjustment: domain.StockAdjustment{Gold: dec("-4")},
		AuditFields:     domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockKarigarRepo.On("FindKarigarTransactionByID", ctx, suite.tenantID, txn.TransactionID).Return(txn, nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("4", "0"), suite.userID).Return(nil).Once()
	suite.mockKarigarRepo.On("MarkKarigarTransactionStockRestored", ctx, suite.tenantID, txn.TransactionID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockKarigarRepo.On("MarkKarigarTransactionDeleted", ctx, suite.tenantID, txn.TransactionID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.DeleteKarigarTransaction(ctx, suite.tenantID, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.Reversed)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedgerForUpdate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockKarigarRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestDeleteKarigarTransaction_AlreadyDeleted() {
	ctx := context.Background()
	txn := &domain.KarigarTransaction{
		TransactionID: uuid.NewString(),
		TenantID:      suite.tenantID,
		IsDeleted:     true,
		AuditFields:   domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockKarigarRepo.On("FindKarigarTransactionByID", ctx, suite.tenantID, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.DeleteKarigarTransaction(ctx, suite.tenantID, txn.TransactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
}

func TestReversalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReversalServiceTestSuite))
}
