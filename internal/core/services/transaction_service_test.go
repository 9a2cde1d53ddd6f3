package services_test

import (
	"context"
	"testing"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// adjMatch matches a stock adjustment by value, ignoring decimal internals.
func adjMatch(gold, silver string) interface{} {
	return mock.MatchedBy(func(a domain.StockAdjustment) bool {
		return a.Gold.Equal(dec(gold)) && a.Silver.Equal(dec(silver))
	})
}

// balancesMatch matches ledger balances by value.
func balancesMatch(cash, credit, amount, gold, silver string) interface{} {
	return mock.MatchedBy(func(b domain.Balances) bool {
		return b.CashBalance.Equal(dec(cash)) &&
			b.CreditBalance.Equal(dec(credit)) &&
			b.Amount.Equal(dec(amount)) &&
			b.GoldFineWeight.Equal(dec(gold)) &&
			b.SilverFineWeight.Equal(dec(silver))
	})
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo     *MockLedgerRepository
	mockVoucherRepo    *MockVoucherRepository
	mockSettlementRepo *MockSettlementRepository
	mockMetalRepo      *MockMetalSettlementRepository
	mockKarigarRepo    *MockKarigarRepository
	mockSequenceRepo   *MockSequenceRepository
	mockStockSvc       *MockStockService
	txManager          *fakeTxManager
	service            portssvc.TransactionSvcFacade
	tenantID           string
	userID             string
	ledger             domain.Ledger
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockSettlementRepo = new(MockSettlementRepository)
	suite.mockMetalRepo = new(MockMetalSettlementRepository)
	suite.mockKarigarRepo = new(MockKarigarRepository)
	suite.mockSequenceRepo = new(MockSequenceRepository)
	suite.mockStockSvc = new(MockStockService)
	suite.txManager = &fakeTxManager{atomic: true}

	repos := &portsrepo.RepositoryProvider{
		TxManager:           suite.txManager,
		LedgerRepo:          suite.mockLedgerRepo,
		VoucherRepo:         suite.mockVoucherRepo,
		SettlementRepo:      suite.mockSettlementRepo,
		MetalSettlementRepo: suite.mockMetalRepo,
		KarigarRepo:         suite.mockKarigarRepo,
		SequenceRepo:        suite.mockSequenceRepo,
	}
	suite.service = services.NewTransactionService(repos, suite.mockStockSvc)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.ledger = domain.Ledger{
		LedgerID:   uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Sharma Jewellers",
		LedgerType: domain.Regular,
		Balances: domain.Balances{
			CashBalance:      dec("1000"),
			CreditBalance:    dec("200"),
			Amount:           dec("1200"),
			GoldFineWeight:   dec("10"),
			SilverFineWeight: dec("5"),
		},
	}
}

// ledgerCopy returns a fresh copy so a test's service mutation never leaks
// into the suite fixture.
func (suite *TransactionServiceTestSuite) ledgerCopy() *domain.Ledger {
	lg := suite.ledger
	return &lg
}

func (suite *TransactionServiceTestSuite) saleCreditRequest() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		LedgerID:    suite.ledger.LedgerID,
		VoucherType: "SALE",
		PaymentType: "CREDIT",
		Items: []dto.VoucherItemRequest{
			{Name: "Ring", MetalType: "GOLD", FineWeight: decPtr("3"), Amount: decPtr("500")},
		},
		Total: decPtr("500"),
	}
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_SaleCreditAppliesFullEffect() {
	ctx := context.Background()
	req := suite.saleCreditRequest()

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-3", "0"), suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1500", "200", "1700", "13", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSequenceRepo.On("AllocateSequence", ctx, suite.tenantID, "voucher").Return(int64(7), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(int64(7), voucher.VoucherNo)
	suite.Equal(domain.VoucherActive, voucher.Status)
	suite.Require().NotNil(voucher.PreviousLedgerState)
	suite.True(voucher.PreviousLedgerState.CashBalance.Equal(dec("1000")))
	suite.True(voucher.PreviousLedgerState.GoldFineWeight.Equal(dec("10")))
	suite.True(voucher.StockAdjustment.Gold.Equal(dec("-3")))
	suite.True(voucher.StockAdjustment.Silver.IsZero())

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockSequenceRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_SaleCashOnlyMovesUnpaidPart() {
	ctx := context.Background()
	req := suite.saleCreditRequest()
	req.PaymentType = "CASH"
	req.CashReceived = decPtr("200")

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-3", "0"), suite.userID).Return(nil).Once()
	// Cash sales move only (total - cash received); fine weights stay put.
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1300", "200", "1500", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSequenceRepo.On("AllocateSequence", ctx, suite.tenantID, "voucher").Return(int64(8), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_GSTInvoiceSkipsBalances() {
	ctx := context.Background()
	req := suite.saleCreditRequest()
	req.GSTInvoice = true

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-3", "0"), suite.userID).Return(nil).Once()
	suite.mockSequenceRepo.On("AllocateSequence", ctx, suite.tenantID, "voucher").Return(int64(9), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(voucher.PreviousLedgerState)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedgerBalances",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockStockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_InsufficientStockAbortsBeforeLedger() {
	ctx := context.Background()
	req := suite.saleCreditRequest()

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-3", "0"), suite.userID).Return(apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedgerBalances",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_SaveFailureCompensatesWithoutAtomicGroups() {
	ctx := context.Background()
	req := suite.saleCreditRequest()
	suite.txManager.atomic = false

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-3", "0"), suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1500", "200", "1700", "13", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSequenceRepo.On("AllocateSequence", ctx, suite.tenantID, "voucher").Return(int64(10), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(assert.AnError).Once()

	// Compensation re-writes the pre-mutation balances and inverts the
	// stock movement.
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "200", "1200", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("3", "0"), suite.userID).Return(nil).Once()

	_, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_NegativeItemFineRejected() {
	ctx := context.Background()
	req := suite.saleCreditRequest()
	req.Items[0].FineWeight = decPtr("-1")

	_, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedgerByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateVoucher_ZeroTotalSelfHealedFromItems() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		LedgerID:    suite.ledger.LedgerID,
		VoucherType: "SALE",
		PaymentType: "CREDIT",
		Items: []dto.VoucherItemRequest{
			{Name: "Chain", MetalType: "GOLD", FineWeight: decPtr("2"), Amount: decPtr("300")},
			{Name: "Stud", MetalType: "SILVER", FineWeight: decPtr("1"), Amount: decPtr("200")},
		},
		Adjustments: decPtr("50"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-2", "-1"), suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1550", "200", "1750", "12", "6"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSequenceRepo.On("AllocateSequence", ctx, suite.tenantID, "voucher").Return(int64(11), nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(voucher.Total.Equal(dec("550")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateSettlement_AddCashPrefersCashComponent() {
	ctx := context.Background()
	req := dto.CreateSettlementRequest{
		LedgerID: suite.ledger.LedgerID,
		Kind:     "ADD_CASH",
		Amount:   decPtr("400"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("600", "200", "800", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSettlementRepo.On("SaveSettlement", ctx, mock.AnythingOfType("domain.Settlement")).Return(nil).Once()

	settlement, err := suite.service.CreateSettlement(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TargetCash, settlement.Target)
	suite.Require().NotNil(settlement.PreviousLedgerState)
	suite.True(settlement.PreviousLedgerState.CashBalance.Equal(dec("1000")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockSettlementRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateSettlement_AddCashFallsBackToCredit() {
	ctx := context.Background()
	ledger := suite.ledgerCopy()
	ledger.Balances.CashBalance = decimal.Zero
	ledger.Balances.Amount = ledger.Balances.CreditBalance
	locked := *ledger

	req := dto.CreateSettlementRequest{
		LedgerID: suite.ledger.LedgerID,
		Kind:     "ADD_CASH",
		Amount:   decPtr("150"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(ledger, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(&locked, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("0", "50", "50", "10", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockSettlementRepo.On("SaveSettlement", ctx, mock.AnythingOfType("domain.Settlement")).Return(nil).Once()

	settlement, err := suite.service.CreateSettlement(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TargetCredit, settlement.Target)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateSettlement_GSTLedgerRejected() {
	ctx := context.Background()
	ledger := suite.ledgerCopy()
	ledger.LedgerType = domain.GST

	req := dto.CreateSettlementRequest{
		LedgerID: suite.ledger.LedgerID,
		Kind:     "ADD_CASH",
		Amount:   decPtr("100"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(ledger, nil).Once()

	_, err := suite.service.CreateSettlement(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettlementRepo.AssertNotCalled(suite.T(), "SaveSettlement", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateMetalSettlement_PaymentRequiresCoverage() {
	ctx := context.Background()
	ledger := suite.ledgerCopy()
	ledger.Balances.GoldFineWeight = dec("2")
	locked := *ledger

	req := dto.CreateMetalSettlementRequest{
		LedgerID:  suite.ledger.LedgerID,
		Direction: "PAYMENT",
		MetalType: "GOLD",
		Amount:    decPtr("100"),
		FineGiven: decPtr("5"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(ledger, nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(&locked, nil).Once()

	_, err := suite.service.CreateMetalSettlement(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockStockSvc.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMetalRepo.AssertNotCalled(suite.T(), "SaveMetalSettlement", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateMetalSettlement_ReceiptGrowsCreditAndStock() {
	ctx := context.Background()
	req := dto.CreateMetalSettlementRequest{
		LedgerID:  suite.ledger.LedgerID,
		Direction: "RECEIPT",
		MetalType: "GOLD",
		Amount:    decPtr("100"),
		FineGiven: decPtr("5"),
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("FindLedgerForUpdate", ctx, suite.tenantID, suite.ledger.LedgerID).Return(suite.ledgerCopy(), nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("5", "0"), suite.userID).Return(nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalances", ctx, suite.tenantID, suite.ledger.LedgerID,
		balancesMatch("1000", "300", "1300", "15", "5"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockMetalRepo.On("SaveMetalSettlement", ctx, mock.AnythingOfType("domain.MetalSettlement")).Return(nil).Once()

	settlement, err := suite.service.CreateMetalSettlement(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(settlement.StockAdjustment.Gold.Equal(dec("5")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockMetalRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateKarigarTransaction_GivenDeductsStock() {
	ctx := context.Background()
	karigarID := uuid.NewString()
	req := dto.CreateKarigarTransactionRequest{
		KarigarID:  karigarID,
		Direction:  "GIVEN",
		MetalType:  "GOLD",
		FineWeight: decPtr("4"),
	}

	suite.mockKarigarRepo.On("FindKarigarByID", ctx, suite.tenantID, karigarID).Return(&domain.Karigar{KarigarID: karigarID}, nil).Once()
	suite.mockStockSvc.On("EnsureExists", ctx, suite.tenantID, suite.userID).Return(nil).Once()
	suite.mockStockSvc.On("Apply", ctx, suite.tenantID, adjMatch("-4", "0"), suite.userID).Return(nil).Once()
	suite.mockKarigarRepo.On("SaveKarigarTransaction", ctx, mock.AnythingOfType("domain.KarigarTransaction")).Return(nil).Once()

	txn, err := suite.service.CreateKarigarTransaction(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(txn.StockAdjustment.Gold.Equal(dec("-4")))
	suite.mockKarigarRepo.AssertExpectations(suite.T())
	suite.mockStockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateKarigarTransaction_UnknownKarigar() {
	ctx := context.Background()
	karigarID := uuid.NewString()
	req := dto.CreateKarigarTransactionRequest{
		KarigarID:  karigarID,
		Direction:  "GIVEN",
		MetalType:  "GOLD",
		FineWeight: decPtr("4"),
	}

	suite.mockKarigarRepo.On("FindKarigarByID", ctx, suite.tenantID, karigarID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateKarigarTransaction(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStockSvc.AssertNotCalled(suite.T(), "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
