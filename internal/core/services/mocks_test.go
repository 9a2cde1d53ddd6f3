package services_test

import (
	"context"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Fake TxManager ---

// fakeTxManager runs the group body directly. atomic controls what
// SupportsAtomicGroups reports, which decides whether compensation runs on
// failure.
type fakeTxManager struct {
	atomic bool
}

var _ portsrepo.TxManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) SupportsAtomicGroups() bool {
	return f.atomic
}

func (f *fakeTxManager) WithOptionalAtomicGroup(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgerForUpdate(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgersByTenant(ctx context.Context, tenantID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) UpdateLedgerBalances(ctx context.Context, tenantID, ledgerID string, balances domain.Balances, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, ledgerID, balances, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteLedger(ctx context.Context, tenantID, ledgerID string) error {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Error(0)
}

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, tenantID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, tenantID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, voucherID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, tenantID, voucherID string) error {
	args := m.Called(ctx, tenantID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) MarkVoucherStockRestored(ctx context.Context, tenantID, voucherID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, voucherID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) ListActiveVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) CountVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoucherRepository) DeleteVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SettlementRepository ---

type MockSettlementRepository struct {
	mock.Mock
}

var _ portsrepo.SettlementRepositoryFacade = (*MockSettlementRepository)(nil)

func (m *MockSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) FindSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.Settlement, error) {
	args := m.Called(ctx, tenantID, settlementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) MarkSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, settlementID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockSettlementRepository) ListActiveSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Settlement, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) CountSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementRepository) DeleteSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock MetalSettlementRepository ---

type MockMetalSettlementRepository struct {
	mock.Mock
}

var _ portsrepo.MetalSettlementRepositoryFacade = (*MockMetalSettlementRepository)(nil)

func (m *MockMetalSettlementRepository) SaveMetalSettlement(ctx context.Context, settlement domain.MetalSettlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockMetalSettlementRepository) FindMetalSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.MetalSettlement, error) {
	args := m.Called(ctx, tenantID, settlementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalSettlement), args.Error(1)
}

func (m *MockMetalSettlementRepository) MarkMetalSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, settlementID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockMetalSettlementRepository) MarkMetalSettlementStockRestored(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, settlementID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockMetalSettlementRepository) ListActiveMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.MetalSettlement, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetalSettlement), args.Error(1)
}

func (m *MockMetalSettlementRepository) CountMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMetalSettlementRepository) DeleteMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	args := m.Called(ctx, tenantID, ledgerID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock KarigarRepository ---

type MockKarigarRepository struct {
	mock.Mock
}

var _ portsrepo.KarigarRepositoryFacade = (*MockKarigarRepository)(nil)

func (m *MockKarigarRepository) SaveKarigar(ctx context.Context, karigar domain.Karigar) error {
	args := m.Called(ctx, karigar)
	return args.Error(0)
}

func (m *MockKarigarRepository) FindKarigarByID(ctx context.Context, tenantID, karigarID string) (*domain.Karigar, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Karigar), args.Error(1)
}

func (m *MockKarigarRepository) ListKarigarsByTenant(ctx context.Context, tenantID string) ([]domain.Karigar, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Karigar), args.Error(1)
}

func (m *MockKarigarRepository) SaveKarigarTransaction(ctx context.Context, txn domain.KarigarTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockKarigarRepository) FindKarigarTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.KarigarTransaction, error) {
	args := m.Called(ctx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KarigarTransaction), args.Error(1)
}

func (m *MockKarigarRepository) MarkKarigarTransactionDeleted(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, transactionID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockKarigarRepository) MarkKarigarTransactionStockRestored(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, transactionID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockKarigarRepository) ListKarigarTransactions(ctx context.Context, tenantID, karigarID string) ([]domain.KarigarTransaction, error) {
	args := m.Called(ctx, tenantID, karigarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KarigarTransaction), args.Error(1)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepositoryFacade = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) AllocateSequence(ctx context.Context, tenantID, name string) (int64, error) {
	args := m.Called(ctx, tenantID, name)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock StockRepository ---

type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepositoryFacade = (*MockStockRepository)(nil)

func (m *MockStockRepository) EnsureStock(ctx context.Context, tenantID, createdBy string) error {
	args := m.Called(ctx, tenantID, createdBy)
	return args.Error(0)
}

func (m *MockStockRepository) FindStockByTenant(ctx context.Context, tenantID string) (*domain.Stock, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) AdjustMetals(ctx context.Context, tenantID string, adj domain.StockAdjustment, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, adj, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockStockRepository) AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tenantID, goldRate, silverRate, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock StockService ---

type MockStockService struct {
	mock.Mock
}

var _ portssvc.StockSvcFacade = (*MockStockService)(nil)

func (m *MockStockService) EnsureExists(ctx context.Context, tenantID, userID string) error {
	args := m.Called(ctx, tenantID, userID)
	return args.Error(0)
}

func (m *MockStockService) GetStock(ctx context.Context, tenantID string) (*domain.Stock, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockService) Deduct(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error {
	args := m.Called(ctx, tenantID, gold, silver, userID)
	return args.Error(0)
}

func (m *MockStockService) Restore(ctx context.Context, tenantID string, gold, silver decimal.Decimal, userID string) error {
	args := m.Called(ctx, tenantID, gold, silver, userID)
	return args.Error(0)
}

func (m *MockStockService) Apply(ctx context.Context, tenantID string, adj domain.StockAdjustment, userID string) error {
	args := m.Called(ctx, tenantID, adj, userID)
	return args.Error(0)
}

func (m *MockStockService) AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, userID string) error {
	args := m.Called(ctx, tenantID, delta, userID)
	return args.Error(0)
}

func (m *MockStockService) UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, userID string) (*domain.Stock, error) {
	args := m.Called(ctx, tenantID, goldRate, silverRate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}
