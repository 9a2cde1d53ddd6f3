package repositories

// RepositoryProvider bundles every repository implementation plus the
// transaction capability strategy, wired once at startup.
type RepositoryProvider struct {
	TxManager            TxManager
	LedgerRepo           LedgerRepositoryFacade
	StockRepo            StockRepositoryFacade
	VoucherRepo          VoucherRepositoryFacade
	SettlementRepo       SettlementRepositoryFacade
	MetalSettlementRepo  MetalSettlementRepositoryFacade
	KarigarRepo          KarigarRepositoryFacade
	SequenceRepo         SequenceRepositoryFacade
	UserRepo             UserRepositoryFacade
}
