package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	Ledger      LedgerSvcFacade
	Stock       StockSvcFacade
	Transaction TransactionSvcFacade
	Reversal    ReversalSvcFacade
	Karigar     KarigarSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
}
