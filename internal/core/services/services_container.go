package services

import (
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Stock first since the transaction and reversal services route every
	// stock mutation through it.
	container.Stock = NewStockService(repos.StockRepo)

	container.Ledger = NewLedgerService(repos)
	container.Transaction = NewTransactionService(repos, container.Stock)
	container.Reversal = NewReversalService(repos, container.Stock, cfg.ReversalWindowHours)
	container.Karigar = NewKarigarService(repos)
	container.User = NewUserService(repos)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
