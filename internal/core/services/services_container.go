package services

import (
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/ports"
	"github.com/bankcore/txn_limit_app/internal/core/ports/providers"
	portsrepo "github.com/bankcore/txn_limit_app/internal/core/ports/repositories"
	portssvc "github.com/bankcore/txn_limit_app/internal/core/ports/services"
)

// NewServiceContainer wires all services from their repository and provider
// dependencies.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	provider providers.RateProvider,
	clk ports.Clock,
	calendar domain.MarketCalendar,
) *portssvc.ServiceContainer {
	rateResolver := NewRateResolutionService(repos.RateRepo, provider, clk, calendar, DefaultPopularCurrencies())
	return &portssvc.ServiceContainer{
		RateResolver: rateResolver,
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.LimitRepo, rateResolver, clk),
		Limit:        NewLimitService(repos.LimitRepo, clk),
	}
}
