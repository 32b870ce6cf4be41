package services

// ServiceContainer holds all the service interfaces needed by the HTTP layer.
type ServiceContainer struct {
	RateResolver RateResolverSvcFacade
	Transaction  TransactionSvcFacade
	Limit        LimitSvcFacade
}
