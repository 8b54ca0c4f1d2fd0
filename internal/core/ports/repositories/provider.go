package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalEntryRepositoryFacade
	ReferenceRepo ReferenceCounterRepository
	InvoiceRepo   InvoiceRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	StatementRepo StatementRepositoryFacade
	ReportingRepo ReportingRepository
}
