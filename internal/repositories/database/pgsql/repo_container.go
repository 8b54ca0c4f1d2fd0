package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	referenceRepo := newPgxReferenceRepository(dbPool)

	invoiceRepo := newPgxInvoiceRepository(dbPool, journalRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, journalRepo)

	statementRepo := newPgxStatementRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		JournalRepo:   journalRepo,
		ReferenceRepo: referenceRepo,
		InvoiceRepo:   invoiceRepo,
		PaymentRepo:   paymentRepo,
		StatementRepo: statementRepo,
		ReportingRepo: reportingRepo,
	}
}
