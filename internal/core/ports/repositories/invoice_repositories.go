package repositories

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice. Returns
	// apperrors.ErrDuplicateReference if the reference is taken.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// MarkIssued posts the given ledger entry and flips the invoice from
	// Draft to Issued in one transaction. If the post fails, the invoice
	// stays Draft. Returns the invoice as issued.
	MarkIssued(ctx context.Context, invoiceID string, entry domain.JournalEntry) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
