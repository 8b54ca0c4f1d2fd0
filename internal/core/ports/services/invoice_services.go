package services

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/dto"
)

// InvoiceSvcFacade owns the invoice state machine and its ledger linkage.
type InvoiceSvcFacade interface {
	// CreateInvoice allocates a reference and creates the invoice in Draft.
	// When req.PostToLedger is set, issuance happens in the same logical
	// operation.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// Issue transitions a Draft invoice to Issued, posting the
	// receivable/revenue entry atomically with the status change.
	Issue(ctx context.Context, invoiceID string, performedBy string) (*domain.Invoice, error)

	// GetInvoice retrieves an invoice and its recorded payments.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, []domain.Payment, error)
}
