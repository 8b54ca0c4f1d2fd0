package repositories

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// PaymentRecord is the unit created by one recorded payment: the payment, its
// receipt, its ledger entry, and the invoice as updated.
type PaymentRecord struct {
	Payment domain.Payment
	Receipt domain.Receipt
	Entry   domain.JournalEntry
	Invoice domain.Invoice
}

// PaymentReader defines read operations for payments and receipts.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindReceiptByPaymentID retrieves the receipt paired with a payment.
	FindReceiptByPaymentID(ctx context.Context, paymentID string) (*domain.Receipt, error)

	// ListPaymentsByInvoiceID retrieves all payments recorded against an
	// invoice, oldest first.
	ListPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments and receipts.
type PaymentWriter interface {
	// CreatePaymentAtomic records a payment in one transaction: it locks the
	// invoice row, recomputes the outstanding balance under the lock, inserts
	// the payment, posts the ledger entry, creates the receipt, and updates
	// the invoice status. Nothing is persisted on any failure. Returns
	// apperrors.ErrInvalidState for Draft invoices and
	// *apperrors.OverpaymentError when the amount exceeds outstanding.
	CreatePaymentAtomic(ctx context.Context, payment domain.Payment, receipt domain.Receipt, entry domain.JournalEntry) (*PaymentRecord, error)

	// SetReceiptArtifactPath attaches a rendered artifact path to a receipt.
	// Ledger state is untouched.
	SetReceiptArtifactPath(ctx context.Context, receiptID string, artifactPath string) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
