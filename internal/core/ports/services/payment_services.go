package services

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/dto"
)

// PaymentSvcFacade records payments, posts the corresponding ledger entry,
// and issues receipts.
type PaymentSvcFacade interface {
	// RecordPayment validates and records a payment against an issued
	// invoice. The payment, its ledger entry, its receipt, and the invoice
	// status change commit as one transaction; artifact rendering happens
	// afterwards, best-effort.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)

	// RegenerateReceipt re-renders the artifact for an existing receipt
	// without touching ledger state. Idempotent.
	RegenerateReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error)
}

// ReceiptArtifactRenderer is the external artifact generator boundary. Render
// failures are non-fatal to the caller's operation.
type ReceiptArtifactRenderer interface {
	// Render produces a receipt document and returns its artifact path.
	Render(ctx context.Context, receipt domain.Receipt, payment domain.Payment, invoice domain.Invoice) (string, error)
}
