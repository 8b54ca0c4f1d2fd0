package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// paymentService coordinates payments, their ledger entries, and receipts.
type paymentService struct {
	invoiceRepo  portsrepo.InvoiceReader
	paymentRepo  portsrepo.PaymentRepositoryFacade
	accountRepo  portsrepo.AccountReader
	referenceSvc portssvc.ReferenceSvcFacade
	renderer     portssvc.ReceiptArtifactRenderer
	posting      PostingConfig
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(invoiceRepo portsrepo.InvoiceReader, paymentRepo portsrepo.PaymentRepositoryFacade, accountRepo portsrepo.AccountReader, referenceSvc portssvc.ReferenceSvcFacade, renderer portssvc.ReceiptArtifactRenderer, posting PostingConfig) portssvc.PaymentSvcFacade {
	return &paymentService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		accountRepo:  accountRepo,
		referenceSvc: referenceSvc,
		renderer:     renderer,
		posting:      posting,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records a payment against an issued invoice. The payment, its
// ledger entry, its receipt, and the invoice status change commit as one
// transaction; the repository re-validates outstanding under the invoice row
// lock so concurrent payments serialize correctly.
func (s *paymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	if invoice.Status == domain.InvoiceDraft {
		return nil, fmt.Errorf("%w: cannot pay a draft invoice", apperrors.ErrInvalidState)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %d", apperrors.ErrInvalidAmount, req.Amount)
	}
	if outstanding := invoice.Outstanding(); req.Amount > outstanding {
		return nil, &apperrors.OverpaymentError{Outstanding: outstanding, Attempted: req.Amount}
	}

	if err := s.checkSettlementAccount(ctx, req.SettlementAccountCode); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paymentRef, err := s.referenceSvc.Allocate(ctx, domain.KindPayment, now)
	if err != nil {
		return nil, err
	}
	receiptRef, err := s.referenceSvc.Allocate(ctx, domain.KindReceipt, now)
	if err != nil {
		return nil, err
	}
	entryRef, err := s.referenceSvc.Allocate(ctx, domain.KindJournalEntry, now)
	if err != nil {
		return nil, err
	}

	paymentID := uuid.NewString()
	entryID := uuid.NewString()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: req.PerformedBy}

	payment := domain.Payment{
		PaymentID:             paymentID,
		InvoiceID:             invoice.InvoiceID,
		Reference:             paymentRef,
		PaymentDate:           now,
		Amount:                req.Amount,
		Method:                req.Method,
		SettlementAccountCode: req.SettlementAccountCode,
		ReceivedBy:            req.PerformedBy,
		ExternalReference:     req.ExternalReference,
		EntryID:               entryID,
		AuditFields:           audit,
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		JournalCode: domain.JournalCashReceipts,
		Reference:   entryRef,
		EntryDate:   now,
		Narration:   fmt.Sprintf("Payment %s against invoice %s", paymentRef, invoice.Reference),
		Lines: []domain.JournalEntryLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: req.SettlementAccountCode, Debit: req.Amount},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: s.posting.ReceivableAccountCode, Credit: req.Amount},
		},
		AuditFields: audit,
	}

	receipt := domain.Receipt{
		ReceiptID:   uuid.NewString(),
		PaymentID:   paymentID,
		Reference:   receiptRef,
		ReceiptDate: now,
		Amount:      req.Amount,
		Method:      req.Method,
		IssuedBy:    req.PerformedBy,
		IssuedTo:    invoice.SubjectRef,
		AuditFields: audit,
	}

	record, err := s.paymentRepo.CreatePaymentAtomic(ctx, payment, receipt, entry)
	if err != nil {
		logger.Error("Failed to record payment",
			slog.String("invoice_id", invoiceID),
			slog.Int64("amount", req.Amount),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", record.Payment.PaymentID),
		slog.String("receipt_reference", record.Receipt.Reference),
		slog.String("invoice_status", string(record.Invoice.Status)))

	// Artifact rendering is best-effort and outside the transactional
	// boundary; failure never surfaces to the caller.
	s.renderArtifact(ctx, record.Receipt, record.Payment, record.Invoice)

	return &dto.RecordPaymentResponse{
		PaymentID:        record.Payment.PaymentID,
		PaymentReference: record.Payment.Reference,
		ReceiptID:        record.Receipt.ReceiptID,
		ReceiptReference: record.Receipt.Reference,
		EntryID:          record.Entry.EntryID,
		InvoiceStatus:    string(record.Invoice.Status),
		Outstanding:      record.Invoice.Outstanding(),
	}, nil
}

// checkSettlementAccount verifies the settlement account exists and is
// active.
func (s *paymentService) checkSettlementAccount(ctx context.Context, code string) error {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &apperrors.UnknownAccountError{Code: code}
		}
		return fmt.Errorf("failed to resolve settlement account %s: %w", code, err)
	}
	if !account.IsActive {
		return fmt.Errorf("%w: settlement account %s", ErrInactiveAccount, code)
	}
	return nil
}

// renderArtifact invokes the external generator and attaches the artifact
// path when it succeeds. Errors are logged and swallowed.
func (s *paymentService) renderArtifact(ctx context.Context, receipt domain.Receipt, payment domain.Payment, invoice domain.Invoice) {
	logger := middleware.GetLoggerFromCtx(ctx)

	artifactPath, err := s.renderer.Render(ctx, receipt, payment, invoice)
	if err != nil {
		logger.Warn("Receipt artifact generation failed",
			slog.String("receipt_id", receipt.ReceiptID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.paymentRepo.SetReceiptArtifactPath(ctx, receipt.ReceiptID, artifactPath); err != nil {
		logger.Warn("Failed to attach receipt artifact path",
			slog.String("receipt_id", receipt.ReceiptID),
			slog.String("artifact_path", artifactPath),
			slog.String("error", err.Error()))
	}
}

// RegenerateReceipt re-renders the artifact for an existing receipt without
// touching ledger state.
func (s *paymentService) RegenerateReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	receipt, err := s.paymentRepo.FindReceiptByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt for payment %s: %w", paymentID, err)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, payment.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", payment.InvoiceID, err)
	}

	artifactPath, err := s.renderer.Render(ctx, *receipt, *payment, *invoice)
	if err != nil {
		return nil, fmt.Errorf("artifact generation failed for receipt %s: %w", receipt.ReceiptID, err)
	}

	if err := s.paymentRepo.SetReceiptArtifactPath(ctx, receipt.ReceiptID, artifactPath); err != nil {
		return nil, fmt.Errorf("failed to attach artifact path: %w", err)
	}

	receipt.ArtifactPath = artifactPath
	return receipt, nil
}
