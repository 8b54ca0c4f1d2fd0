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

// PostingConfig names the control accounts the engine posts to when issuing
// invoices and recording payments.
type PostingConfig struct {
	ReceivableAccountCode string // Debited on issue, credited on payment
	RevenueAccountCode    string // Credited on issue
}

// invoiceService owns the invoice state machine and its ledger linkage.
type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	paymentRepo  portsrepo.PaymentReader
	accountRepo  portsrepo.AccountReader
	referenceSvc portssvc.ReferenceSvcFacade
	posting      PostingConfig
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentReader, accountRepo portsrepo.AccountReader, referenceSvc portssvc.ReferenceSvcFacade, posting PostingConfig) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		accountRepo:  accountRepo,
		referenceSvc: referenceSvc,
		posting:      posting,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice allocates a reference and creates the invoice in Draft,
// issuing it in the same logical operation when requested. Issue-time
// validation runs before anything durable is written, so a failed
// create-and-issue call leaves no invoice behind and is safe to retry.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: invoice total must be positive, got %d", apperrors.ErrInvalidAmount, req.TotalAmount)
	}

	if req.PostToLedger {
		if err := s.checkPostingAccounts(ctx); err != nil {
			return nil, err
		}
	}

	reference, err := s.referenceSvc.Allocate(ctx, domain.KindInvoice, req.IssueDate)
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		Reference:   reference,
		SubjectRef:  req.SubjectRef,
		IssueDate:   req.IssueDate,
		DueDate:     req.DueDate,
		TotalAmount: req.TotalAmount,
		Status:      domain.InvoiceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: req.CreatedBy,
		},
	}

	var entry domain.JournalEntry
	if req.PostToLedger {
		entryRef, err := s.referenceSvc.Allocate(ctx, domain.KindJournalEntry, req.IssueDate)
		if err != nil {
			return nil, err
		}
		entry = s.buildIssueEntry(invoice, entryRef, req.CreatedBy)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("reference", reference), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("reference", reference))

	if !req.PostToLedger {
		return &invoice, nil
	}

	issued, err := s.invoiceRepo.MarkIssued(ctx, invoice.InvoiceID, entry)
	if err != nil {
		// The ledger post failed after creation; the invoice stays Draft and
		// the caller can retry issue.
		logger.Error("Failed to issue invoice", slog.String("invoice_id", invoice.InvoiceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue invoice %s: %w", invoice.InvoiceID, err)
	}

	logger.Info("Invoice issued",
		slog.String("invoice_id", issued.InvoiceID),
		slog.String("entry_id", issued.PostedEntryID),
		slog.Int64("total_amount", issued.TotalAmount))
	return issued, nil
}

// Issue transitions a Draft invoice to Issued. The ledger post and the status
// change commit as one unit; on failure the invoice remains Draft.
func (s *invoiceService) Issue(ctx context.Context, invoiceID string, performedBy string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	if invoice.Status != domain.InvoiceDraft {
		return nil, &apperrors.InvalidTransitionError{From: string(invoice.Status), To: string(domain.InvoiceIssued)}
	}

	if err := s.checkPostingAccounts(ctx); err != nil {
		return nil, err
	}

	entryRef, err := s.referenceSvc.Allocate(ctx, domain.KindJournalEntry, invoice.IssueDate)
	if err != nil {
		return nil, err
	}

	entry := s.buildIssueEntry(*invoice, entryRef, performedBy)

	issued, err := s.invoiceRepo.MarkIssued(ctx, invoice.InvoiceID, entry)
	if err != nil {
		logger.Error("Failed to issue invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to issue invoice %s: %w", invoiceID, err)
	}

	logger.Info("Invoice issued",
		slog.String("invoice_id", issued.InvoiceID),
		slog.String("entry_id", issued.PostedEntryID),
		slog.Int64("total_amount", issued.TotalAmount))
	return issued, nil
}

// buildIssueEntry builds the receivable/revenue entry posted when an invoice
// is issued.
func (s *invoiceService) buildIssueEntry(invoice domain.Invoice, entryRef string, performedBy string) domain.JournalEntry {
	entryID := uuid.NewString()
	return domain.JournalEntry{
		EntryID:     entryID,
		JournalCode: domain.JournalSales,
		Reference:   entryRef,
		EntryDate:   invoice.IssueDate,
		Narration:   fmt.Sprintf("Invoice %s issued to %s", invoice.Reference, invoice.SubjectRef),
		Lines: []domain.JournalEntryLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: s.posting.ReceivableAccountCode, Debit: invoice.TotalAmount},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: s.posting.RevenueAccountCode, Credit: invoice.TotalAmount},
		},
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: performedBy,
		},
	}
}

// checkPostingAccounts verifies the configured control accounts exist.
func (s *invoiceService) checkPostingAccounts(ctx context.Context) error {
	codes := []string{s.posting.ReceivableAccountCode, s.posting.RevenueAccountCode}
	accountsMap, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to fetch posting accounts: %w", err)
	}
	for _, code := range codes {
		if _, found := accountsMap[code]; !found {
			return &apperrors.UnknownAccountError{Code: code}
		}
	}
	return nil
}

// GetInvoice retrieves an invoice and its recorded payments.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, []domain.Payment, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	payments, err := s.paymentRepo.ListPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments for invoice %s: %w", invoiceID, err)
	}

	return invoice, payments, nil
}
