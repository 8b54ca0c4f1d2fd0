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

// reconciliationService matches bank statement lines to journal entries.
type reconciliationService struct {
	statementRepo portsrepo.StatementRepositoryFacade
	entryRepo     portsrepo.JournalEntryReader
	accountRepo   portsrepo.AccountReader
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(statementRepo portsrepo.StatementRepositoryFacade, entryRepo portsrepo.JournalEntryReader, accountRepo portsrepo.AccountReader) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		statementRepo: statementRepo,
		entryRepo:     entryRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// ImportStatementLine stores one bank statement line in the unreconciled pool.
func (s *reconciliationService) ImportStatementLine(ctx context.Context, req dto.ImportStatementLineRequest) (*domain.BankStatementLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: statement amount must be positive, got %d", apperrors.ErrInvalidAmount, req.Amount)
	}

	if _, err := s.accountRepo.FindAccountByCode(ctx, req.AccountCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.UnknownAccountError{Code: req.AccountCode}
		}
		return nil, fmt.Errorf("failed to resolve account %s: %w", req.AccountCode, err)
	}

	line := domain.BankStatementLine{
		LineID:        uuid.NewString(),
		AccountCode:   req.AccountCode,
		StatementDate: req.StatementDate,
		Description:   req.Description,
		Amount:        req.Amount,
		Direction:     req.Direction,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: req.ImportedBy,
		},
	}

	if err := s.statementRepo.SaveStatementLine(ctx, line); err != nil {
		logger.Error("Failed to import statement line",
			slog.String("account_code", req.AccountCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to import statement line: %w", err)
	}

	logger.Info("Statement line imported",
		slog.String("line_id", line.LineID),
		slog.String("account_code", line.AccountCode),
		slog.Int64("amount", line.Amount))
	return &line, nil
}

// Reconcile matches a statement line to a journal entry. The entry's net
// effect on the line's account must equal the line's signed amount exactly.
func (s *reconciliationService) Reconcile(ctx context.Context, lineID string, entryID string) (*domain.BankStatementLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	line, err := s.statementRepo.FindStatementLineByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find statement line %s: %w", lineID, err)
	}
	if line.Reconciled {
		return nil, fmt.Errorf("%w: line %s already matched to entry %s", apperrors.ErrAlreadyReconciled, lineID, line.MatchedEntryID)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	expected := line.SignedAmount()
	actual := entry.NetEffect(line.AccountCode)
	if expected != actual {
		return nil, &apperrors.AmountMismatchError{Expected: expected, Actual: actual}
	}

	if err := s.statementRepo.MarkReconciled(ctx, lineID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyReconciled) {
			return nil, err
		}
		logger.Error("Failed to mark statement line reconciled",
			slog.String("line_id", lineID), slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to reconcile line %s: %w", lineID, err)
	}

	logger.Info("Statement line reconciled",
		slog.String("line_id", lineID), slog.String("entry_id", entryID))

	line.Reconciled = true
	line.MatchedEntryID = entryID
	return line, nil
}

// ListUnreconciled returns unmatched lines, oldest first.
func (s *reconciliationService) ListUnreconciled(ctx context.Context, accountCode string) ([]domain.BankStatementLine, error) {
	lines, err := s.statementRepo.ListUnreconciled(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list unreconciled lines: %w", err)
	}
	return lines, nil
}
