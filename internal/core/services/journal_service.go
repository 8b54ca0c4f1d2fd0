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
	"github.com/opsledger/ledgerd/internal/utils/accounting"
)

var (
	// ErrInactiveAccount rejects lines against accounts flagged inactive.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrInvalidRange rejects queries where dateFrom is after dateTo.
	ErrInvalidRange = errors.New("dateFrom must not be after dateTo")
)

// journalService provides the journal entry store operations.
type journalService struct {
	entryRepo    portsrepo.JournalEntryRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	referenceSvc portssvc.ReferenceSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(entryRepo portsrepo.JournalEntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, referenceSvc portssvc.ReferenceSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		referenceSvc: referenceSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates and persists a balanced entry. Every check runs before
// any durable write; failures leave no side effects.
func (s *journalService) PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entryID := uuid.NewString()
	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: lineReq.AccountCode,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
		}
	}

	// Structural checks: line shape and exact integer balance.
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}

	if err := s.checkAccounts(ctx, lines); err != nil {
		return nil, err
	}

	reference := req.Reference
	if reference == "" {
		allocated, err := s.referenceSvc.Allocate(ctx, domain.KindJournalEntry, req.EntryDate)
		if err != nil {
			return nil, err
		}
		reference = allocated
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		JournalCode: req.JournalCode,
		Reference:   reference,
		EntryDate:   req.EntryDate,
		Narration:   req.Narration,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: req.CreatedBy,
		},
	}

	saved, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateReference) {
			logger.Warn("Duplicate entry reference", slog.String("reference", reference))
			return nil, err
		}
		logger.Error("Failed to save journal entry", slog.String("reference", reference), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", saved.EntryID),
		slog.String("reference", saved.Reference),
		slog.String("journal", saved.JournalCode))
	return saved, nil
}

// checkAccounts verifies every referenced account exists and is active.
func (s *journalService) checkAccounts(ctx context.Context, lines []domain.JournalEntryLine) error {
	codes := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountCode]; !ok {
			seen[line.AccountCode] = struct{}{}
			codes = append(codes, line.AccountCode)
		}
	}

	accountsMap, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, code := range codes {
		acc, found := accountsMap[code]
		if !found {
			return &apperrors.UnknownAccountError{Code: code}
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s", ErrInactiveAccount, code)
		}
	}
	return nil
}

// GetEntry retrieves a posted entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntriesInRange retrieves entries ordered by (date, insertion order).
func (s *journalService) ListEntriesInRange(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	if params.DateFrom.After(params.DateTo) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidRange,
			params.DateFrom.Format("2006-01-02"), params.DateTo.Format("2006-01-02"))
	}

	entries, err := s.entryRepo.ListEntriesInRange(ctx, portsrepo.EntryRangeFilter{
		AccountCode: params.AccountCode,
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}
