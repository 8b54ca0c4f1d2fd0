package repositories

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// StatementReader defines read operations for bank statement lines.
type StatementReader interface {
	// FindStatementLineByID retrieves a statement line by its ID.
	FindStatementLineByID(ctx context.Context, lineID string) (*domain.BankStatementLine, error)

	// ListUnreconciled retrieves unmatched statement lines, optionally
	// filtered to one account, oldest first.
	ListUnreconciled(ctx context.Context, accountCode string) ([]domain.BankStatementLine, error)
}

// StatementWriter defines write operations for bank statement lines.
type StatementWriter interface {
	// SaveStatementLine persists a newly imported, unreconciled line.
	SaveStatementLine(ctx context.Context, line domain.BankStatementLine) error

	// MarkReconciled records the 1:1 match between a statement line and a
	// journal entry. It enforces, under a row lock, that the line is not
	// already matched and that the entry is not the target of another match;
	// either violation returns apperrors.ErrAlreadyReconciled.
	MarkReconciled(ctx context.Context, lineID string, entryID string) error
}

// StatementRepositoryFacade combines all statement repository interfaces.
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}
