package services

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/dto"
)

// ReconciliationSvcFacade matches imported bank statement lines against
// journal entries.
type ReconciliationSvcFacade interface {
	// ImportStatementLine creates an unreconciled statement line.
	ImportStatementLine(ctx context.Context, req dto.ImportStatementLineRequest) (*domain.BankStatementLine, error)

	// Reconcile records a 1:1 match between a statement line and a journal
	// entry after verifying the entry's net effect on the line's account.
	Reconcile(ctx context.Context, lineID string, entryID string) (*domain.BankStatementLine, error)

	// ListUnreconciled returns unmatched lines, optionally for one account.
	ListUnreconciled(ctx context.Context, accountCode string) ([]domain.BankStatementLine, error)
}
