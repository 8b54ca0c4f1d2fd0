package accounting

import (
	"fmt"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
)

// EntryTotals sums the debit and credit sides of an entry's lines in minor
// units. Used by both services and repositories so the balance check is
// computed one way everywhere.
func EntryTotals(lines []domain.JournalEntryLine) (totalDebit, totalCredit int64) {
	for _, line := range lines {
		totalDebit += line.Debit
		totalCredit += line.Credit
	}
	return totalDebit, totalCredit
}

// ValidateLines checks the structural rules for entry lines: at least two
// lines, each with exactly one nonzero non-negative side, and equal debit and
// credit totals (exact integer comparison, no tolerance).
func ValidateLines(lines []domain.JournalEntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}

	for i, line := range lines {
		if line.Debit < 0 || line.Credit < 0 {
			return fmt.Errorf("%w: negative amount on line %d", apperrors.ErrInvalidAmount, i)
		}
		hasDebit := line.Debit > 0
		hasCredit := line.Credit > 0
		if hasDebit == hasCredit {
			return fmt.Errorf("%w: line %d for account %s", apperrors.ErrMalformedLine, i, line.AccountCode)
		}
	}

	totalDebit, totalCredit := EntryTotals(lines)
	if totalDebit != totalCredit {
		return &apperrors.UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	return nil
}
