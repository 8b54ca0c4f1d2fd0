package repositories

import (
	"context"
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// ReportingRepository defines read-only aggregations over the entry store.
type ReportingRepository interface {
	// TrialBalance aggregates total debit and credit per account over all
	// entry lines whose entry date falls in [dateFrom, dateTo], ordered by
	// account code. Recomputed on every call; never cached.
	TrialBalance(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.TrialBalanceRow, error)
}
