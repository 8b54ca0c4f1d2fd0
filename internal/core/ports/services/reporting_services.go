package services

import (
	"context"
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// ReportingSvcFacade exposes read-only aggregations over the entry store.
type ReportingSvcFacade interface {
	// TrialBalance computes per-account debit/credit totals for entries dated
	// within [dateFrom, dateTo], ordered by account code.
	TrialBalance(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.TrialBalanceRow, error)
}
