package services

import (
	"context"
	"fmt"
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
)

// reportingService provides read-only aggregations over the entry store.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance aggregates per-account totals over the date range. The report
// is recomputed from the entry lines on every call.
func (s *reportingService) TrialBalance(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.TrialBalanceRow, error) {
	if dateFrom.After(dateTo) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidRange,
			dateFrom.Format("2006-01-02"), dateTo.Format("2006-01-02"))
	}

	rows, err := s.reportingRepo.TrialBalance(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}
	return rows, nil
}
