package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// referenceService allocates reference codes from per-(kind, day) counters.
// The counter increment is the system's one explicit critical section; the
// repository performs it under a row lock.
type referenceService struct {
	counterRepo portsrepo.ReferenceCounterRepository
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(counterRepo portsrepo.ReferenceCounterRepository) portssvc.ReferenceSvcFacade {
	return &referenceService{counterRepo: counterRepo}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// Allocate returns the next reference for the kind and date.
func (s *referenceService) Allocate(ctx context.Context, kind domain.ReferenceKind, date time.Time) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown reference kind %q", apperrors.ErrValidation, kind)
	}

	day := date.UTC().Truncate(24 * time.Hour)
	seq, err := s.counterRepo.NextSequence(ctx, kind, day)
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s reference: %w", kind, err)
	}
	if seq > domain.MaxDailySequence {
		middleware.GetLoggerFromCtx(ctx).Error("Reference sequence exhausted",
			slog.String("kind", string(kind)), slog.Time("day", day))
		return "", fmt.Errorf("%w: kind %s day %s", apperrors.ErrAllocationExhausted, kind, day.Format("2006-01-02"))
	}

	return domain.FormatReference(kind, day, seq), nil
}
