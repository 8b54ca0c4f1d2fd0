package services

import (
	"context"
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// ReferenceSvcFacade allocates unique human-readable reference codes per
// entity kind per day, safe under concurrent callers.
type ReferenceSvcFacade interface {
	// Allocate returns the next reference in the form
	// {PREFIX}-{YYYYMMDD}-{NNNN}. Fails with ErrAllocationExhausted once the
	// day's sequence space is used up.
	Allocate(ctx context.Context, kind domain.ReferenceKind, date time.Time) (string, error)
}
