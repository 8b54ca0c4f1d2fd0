package repositories

import (
	"context"
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// ReferenceCounterRepository is the one component with an explicit
// atomic-increment contract: two concurrent calls for the same (kind, day)
// must never observe the same sequence number.
type ReferenceCounterRepository interface {
	// NextSequence atomically increments and returns the counter for the
	// given kind and day. Returns apperrors.ErrAllocationExhausted once the
	// daily bound is exceeded.
	NextSequence(ctx context.Context, kind domain.ReferenceKind, day time.Time) (int64, error)
}
