package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
)

type PgxReferenceRepository struct {
	BaseRepository
}

// newPgxReferenceRepository creates a new repository for reference counters.
func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceCounterRepository {
	return &PgxReferenceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceCounterRepository = (*PgxReferenceRepository)(nil)

// NextSequence atomically increments the (kind, day) counter and returns the
// new value. The upsert takes a row lock, so two concurrent callers always
// observe distinct sequence numbers.
func (r *PgxReferenceRepository) NextSequence(ctx context.Context, kind domain.ReferenceKind, day time.Time) (int64, error) {
	query := `
		INSERT INTO reference_counters (kind, day, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (kind, day)
		DO UPDATE SET last_value = reference_counters.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	err := r.Pool.QueryRow(ctx, query, string(kind), day).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter for %s/%s: %w", kind, day.Format("2006-01-02"), err)
	}
	return seq, nil
}
