package services

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/dto"
)

// JournalSvcFacade exposes journal entry store operations.
type JournalSvcFacade interface {
	// PostEntry validates and persists a balanced entry with all its lines as
	// one atomic unit. All validation runs before any durable write.
	PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, error)

	// GetEntry retrieves a posted entry with its lines.
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesInRange retrieves entries ordered by (date, insertion order).
	ListEntriesInRange(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
}
