package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/ledgerd/internal/core/domain"
)

// EntryRangeFilter selects entries whose date falls in [DateFrom, DateTo],
// optionally restricted to entries touching one account.
type EntryRangeFilter struct {
	AccountCode string // Optional; empty means all accounts
	DateFrom    time.Time
	DateTo      time.Time
}

// JournalEntryReader defines read operations for posted entries.
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesInRange retrieves entries with lines, ordered by
	// (entry_date, entry_seq). entry_seq is the durable insertion order and
	// breaks ties between same-date entries.
	ListEntriesInRange(ctx context.Context, filter EntryRangeFilter) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for posted entries.
type JournalEntryWriter interface {
	// SaveEntry persists the entry and all its lines as one atomic unit and
	// returns the entry with its assigned insertion sequence. Returns
	// apperrors.ErrDuplicateReference if the reference is taken.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)
}

// JournalEntryTransactionSupport exposes entry persistence inside a caller's
// database transaction, for writes that must commit atomically with other
// entities (invoice issuance, payment recording).
type JournalEntryTransactionSupport interface {
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) (*domain.JournalEntry, error)
}

// JournalEntryRepositoryFacade combines all entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	JournalEntryTransactionSupport
}
