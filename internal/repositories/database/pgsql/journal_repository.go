package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	"github.com/opsledger/ledgerd/internal/models"
	"github.com/opsledger/ledgerd/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_seq, journal_code, reference, entry_date, narration, created_at, created_by`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntrySeq,
		&m.JournalCode,
		&m.Reference,
		&m.EntryDate,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// SaveEntry persists the entry and all its lines as one atomic unit.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := r.InsertEntryInTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// InsertEntryInTx inserts the entry header and its lines inside the caller's
// transaction. The header insert returns the assigned entry_seq.
func (r *PgxJournalRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	m := mapping.ToModelJournalEntry(entry)

	headerQuery := `
		INSERT INTO journal_entries (entry_id, journal_code, reference, entry_date, narration, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_seq;
	`
	err := tx.QueryRow(ctx, headerQuery,
		m.EntryID,
		m.JournalCode,
		m.Reference,
		m.EntryDate,
		m.Narration,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&m.EntrySeq)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: reference %s already used", apperrors.ErrDuplicateReference, m.Reference)
		}
		return nil, fmt.Errorf("failed to insert entry %s: %w", m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, account_code, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		lm := mapping.ToModelEntryLine(line)
		batch.Queue(lineQuery, lm.LineID, lm.EntryID, lm.AccountCode, lm.Debit, lm.Credit)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, fmt.Errorf("failed to insert line %d of entry %s: %w", i, m.EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close line insert batch for entry %s: %w", m.EntryID, err)
	}

	saved := mapping.ToDomainJournalEntry(m)
	saved.Lines = entry.Lines
	return &saved, nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Lines = lines[entryID]
	return &entry, nil
}

// ListEntriesInRange retrieves entries whose date falls within the filter,
// ordered by (entry_date, entry_seq).
func (r *PgxJournalRepository) ListEntriesInRange(ctx context.Context, filter portsrepo.EntryRangeFilter) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		WHERE e.entry_date >= $1 AND e.entry_date <= $2
	`
	args := []any{filter.DateFrom, filter.DateTo}
	if filter.AccountCode != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM journal_entry_lines l
			WHERE l.entry_id = e.entry_id AND l.account_code = $3
		)`
		args = append(args, filter.AccountCode)
	}
	query += ` ORDER BY e.entry_date, e.entry_seq;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries in range: %w", err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		headers = append(headers, m)
		entryIDs = append(entryIDs, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entry := mapping.ToDomainJournalEntry(h)
		entry.Lines = linesByEntry[h.EntryID]
		entries[i] = entry
	}
	return entries, nil
}

// findLinesByEntryIDs fetches lines for a set of entries, grouped by entry ID
// and kept in insertion order within each entry.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalEntryLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, account_code, debit, credit
		FROM journal_entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY line_seq;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry lines: %w", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]domain.JournalEntryLine)
	for rows.Next() {
		var lm models.JournalEntryLine
		if err := rows.Scan(&lm.LineID, &lm.EntryID, &lm.AccountCode, &lm.Debit, &lm.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan entry line row: %w", err)
		}
		linesByEntry[lm.EntryID] = append(linesByEntry[lm.EntryID], mapping.ToDomainEntryLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry line rows: %w", err)
	}

	return linesByEntry, nil
}
