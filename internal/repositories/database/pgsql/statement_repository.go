package pgsql

import (
	"context"
	"database/sql"
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

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for bank statement lines.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &PgxStatementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

const statementColumns = `line_id, account_code, statement_date, description, amount, direction, reconciled, matched_entry_id, created_at, created_by`

func scanStatementLine(row pgx.Row) (models.BankStatementLine, error) {
	var m models.BankStatementLine
	var matchedEntryID sql.NullString
	err := row.Scan(
		&m.LineID,
		&m.AccountCode,
		&m.StatementDate,
		&m.Description,
		&m.Amount,
		&m.Direction,
		&m.Reconciled,
		&matchedEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return models.BankStatementLine{}, err
	}
	m.MatchedEntryID = matchedEntryID.String
	return m, nil
}

// SaveStatementLine persists a newly imported, unreconciled line.
func (r *PgxStatementRepository) SaveStatementLine(ctx context.Context, line domain.BankStatementLine) error {
	m := mapping.ToModelStatementLine(line)

	query := `
		INSERT INTO bank_statement_lines (line_id, account_code, statement_date, description, amount, direction, reconciled, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LineID,
		m.AccountCode,
		m.StatementDate,
		m.Description,
		m.Amount,
		m.Direction,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save statement line %s: %w", m.LineID, err)
	}
	return nil
}

// FindStatementLineByID retrieves a statement line by its ID.
func (r *PgxStatementRepository) FindStatementLineByID(ctx context.Context, lineID string) (*domain.BankStatementLine, error) {
	query := `SELECT ` + statementColumns + ` FROM bank_statement_lines WHERE line_id = $1;`

	m, err := scanStatementLine(r.Pool.QueryRow(ctx, query, lineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement line %s: %w", lineID, err)
	}

	d := mapping.ToDomainStatementLine(m)
	return &d, nil
}

// MarkReconciled records the 1:1 match under a row lock. The line must still
// be unmatched, and the unique index on matched_entry_id rejects an entry
// already claimed by another line.
func (r *PgxStatementRepository) MarkReconciled(ctx context.Context, lineID string, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT reconciled FROM bank_statement_lines WHERE line_id = $1 FOR UPDATE;`
	var reconciled bool
	if err := tx.QueryRow(ctx, lockQuery, lineID).Scan(&reconciled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock statement line %s: %w", lineID, err)
	}
	if reconciled {
		return fmt.Errorf("%w: line %s", apperrors.ErrAlreadyReconciled, lineID)
	}

	updateQuery := `
		UPDATE bank_statement_lines
		SET reconciled = TRUE, matched_entry_id = $2
		WHERE line_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, lineID, entryID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: entry %s already matched to another line", apperrors.ErrAlreadyReconciled, entryID)
		}
		return fmt.Errorf("failed to mark line %s reconciled: %w", lineID, err)
	}

	return r.Commit(ctx, tx)
}

// ListUnreconciled retrieves unmatched lines, oldest first, optionally for
// one account.
func (r *PgxStatementRepository) ListUnreconciled(ctx context.Context, accountCode string) ([]domain.BankStatementLine, error) {
	query := `SELECT ` + statementColumns + ` FROM bank_statement_lines WHERE reconciled = FALSE`
	args := []any{}
	if accountCode != "" {
		query += ` AND account_code = $1`
		args = append(args, accountCode)
	}
	query += ` ORDER BY statement_date, line_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query unreconciled lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.BankStatementLine{}
	for rows.Next() {
		m, err := scanStatementLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainStatementLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement line rows: %w", err)
	}

	return lines, nil
}
