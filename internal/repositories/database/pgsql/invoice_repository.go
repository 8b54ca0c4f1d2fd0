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

type PgxInvoiceRepository struct {
	BaseRepository
	journalRepo portsrepo.JournalEntryTransactionSupport
}

// newPgxInvoiceRepository creates a new repository for invoices. Issuance
// posts the ledger entry through journalRepo inside the same transaction.
func newPgxInvoiceRepository(pool *pgxpool.Pool, journalRepo portsrepo.JournalEntryTransactionSupport) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}, journalRepo}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, reference, subject_ref, issue_date, due_date, total_amount, paid_amount, status, posted_entry_id, created_at, created_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var postedEntryID sql.NullString
	err := row.Scan(
		&m.InvoiceID,
		&m.Reference,
		&m.SubjectRef,
		&m.IssueDate,
		&m.DueDate,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.Status,
		&postedEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return models.Invoice{}, err
	}
	m.PostedEntryID = postedEntryID.String
	return m, nil
}

// SaveInvoice inserts a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, reference, subject_ref, issue_date, due_date, total_amount, paid_amount, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.Reference,
		m.SubjectRef,
		m.IssueDate,
		m.DueDate,
		m.TotalAmount,
		m.PaidAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice reference %s already used", apperrors.ErrDuplicateReference, m.Reference)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// MarkIssued posts the ledger entry and flips the invoice from Draft to
// Issued in one transaction. The invoice row is locked first and its status
// re-checked under the lock, so a concurrent issue loses cleanly.
func (r *PgxInvoiceRepository) MarkIssued(ctx context.Context, invoiceID string, entry domain.JournalEntry) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 FOR UPDATE;`
	m, err := scanInvoice(tx.QueryRow(ctx, lockQuery, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}
	if m.Status != string(domain.InvoiceDraft) {
		return nil, &apperrors.InvalidTransitionError{From: m.Status, To: string(domain.InvoiceIssued)}
	}

	saved, err := r.journalRepo.InsertEntryInTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE invoices
		SET status = $2, posted_entry_id = $3
		WHERE invoice_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, invoiceID, string(domain.InvoiceIssued), saved.EntryID); err != nil {
		return nil, fmt.Errorf("failed to mark invoice %s issued: %w", invoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(domain.InvoiceIssued)
	m.PostedEntryID = saved.EntryID
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}
