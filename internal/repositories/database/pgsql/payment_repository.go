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

type PgxPaymentRepository struct {
	BaseRepository
	journalRepo portsrepo.JournalEntryTransactionSupport
}

// newPgxPaymentRepository creates a new repository for payments and receipts.
func newPgxPaymentRepository(pool *pgxpool.Pool, journalRepo portsrepo.JournalEntryTransactionSupport) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}, journalRepo}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, invoice_id, reference, payment_date, amount, method, settlement_account_code, received_by, external_reference, entry_id, created_at, created_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	var externalRef sql.NullString
	err := row.Scan(
		&m.PaymentID,
		&m.InvoiceID,
		&m.Reference,
		&m.PaymentDate,
		&m.Amount,
		&m.Method,
		&m.SettlementAccountCode,
		&m.ReceivedBy,
		&externalRef,
		&m.EntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return models.Payment{}, err
	}
	m.ExternalReference = externalRef.String
	return m, nil
}

// CreatePaymentAtomic records a payment as one transaction: the invoice row
// is locked, the outstanding balance re-validated under the lock, then the
// payment, its ledger entry, its receipt, and the invoice status all commit
// together or not at all.
func (r *PgxPaymentRepository) CreatePaymentAtomic(ctx context.Context, payment domain.Payment, receipt domain.Receipt, entry domain.JournalEntry) (*portsrepo.PaymentRecord, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 FOR UPDATE;`
	invModel, err := scanInvoice(tx.QueryRow(ctx, lockQuery, payment.InvoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock invoice %s: %w", payment.InvoiceID, err)
	}

	invoice := mapping.ToDomainInvoice(invModel)
	if invoice.Status == domain.InvoiceDraft {
		return nil, fmt.Errorf("%w: cannot pay a draft invoice", apperrors.ErrInvalidState)
	}
	outstanding := invoice.Outstanding()
	if payment.Amount > outstanding {
		return nil, &apperrors.OverpaymentError{Outstanding: outstanding, Attempted: payment.Amount}
	}

	savedEntry, err := r.journalRepo.InsertEntryInTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	pm := mapping.ToModelPayment(payment)
	paymentQuery := `
		INSERT INTO payments (payment_id, invoice_id, reference, payment_date, amount, method, settlement_account_code, received_by, external_reference, entry_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var externalRef sql.NullString
	if pm.ExternalReference != "" {
		externalRef = sql.NullString{String: pm.ExternalReference, Valid: true}
	}
	_, err = tx.Exec(ctx, paymentQuery,
		pm.PaymentID,
		pm.InvoiceID,
		pm.Reference,
		pm.PaymentDate,
		pm.Amount,
		pm.Method,
		pm.SettlementAccountCode,
		pm.ReceivedBy,
		externalRef,
		pm.EntryID,
		pm.CreatedAt,
		pm.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: payment reference %s already used", apperrors.ErrDuplicateReference, pm.Reference)
		}
		return nil, fmt.Errorf("failed to insert payment %s: %w", pm.PaymentID, err)
	}

	rm := mapping.ToModelReceipt(receipt)
	receiptQuery := `
		INSERT INTO receipts (receipt_id, payment_id, reference, receipt_date, amount, method, issued_by, issued_to, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, receiptQuery,
		rm.ReceiptID,
		rm.PaymentID,
		rm.Reference,
		rm.ReceiptDate,
		rm.Amount,
		rm.Method,
		rm.IssuedBy,
		rm.IssuedTo,
		rm.CreatedAt,
		rm.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: receipt reference %s already used", apperrors.ErrDuplicateReference, rm.Reference)
		}
		return nil, fmt.Errorf("failed to insert receipt %s: %w", rm.ReceiptID, err)
	}

	newPaid := invoice.PaidAmount + payment.Amount
	newStatus := invoice.StatusFor(invoice.TotalAmount - newPaid)
	updateQuery := `
		UPDATE invoices
		SET paid_amount = $2, status = $3
		WHERE invoice_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, invoice.InvoiceID, newPaid, string(newStatus)); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s after payment: %w", invoice.InvoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	invoice.PaidAmount = newPaid
	invoice.Status = newStatus
	return &portsrepo.PaymentRecord{
		Payment: payment,
		Receipt: receipt,
		Entry:   *savedEntry,
		Invoice: invoice,
	}, nil
}

// SetReceiptArtifactPath attaches a rendered artifact path to a receipt.
func (r *PgxPaymentRepository) SetReceiptArtifactPath(ctx context.Context, receiptID string, artifactPath string) error {
	query := `UPDATE receipts SET artifact_path = $2 WHERE receipt_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, receiptID, artifactPath)
	if err != nil {
		return fmt.Errorf("failed to set artifact path for receipt %s: %w", receiptID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindReceiptByPaymentID retrieves the receipt paired with a payment.
func (r *PgxPaymentRepository) FindReceiptByPaymentID(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	query := `
		SELECT receipt_id, payment_id, reference, receipt_date, amount, method, issued_by, issued_to, artifact_path, created_at, created_by
		FROM receipts
		WHERE payment_id = $1;
	`
	var m models.Receipt
	var artifactPath sql.NullString
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.ReceiptID,
		&m.PaymentID,
		&m.Reference,
		&m.ReceiptDate,
		&m.Amount,
		&m.Method,
		&m.IssuedBy,
		&m.IssuedTo,
		&artifactPath,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt for payment %s: %w", paymentID, err)
	}
	m.ArtifactPath = artifactPath.String

	d := mapping.ToDomainReceipt(m)
	return &d, nil
}

// ListPaymentsByInvoiceID retrieves all payments against an invoice, oldest
// first.
func (r *PgxPaymentRepository) ListPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY payment_date, payment_id;`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}
