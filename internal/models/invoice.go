package models

import "time"

// Invoice is the DB model for the invoices table. PaidAmount is maintained
// transactionally alongside each recorded payment.
type Invoice struct {
	InvoiceID     string    `db:"invoice_id"`
	Reference     string    `db:"reference"`
	SubjectRef    string    `db:"subject_ref"`
	IssueDate     time.Time `db:"issue_date"`
	DueDate       time.Time `db:"due_date"`
	TotalAmount   int64     `db:"total_amount"`
	PaidAmount    int64     `db:"paid_amount"`
	Status        string    `db:"status"`
	PostedEntryID string    `db:"posted_entry_id"` // Stored NULL until issued
	AuditFields
}
