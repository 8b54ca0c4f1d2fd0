package models

import "time"

// Payment is the DB model for the payments table.
type Payment struct {
	PaymentID             string    `db:"payment_id"`
	InvoiceID             string    `db:"invoice_id"`
	Reference             string    `db:"reference"`
	PaymentDate           time.Time `db:"payment_date"`
	Amount                int64     `db:"amount"`
	Method                string    `db:"method"`
	SettlementAccountCode string    `db:"settlement_account_code"`
	ReceivedBy            string    `db:"received_by"`
	ExternalReference     string    `db:"external_reference"`
	EntryID               string    `db:"entry_id"`
	AuditFields
}

// Receipt is the DB model for the receipts table.
type Receipt struct {
	ReceiptID    string    `db:"receipt_id"`
	PaymentID    string    `db:"payment_id"`
	Reference    string    `db:"reference"`
	ReceiptDate  time.Time `db:"receipt_date"`
	Amount       int64     `db:"amount"`
	Method       string    `db:"method"`
	IssuedBy     string    `db:"issued_by"`
	IssuedTo     string    `db:"issued_to"`
	ArtifactPath string    `db:"artifact_path"`
	AuditFields
}
