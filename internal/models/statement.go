package models

import "time"

// BankStatementLine is the DB model for the bank_statement_lines table.
type BankStatementLine struct {
	LineID         string    `db:"line_id"`
	AccountCode    string    `db:"account_code"`
	StatementDate  time.Time `db:"statement_date"`
	Description    string    `db:"description"`
	Amount         int64     `db:"amount"`
	Direction      string    `db:"direction"`
	Reconciled     bool      `db:"reconciled"`
	MatchedEntryID string    `db:"matched_entry_id"` // Stored NULL until matched
	AuditFields
}
