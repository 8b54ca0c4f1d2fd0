package domain

import "time"

// StatementDirection is expressed in ledger terms of the statement's own
// account: DEBIT means funds moved into the account, CREDIT means funds moved
// out.
type StatementDirection string

const (
	StatementDebit  StatementDirection = "DEBIT"
	StatementCredit StatementDirection = "CREDIT"
)

// BankStatementLine is an externally-imported bank movement awaiting a match
// against a journal entry. Reconciled is true only when MatchedEntryID is set
// and the entry's net effect on the account equals the line's amount and
// direction.
type BankStatementLine struct {
	LineID         string             `json:"lineID"`
	AccountCode    string             `json:"accountCode"`
	StatementDate  time.Time          `json:"statementDate"`
	Description    string             `json:"description"`
	Amount         int64              `json:"amount"` // Minor units, > 0
	Direction      StatementDirection `json:"direction"`
	Reconciled     bool               `json:"reconciled"`
	MatchedEntryID string             `json:"matchedEntryID,omitempty"`
	AuditFields
}

// SignedAmount returns the expected net ledger effect on the account: positive
// for DEBIT lines, negative for CREDIT lines.
func (l BankStatementLine) SignedAmount() int64 {
	if l.Direction == StatementCredit {
		return -l.Amount
	}
	return l.Amount
}
