package dto

import (
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// ImportStatementLineRequest defines the request body for importing one bank
// statement line. Amount is in integer minor units and always positive;
// direction carries the sign.
type ImportStatementLineRequest struct {
	AccountCode   string                    `json:"accountCode" binding:"required"`
	StatementDate time.Time                 `json:"statementDate" binding:"required"`
	Description   string                    `json:"description" binding:"required"`
	Amount        int64                     `json:"amount" binding:"required"`
	Direction     domain.StatementDirection `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	ImportedBy    string                    `json:"importedBy" binding:"required"`
}

// ReconcileRequest defines the request body for matching a statement line to
// a journal entry.
type ReconcileRequest struct {
	EntryID string `json:"entryID" binding:"required"`
}

// StatementLineResponse defines the data returned for a statement line.
type StatementLineResponse struct {
	LineID         string    `json:"lineID"`
	AccountCode    string    `json:"accountCode"`
	StatementDate  time.Time `json:"statementDate"`
	Description    string    `json:"description"`
	Amount         int64     `json:"amount"`
	Direction      string    `json:"direction"`
	Reconciled     bool      `json:"reconciled"`
	MatchedEntryID string    `json:"matchedEntryID,omitempty"`
}

// ToStatementLineResponse converts a domain.BankStatementLine to its response.
func ToStatementLineResponse(l *domain.BankStatementLine) StatementLineResponse {
	return StatementLineResponse{
		LineID:         l.LineID,
		AccountCode:    l.AccountCode,
		StatementDate:  l.StatementDate,
		Description:    l.Description,
		Amount:         l.Amount,
		Direction:      string(l.Direction),
		Reconciled:     l.Reconciled,
		MatchedEntryID: l.MatchedEntryID,
	}
}

// ToStatementLineResponses converts a slice of domain statement lines.
func ToStatementLineResponses(lines []domain.BankStatementLine) []StatementLineResponse {
	responses := make([]StatementLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToStatementLineResponse(&lines[i])
	}
	return responses
}
