package mapping

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/models"
)

// ToModelStatementLine converts a domain.BankStatementLine to its DB model.
func ToModelStatementLine(d domain.BankStatementLine) models.BankStatementLine {
	return models.BankStatementLine{
		LineID:         d.LineID,
		AccountCode:    d.AccountCode,
		StatementDate:  d.StatementDate,
		Description:    d.Description,
		Amount:         d.Amount,
		Direction:      string(d.Direction),
		Reconciled:     d.Reconciled,
		MatchedEntryID: d.MatchedEntryID,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainStatementLine converts a DB statement line row to its domain
// representation.
func ToDomainStatementLine(m models.BankStatementLine) domain.BankStatementLine {
	return domain.BankStatementLine{
		LineID:         m.LineID,
		AccountCode:    m.AccountCode,
		StatementDate:  m.StatementDate,
		Description:    m.Description,
		Amount:         m.Amount,
		Direction:      domain.StatementDirection(m.Direction),
		Reconciled:     m.Reconciled,
		MatchedEntryID: m.MatchedEntryID,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}
