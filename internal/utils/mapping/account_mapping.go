package mapping

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/models"
)

// ToModelAccount converts a domain.Account to its DB model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:         d.Code,
		Name:         d.Name,
		AccountType:  models.AccountType(d.AccountType),
		ParentCode:   d.ParentCode,
		CurrencyCode: d.CurrencyCode,
		IsActive:     d.IsActive,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB model account to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:         m.Code,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		ParentCode:   m.ParentCode,
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}
