package models

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// Account is the DB model for the accounts table, keyed by code.
type Account struct {
	Code         string      `db:"code"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	ParentCode   string      `db:"parent_code"` // Stored NULL when empty
	CurrencyCode string      `db:"currency_code"`
	IsActive     bool        `db:"is_active"`
	AuditFields
}
