package dto

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
)

// CreateAccountRequest defines the request body for creating an account.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentCode   string             `json:"parentCode"`
	CurrencyCode string             `json:"currencyCode" binding:"required,len=3"`
	CreatedBy    string             `json:"createdBy" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	AccountType  string `json:"accountType"`
	ParentCode   string `json:"parentCode,omitempty"`
	CurrencyCode string `json:"currencyCode"`
	IsActive     bool   `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Code:         a.Code,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		ParentCode:   a.ParentCode,
		CurrencyCode: a.CurrencyCode,
		IsActive:     a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
