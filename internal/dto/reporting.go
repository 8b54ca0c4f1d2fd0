package dto

import (
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/utils"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one aggregated account row. Totals are carried
// both as exact minor units and as display decimals.
type TrialBalanceRowResponse struct {
	AccountCode        string          `json:"accountCode"`
	AccountName        string          `json:"accountName"`
	TotalDebit         int64           `json:"totalDebit"`
	TotalCredit        int64           `json:"totalCredit"`
	TotalDebitDisplay  decimal.Decimal `json:"totalDebitDisplay"`
	TotalCreditDisplay decimal.Decimal `json:"totalCreditDisplay"`
}

// TrialBalanceResponse is the computed trial balance for a date range.
type TrialBalanceResponse struct {
	DateFrom time.Time                 `json:"dateFrom"`
	DateTo   time.Time                 `json:"dateTo"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
}

// ToTrialBalanceResponse converts domain rows to the report response.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, dateFrom, dateTo time.Time, precision int) TrialBalanceResponse {
	respRows := make([]TrialBalanceRowResponse, len(rows))
	for i, row := range rows {
		respRows[i] = TrialBalanceRowResponse{
			AccountCode:        row.AccountCode,
			AccountName:        row.AccountName,
			TotalDebit:         row.TotalDebit,
			TotalCredit:        row.TotalCredit,
			TotalDebitDisplay:  utils.MinorUnitsToDecimal(row.TotalDebit, precision),
			TotalCreditDisplay: utils.MinorUnitsToDecimal(row.TotalCredit, precision),
		}
	}
	return TrialBalanceResponse{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Rows:     respRows,
	}
}
