package domain

// TrialBalanceRow aggregates all entry lines touching one account over a date
// range. Not stored; recomputed from the journal entry store on every call.
type TrialBalanceRow struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	TotalDebit  int64  `json:"totalDebit"`
	TotalCredit int64  `json:"totalCredit"`
}
