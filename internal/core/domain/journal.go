package domain

import "time"

// Journal is a named grouping for entries (e.g. Sales, Cash Receipts). It is
// purely organizational and carries no balance of its own.
type Journal struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Well-known journal codes seeded at setup.
const (
	JournalGeneral      = "GENERAL"
	JournalSales        = "SALES"
	JournalCashReceipts = "CASH_RECEIPTS"
)

// JournalEntry is a single balanced double-entry transaction. Entries are
// immutable once posted; corrections are made via new reversing entries.
type JournalEntry struct {
	EntryID     string             `json:"entryID"`   // Primary key (UUID)
	EntrySeq    int64              `json:"entrySeq"`  // Durable insertion order, tie-break for same-date entries
	JournalCode string             `json:"journalCode"`
	Reference   string             `json:"reference"` // Unique across all entries
	EntryDate   time.Time          `json:"entryDate"`
	Narration   string             `json:"narration"`
	Lines       []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine encodes one side of one account's movement. Exactly one of
// Debit/Credit is nonzero. Amounts are integer minor units.
type JournalEntryLine struct {
	LineID      string `json:"lineID"`
	EntryID     string `json:"entryID"`
	AccountCode string `json:"accountCode"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
}

// NetEffect returns the entry's net movement on the given account in minor
// units: positive for a net debit, negative for a net credit.
func (e JournalEntry) NetEffect(accountCode string) int64 {
	var net int64
	for _, line := range e.Lines {
		if line.AccountCode == accountCode {
			net += line.Debit - line.Credit
		}
	}
	return net
}
