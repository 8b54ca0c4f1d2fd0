package dto

import (
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// EntryLineRequest is one line of a manual journal entry. Amounts are integer
// minor units; exactly one of debit/credit must be nonzero.
type EntryLineRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	Debit       int64  `json:"debit" binding:"min=0"`
	Credit      int64  `json:"credit" binding:"min=0"`
}

// PostEntryRequest defines the request body for posting a journal entry.
// Reference may be left blank to have one allocated.
type PostEntryRequest struct {
	JournalCode string             `json:"journalCode" binding:"required"`
	Reference   string             `json:"reference"`
	EntryDate   time.Time          `json:"entryDate" binding:"required"`
	Narration   string             `json:"narration" binding:"required"`
	CreatedBy   string             `json:"createdBy" binding:"required"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListEntriesParams selects entries by date range, optionally for one account.
type ListEntriesParams struct {
	AccountCode string
	DateFrom    time.Time
	DateTo      time.Time
}

// EntryLineResponse defines the data returned for one entry line.
type EntryLineResponse struct {
	LineID      string `json:"lineID"`
	AccountCode string `json:"accountCode"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	JournalCode string              `json:"journalCode"`
	Reference   string              `json:"reference"`
	EntryDate   time.Time           `json:"entryDate"`
	Narration   string              `json:"narration"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
	Lines       []EntryLineResponse `json:"lines"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{
			LineID:      l.LineID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return EntryResponse{
		EntryID:     e.EntryID,
		JournalCode: e.JournalCode,
		Reference:   e.Reference,
		EntryDate:   e.EntryDate,
		Narration:   e.Narration,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
		Lines:       lines,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
