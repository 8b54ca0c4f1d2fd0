package mapping

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/models"
)

// ToModelJournalEntry converts a domain entry (header only) to its DB model.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntrySeq:    d.EntrySeq,
		JournalCode: d.JournalCode,
		Reference:   d.Reference,
		EntryDate:   d.EntryDate,
		Narration:   d.Narration,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a DB entry row to its domain representation,
// without lines.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntrySeq:    m.EntrySeq,
		JournalCode: m.JournalCode,
		Reference:   m.Reference,
		EntryDate:   m.EntryDate,
		Narration:   m.Narration,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntryLine converts a domain entry line to its DB model.
func ToModelEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountCode: d.AccountCode,
		Debit:       d.Debit,
		Credit:      d.Credit,
	}
}

// ToDomainEntryLine converts a DB line row to its domain representation.
func ToDomainEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}
