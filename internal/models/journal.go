package models

import "time"

// JournalEntry is the DB model for the journal_entries table.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntrySeq    int64     `db:"entry_seq"` // BIGSERIAL, durable insertion order
	JournalCode string    `db:"journal_code"`
	Reference   string    `db:"reference"`
	EntryDate   time.Time `db:"entry_date"`
	Narration   string    `db:"narration"`
	AuditFields
}

// JournalEntryLine is the DB model for the journal_entry_lines table.
type JournalEntryLine struct {
	LineID      string `db:"line_id"`
	EntryID     string `db:"entry_id"`
	AccountCode string `db:"account_code"`
	Debit       int64  `db:"debit"`
	Credit      int64  `db:"credit"`
}
