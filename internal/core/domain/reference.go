package domain

import (
	"fmt"
	"time"
)

// ReferenceKind identifies the entity type a reference is allocated for. Each
// kind has its own daily sequence.
type ReferenceKind string

const (
	KindInvoice      ReferenceKind = "INVOICE"
	KindPayment      ReferenceKind = "PAYMENT"
	KindReceipt      ReferenceKind = "RECEIPT"
	KindJournalEntry ReferenceKind = "JOURNAL_ENTRY"
)

// MaxDailySequence bounds the per-day sequence space. Exceeding it surfaces
// AllocationExhausted rather than wrapping around.
const MaxDailySequence = 9999

var referencePrefixes = map[ReferenceKind]string{
	KindInvoice:      "INV",
	KindPayment:      "PAY",
	KindReceipt:      "RCP",
	KindJournalEntry: "JE",
}

// Prefix returns the reference prefix for the kind, or empty if unknown.
func (k ReferenceKind) Prefix() string {
	return referencePrefixes[k]
}

// Valid reports whether the kind is one of the allocatable entity kinds.
func (k ReferenceKind) Valid() bool {
	_, ok := referencePrefixes[k]
	return ok
}

// FormatReference renders the bit-exact external reference format
// {PREFIX}-{YYYYMMDD}-{NNNN}.
func FormatReference(kind ReferenceKind, date time.Time, sequence int64) string {
	return fmt.Sprintf("%s-%s-%04d", kind.Prefix(), date.Format("20060102"), sequence)
}
