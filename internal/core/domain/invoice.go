package domain

import "time"

// InvoiceStatus is the invoice state machine position. PartiallyPaid and Paid
// are reached only as a side effect of recorded payments, never set directly.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceIssued        InvoiceStatus = "ISSUED"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid          InvoiceStatus = "PAID"
)

// Invoice is a receivable document linked to the ledger at issue time.
type Invoice struct {
	InvoiceID     string        `json:"invoiceID"`
	Reference     string        `json:"reference"`  // Unique, allocator-issued (INV-...)
	SubjectRef    string        `json:"subjectRef"` // External client/event reference
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
	TotalAmount   int64         `json:"totalAmount"` // Minor units
	PaidAmount    int64         `json:"paidAmount"`  // Sum of recorded payments, minor units
	Status        InvoiceStatus `json:"status"`
	PostedEntryID string        `json:"postedEntryID,omitempty"` // Set once the invoice is issued to the ledger
	AuditFields
}

// Outstanding is the remaining unpaid balance in minor units.
func (i Invoice) Outstanding() int64 {
	return i.TotalAmount - i.PaidAmount
}

// StatusFor derives the status implied by the given outstanding balance.
// Only meaningful for invoices past Draft.
func (i Invoice) StatusFor(outstanding int64) InvoiceStatus {
	switch {
	case outstanding == 0:
		return InvoicePaid
	case outstanding < i.TotalAmount:
		return InvoicePartiallyPaid
	default:
		return InvoiceIssued
	}
}
