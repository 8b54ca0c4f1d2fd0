package domain

import "time"

// PaymentMethod is the settlement channel of a payment.
type PaymentMethod string

const (
	MethodCash        PaymentMethod = "CASH"
	MethodBank        PaymentMethod = "BANK"
	MethodMobileMoney PaymentMethod = "MOBILE_MONEY"
	MethodCard        PaymentMethod = "CARD"
)

// Payment records money received against an invoice. Immutable; always paired
// 1:1 with one Receipt and one JournalEntry.
type Payment struct {
	PaymentID             string        `json:"paymentID"`
	InvoiceID             string        `json:"invoiceID"`
	Reference             string        `json:"reference"` // Unique, allocator-issued (PAY-...)
	PaymentDate           time.Time     `json:"paymentDate"`
	Amount                int64         `json:"amount"` // Minor units, > 0
	Method                PaymentMethod `json:"method"`
	SettlementAccountCode string        `json:"settlementAccountCode"` // Cash/bank account debited on receipt
	ReceivedBy            string        `json:"receivedBy"`
	ExternalReference     string        `json:"externalReference,omitempty"`
	EntryID               string        `json:"entryID"` // The journal entry posted for this payment
	AuditFields
}

// Receipt is the record issued for a payment. ArtifactPath is populated by a
// best-effort external renderer and may stay empty without invalidating the
// receipt.
type Receipt struct {
	ReceiptID    string        `json:"receiptID"`
	PaymentID    string        `json:"paymentID"`
	Reference    string        `json:"reference"` // Unique, allocator-issued (RCP-...)
	ReceiptDate  time.Time     `json:"receiptDate"`
	Amount       int64         `json:"amount"` // Minor units
	Method       PaymentMethod `json:"method"`
	IssuedBy     string        `json:"issuedBy"`
	IssuedTo     string        `json:"issuedTo"`
	ArtifactPath string        `json:"artifactPath,omitempty"`
	AuditFields
}
