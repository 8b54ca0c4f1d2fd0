package dto

import (
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// CreateInvoiceRequest defines the request body for creating an invoice.
// TotalAmount is in integer minor units. When PostToLedger is true the
// invoice is issued to the ledger in the same operation.
type CreateInvoiceRequest struct {
	SubjectRef   string    `json:"subjectRef" binding:"required"`
	IssueDate    time.Time `json:"issueDate" binding:"required"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	TotalAmount  int64     `json:"totalAmount" binding:"required"`
	PostToLedger bool      `json:"postToLedger"`
	CreatedBy    string    `json:"createdBy" binding:"required"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string            `json:"invoiceID"`
	Reference     string            `json:"reference"`
	SubjectRef    string            `json:"subjectRef"`
	IssueDate     time.Time         `json:"issueDate"`
	DueDate       time.Time         `json:"dueDate"`
	TotalAmount   int64             `json:"totalAmount"`
	PaidAmount    int64             `json:"paidAmount"`
	Outstanding   int64             `json:"outstanding"`
	Status        string            `json:"status"`
	PostedEntryID string            `json:"postedEntryID,omitempty"`
	Payments      []PaymentResponse `json:"payments,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		Reference:     inv.Reference,
		SubjectRef:    inv.SubjectRef,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		Outstanding:   inv.Outstanding(),
		Status:        string(inv.Status),
		PostedEntryID: inv.PostedEntryID,
	}
}
