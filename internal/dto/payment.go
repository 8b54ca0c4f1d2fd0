package dto

import (
	"time"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

// RecordPaymentRequest defines the request body for recording a payment
// against an invoice. Amount is in integer minor units.
type RecordPaymentRequest struct {
	Amount                int64                `json:"amount" binding:"required"`
	Method                domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK MOBILE_MONEY CARD"`
	SettlementAccountCode string               `json:"settlementAccountCode" binding:"required"`
	PerformedBy           string               `json:"performedBy" binding:"required"`
	ExternalReference     string               `json:"externalReference"`
}

// RecordPaymentResponse returns the identifiers created for one payment.
type RecordPaymentResponse struct {
	PaymentID        string `json:"paymentID"`
	PaymentReference string `json:"paymentReference"`
	ReceiptID        string `json:"receiptID"`
	ReceiptReference string `json:"receiptReference"`
	EntryID          string `json:"entryID"`
	InvoiceStatus    string `json:"invoiceStatus"`
	Outstanding      int64  `json:"outstanding"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID             string    `json:"paymentID"`
	InvoiceID             string    `json:"invoiceID"`
	Reference             string    `json:"reference"`
	PaymentDate           time.Time `json:"paymentDate"`
	Amount                int64     `json:"amount"`
	Method                string    `json:"method"`
	SettlementAccountCode string    `json:"settlementAccountCode"`
	ReceivedBy            string    `json:"receivedBy"`
	EntryID               string    `json:"entryID"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID    string    `json:"receiptID"`
	PaymentID    string    `json:"paymentID"`
	Reference    string    `json:"reference"`
	ReceiptDate  time.Time `json:"receiptDate"`
	Amount       int64     `json:"amount"`
	Method       string    `json:"method"`
	IssuedBy     string    `json:"issuedBy"`
	IssuedTo     string    `json:"issuedTo"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:             p.PaymentID,
		InvoiceID:             p.InvoiceID,
		Reference:             p.Reference,
		PaymentDate:           p.PaymentDate,
		Amount:                p.Amount,
		Method:                string(p.Method),
		SettlementAccountCode: p.SettlementAccountCode,
		ReceivedBy:            p.ReceivedBy,
		EntryID:               p.EntryID,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:    r.ReceiptID,
		PaymentID:    r.PaymentID,
		Reference:    r.Reference,
		ReceiptDate:  r.ReceiptDate,
		Amount:       r.Amount,
		Method:       string(r.Method),
		IssuedBy:     r.IssuedBy,
		IssuedTo:     r.IssuedTo,
		ArtifactPath: r.ArtifactPath,
	}
}
