package mapping

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its DB model.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		Reference:     d.Reference,
		SubjectRef:    d.SubjectRef,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		Status:        string(d.Status),
		PostedEntryID: d.PostedEntryID,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a DB invoice row to its domain representation.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		Reference:     m.Reference,
		SubjectRef:    m.SubjectRef,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Status:        domain.InvoiceStatus(m.Status),
		PostedEntryID: m.PostedEntryID,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}
