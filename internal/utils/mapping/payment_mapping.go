package mapping

import (
	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/models"
)

// ToModelPayment converts a domain.Payment to its DB model.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:             d.PaymentID,
		InvoiceID:             d.InvoiceID,
		Reference:             d.Reference,
		PaymentDate:           d.PaymentDate,
		Amount:                d.Amount,
		Method:                string(d.Method),
		SettlementAccountCode: d.SettlementAccountCode,
		ReceivedBy:            d.ReceivedBy,
		ExternalReference:     d.ExternalReference,
		EntryID:               d.EntryID,
		AuditFields:           toModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a DB payment row to its domain representation.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:             m.PaymentID,
		InvoiceID:             m.InvoiceID,
		Reference:             m.Reference,
		PaymentDate:           m.PaymentDate,
		Amount:                m.Amount,
		Method:                domain.PaymentMethod(m.Method),
		SettlementAccountCode: m.SettlementAccountCode,
		ReceivedBy:            m.ReceivedBy,
		ExternalReference:     m.ExternalReference,
		EntryID:               m.EntryID,
		AuditFields:           toDomainAuditFields(m.AuditFields),
	}
}

// ToModelReceipt converts a domain.Receipt to its DB model.
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:    d.ReceiptID,
		PaymentID:    d.PaymentID,
		Reference:    d.Reference,
		ReceiptDate:  d.ReceiptDate,
		Amount:       d.Amount,
		Method:       string(d.Method),
		IssuedBy:     d.IssuedBy,
		IssuedTo:     d.IssuedTo,
		ArtifactPath: d.ArtifactPath,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a DB receipt row to its domain representation.
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:    m.ReceiptID,
		PaymentID:    m.PaymentID,
		Reference:    m.Reference,
		ReceiptDate:  m.ReceiptDate,
		Amount:       m.Amount,
		Method:       domain.PaymentMethod(m.Method),
		IssuedBy:     m.IssuedBy,
		IssuedTo:     m.IssuedTo,
		ArtifactPath: m.ArtifactPath,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}
