package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsledger/ledgerd/internal/core/domain"
)

func TestInvoiceOutstanding(t *testing.T) {
	invoice := domain.Invoice{TotalAmount: 400000, PaidAmount: 150000}

	assert.Equal(t, int64(250000), invoice.Outstanding())
}

func TestInvoiceStatusFor(t *testing.T) {
	invoice := domain.Invoice{TotalAmount: 400000}

	assert.Equal(t, domain.InvoiceIssued, invoice.StatusFor(400000))
	assert.Equal(t, domain.InvoicePartiallyPaid, invoice.StatusFor(250000))
	assert.Equal(t, domain.InvoicePartiallyPaid, invoice.StatusFor(1))
	assert.Equal(t, domain.InvoicePaid, invoice.StatusFor(0))
}
