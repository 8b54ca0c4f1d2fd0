package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/core/services"
	"github.com/opsledger/ledgerd/internal/dto"
)

var testPosting = services.PostingConfig{
	ReceivableAccountCode: "1200",
	RevenueAccountCode:    "4000",
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPaymentRepo *MockPaymentRepository
	mockAccountRepo *MockAccountRepository
	mockReference   *MockReferenceService
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReference = new(MockReferenceService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockPaymentRepo, suite.mockAccountRepo, suite.mockReference, testPosting)
}

func createInvoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		SubjectRef:  "client-acme",
		IssueDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: 400000,
		CreatedBy:   "billing@example.com",
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Draft() {
	ctx := context.Background()
	req := createInvoiceRequest()

	suite.mockReference.On("Allocate", ctx, domain.KindInvoice, req.IssueDate).
		Return("INV-20260310-0001", nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal("INV-20260310-0001", invoice.Reference)
	suite.Equal(domain.InvoiceDraft, invoice.Status)
	suite.Equal(int64(400000), invoice.TotalAmount)
	suite.Equal(int64(0), invoice.PaidAmount)
	suite.Empty(invoice.PostedEntryID)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "MarkIssued", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NonPositiveTotal() {
	ctx := context.Background()
	req := createInvoiceRequest()
	req.TotalAmount = 0

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockReference.AssertNotCalled(suite.T(), "Allocate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PostToLedger() {
	ctx := context.Background()
	req := createInvoiceRequest()
	req.PostToLedger = true

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{"1200", "4000"}).
		Return(activeAccounts("1200", "4000"), nil).Once()
	suite.mockReference.On("Allocate", ctx, domain.KindInvoice, req.IssueDate).
		Return("INV-20260310-0002", nil).Once()
	suite.mockReference.On("Allocate", ctx, domain.KindJournalEntry, req.IssueDate).
		Return("JE-20260310-0005", nil).Once()

	var savedID string
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		savedID = inv.InvoiceID
		return inv.Reference == "INV-20260310-0002" && inv.Status == domain.InvoiceDraft
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("MarkIssued", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.JournalCode == domain.JournalSales &&
			e.NetEffect("1200") == 400000 &&
			e.NetEffect("4000") == -400000
	})).Return(func(invoiceID string, entry domain.JournalEntry) *domain.Invoice {
		return &domain.Invoice{
			InvoiceID:     invoiceID,
			Reference:     "INV-20260310-0002",
			TotalAmount:   req.TotalAmount,
			Status:        domain.InvoiceIssued,
			PostedEntryID: entry.EntryID,
		}
	}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceIssued, invoice.Status)
	suite.NotEmpty(invoice.PostedEntryID)
	suite.Equal(savedID, invoice.InvoiceID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PostToLedger_MissingPostingAccountWritesNothing() {
	ctx := context.Background()
	req := createInvoiceRequest()
	req.PostToLedger = true

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{"1200", "4000"}).
		Return(activeAccounts("1200"), nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	var unknown *apperrors.UnknownAccountError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal("4000", unknown.Code)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "MarkIssued", mock.Anything, mock.Anything, mock.Anything)
	suite.mockReference.AssertNotCalled(suite.T(), "Allocate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestIssue_NotDraft() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(&domain.Invoice{
			InvoiceID: invoiceID,
			Status:    domain.InvoiceIssued,
		}, nil).Once()

	invoice, err := suite.service.Issue(ctx, invoiceID, "billing@example.com")

	suite.Require().Error(err)
	suite.Nil(invoice)
	var transition *apperrors.InvalidTransitionError
	suite.Require().ErrorAs(err, &transition)
	suite.Equal("ISSUED", transition.From)
	suite.Equal("ISSUED", transition.To)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *InvoiceServiceTestSuite) TestIssue_PostFailureLeavesDraft() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	issueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(&domain.Invoice{
			InvoiceID:   invoiceID,
			Status:      domain.InvoiceDraft,
			IssueDate:   issueDate,
			TotalAmount: 100000,
		}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{"1200", "4000"}).
		Return(activeAccounts("1200", "4000"), nil).Once()
	suite.mockReference.On("Allocate", ctx, domain.KindJournalEntry, issueDate).
		Return("JE-20260310-0009", nil).Once()
	suite.mockInvoiceRepo.On("MarkIssued", ctx, invoiceID, mock.AnythingOfType("domain.JournalEntry")).
		Return(nil, assert.AnError).Once()

	invoice, err := suite.service.Issue(ctx, invoiceID, "billing@example.com")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *InvoiceServiceTestSuite) TestIssue_MissingPostingAccount() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(&domain.Invoice{
			InvoiceID:   invoiceID,
			Status:      domain.InvoiceDraft,
			TotalAmount: 100000,
		}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{"1200", "4000"}).
		Return(activeAccounts("1200"), nil).Once()

	_, err := suite.service.Issue(ctx, invoiceID, "billing@example.com")

	suite.Require().Error(err)
	var unknown *apperrors.UnknownAccountError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal("4000", unknown.Code)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "MarkIssued", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_WithPayments() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := &domain.Invoice{
		InvoiceID:   invoiceID,
		Status:      domain.InvoicePartiallyPaid,
		TotalAmount: 400000,
		PaidAmount:  150000,
	}
	payments := []domain.Payment{{PaymentID: uuid.NewString(), InvoiceID: invoiceID, Amount: 150000}}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(stored, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByInvoiceID", ctx, invoiceID).Return(payments, nil).Once()

	invoice, got, err := suite.service.GetInvoice(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Equal(int64(250000), invoice.Outstanding())
	suite.Len(got, 1)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
