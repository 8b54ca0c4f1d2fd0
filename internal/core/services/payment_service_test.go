package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/core/services"
	"github.com/opsledger/ledgerd/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPaymentRepo *MockPaymentRepository
	mockAccountRepo *MockAccountRepository
	mockReference   *MockReferenceService
	mockRenderer    *MockReceiptRenderer
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReference = new(MockReferenceService)
	suite.mockRenderer = new(MockReceiptRenderer)
	suite.service = services.NewPaymentService(suite.mockInvoiceRepo, suite.mockPaymentRepo, suite.mockAccountRepo, suite.mockReference, suite.mockRenderer, testPosting)
}

func issuedInvoice(invoiceID string) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:   invoiceID,
		Reference:   "INV-20260310-0001",
		SubjectRef:  "client-acme",
		TotalAmount: 400000,
		PaidAmount:  0,
		Status:      domain.InvoiceIssued,
	}
}

func recordPaymentRequest() dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		Amount:                150000,
		Method:                domain.MethodBank,
		SettlementAccountCode: "1000",
		PerformedBy:           "cashier@example.com",
		ExternalReference:     "bank-txn-991",
	}
}

// expectReferenceAllocations wires the three references a payment consumes.
func (suite *PaymentServiceTestSuite) expectReferenceAllocations() {
	suite.mockReference.On("Allocate", mock.Anything, domain.KindPayment, mock.AnythingOfType("time.Time")).
		Return("PAY-20260312-0001", nil).Once()
	suite.mockReference.On("Allocate", mock.Anything, domain.KindReceipt, mock.AnythingOfType("time.Time")).
		Return("RCP-20260312-0001", nil).Once()
	suite.mockReference.On("Allocate", mock.Anything, domain.KindJournalEntry, mock.AnythingOfType("time.Time")).
		Return("JE-20260312-0004", nil).Once()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := recordPaymentRequest()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").
		Return(&domain.Account{Code: "1000", AccountType: domain.Asset, IsActive: true}, nil).Once()
	suite.expectReferenceAllocations()

	record := &portsrepo.PaymentRecord{}
	suite.mockPaymentRepo.On("CreatePaymentAtomic", ctx,
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.Reference == "PAY-20260312-0001" && p.Amount == 150000 && p.InvoiceID == invoiceID
		}),
		mock.MatchedBy(func(r domain.Receipt) bool {
			return r.Reference == "RCP-20260312-0001" && r.IssuedTo == "client-acme"
		}),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.JournalCode == domain.JournalCashReceipts &&
				e.NetEffect("1000") == 150000 &&
				e.NetEffect("1200") == -150000
		})).
		Return(func(payment domain.Payment, receipt domain.Receipt, entry domain.JournalEntry) *portsrepo.PaymentRecord {
			record.Payment = payment
			record.Receipt = receipt
			record.Entry = entry
			record.Invoice = domain.Invoice{
				InvoiceID:   invoiceID,
				TotalAmount: 400000,
				PaidAmount:  150000,
				Status:      domain.InvoicePartiallyPaid,
			}
			return record
		}, nil).Once()
	suite.mockRenderer.On("Render", ctx, mock.AnythingOfType("domain.Receipt"), mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Invoice")).
		Return("./artifacts/receipts/RCP-20260312-0001.txt", nil).Once()
	suite.mockPaymentRepo.On("SetReceiptArtifactPath", ctx, mock.AnythingOfType("string"), "./artifacts/receipts/RCP-20260312-0001.txt").
		Return(nil).Once()

	resp, err := suite.service.RecordPayment(ctx, invoiceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("PAY-20260312-0001", resp.PaymentReference)
	suite.Equal("RCP-20260312-0001", resp.ReceiptReference)
	suite.Equal(string(domain.InvoicePartiallyPaid), resp.InvoiceStatus)
	suite.Equal(int64(250000), resp.Outstanding)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Overpayment() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := recordPaymentRequest()
	req.Amount = 500000

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()

	resp, err := suite.service.RecordPayment(ctx, invoiceID, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	var overpayment *apperrors.OverpaymentError
	suite.Require().ErrorAs(err, &overpayment)
	suite.Equal(int64(400000), overpayment.Outstanding)
	suite.Equal(int64(500000), overpayment.Attempted)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePaymentAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DraftInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	invoice := issuedInvoice(invoiceID)
	invoice.Status = domain.InvoiceDraft
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(invoice, nil).Once()

	_, err := suite.service.RecordPayment(ctx, invoiceID, recordPaymentRequest())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := recordPaymentRequest()
	req.Amount = -100

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()

	_, err := suite.service.RecordPayment(ctx, invoiceID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownSettlementAccount() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, invoiceID, recordPaymentRequest())

	suite.Require().Error(err)
	var unknown *apperrors.UnknownAccountError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal("1000", unknown.Code)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InactiveSettlementAccount() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").
		Return(&domain.Account{Code: "1000", AccountType: domain.Asset, IsActive: false}, nil).Once()

	_, err := suite.service.RecordPayment(ctx, invoiceID, recordPaymentRequest())

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInactiveAccount)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RendererFailureIsNonFatal() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").
		Return(&domain.Account{Code: "1000", AccountType: domain.Asset, IsActive: true}, nil).Once()
	suite.expectReferenceAllocations()
	suite.mockPaymentRepo.On("CreatePaymentAtomic", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Receipt"), mock.AnythingOfType("domain.JournalEntry")).
		Return(&portsrepo.PaymentRecord{
			Payment: domain.Payment{PaymentID: uuid.NewString(), Reference: "PAY-20260312-0001"},
			Receipt: domain.Receipt{ReceiptID: uuid.NewString(), Reference: "RCP-20260312-0001"},
			Invoice: domain.Invoice{InvoiceID: invoiceID, TotalAmount: 400000, PaidAmount: 400000, Status: domain.InvoicePaid},
		}, nil).Once()
	suite.mockRenderer.On("Render", ctx, mock.AnythingOfType("domain.Receipt"), mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Invoice")).
		Return("", assert.AnError).Once()

	resp, err := suite.service.RecordPayment(ctx, invoiceID, recordPaymentRequest())

	suite.Require().NoError(err)
	suite.Equal(string(domain.InvoicePaid), resp.InvoiceStatus)
	suite.Equal(int64(0), resp.Outstanding)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SetReceiptArtifactPath", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRegenerateReceipt_Success() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	receiptID := uuid.NewString()
	invoiceID := uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, InvoiceID: invoiceID, Amount: 150000}, nil).Once()
	suite.mockPaymentRepo.On("FindReceiptByPaymentID", ctx, paymentID).
		Return(&domain.Receipt{ReceiptID: receiptID, PaymentID: paymentID, Reference: "RCP-20260312-0001"}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockRenderer.On("Render", ctx, mock.AnythingOfType("domain.Receipt"), mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Invoice")).
		Return("./artifacts/receipts/RCP-20260312-0001.txt", nil).Once()
	suite.mockPaymentRepo.On("SetReceiptArtifactPath", ctx, receiptID, "./artifacts/receipts/RCP-20260312-0001.txt").
		Return(nil).Once()

	receipt, err := suite.service.RegenerateReceipt(ctx, paymentID)

	suite.Require().NoError(err)
	suite.Equal("./artifacts/receipts/RCP-20260312-0001.txt", receipt.ArtifactPath)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegenerateReceipt_RenderFailure() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	invoiceID := uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, InvoiceID: invoiceID}, nil).Once()
	suite.mockPaymentRepo.On("FindReceiptByPaymentID", ctx, paymentID).
		Return(&domain.Receipt{ReceiptID: uuid.NewString(), PaymentID: paymentID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(issuedInvoice(invoiceID), nil).Once()
	suite.mockRenderer.On("Render", ctx, mock.AnythingOfType("domain.Receipt"), mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Invoice")).
		Return("", assert.AnError).Once()

	receipt, err := suite.service.RegenerateReceipt(ctx, paymentID)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, assert.AnError)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SetReceiptArtifactPath", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRegenerateReceipt_PaymentNotFound() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RegenerateReceipt(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
