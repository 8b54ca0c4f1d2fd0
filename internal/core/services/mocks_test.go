package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalEntryRepository is a mock type for the JournalEntryRepositoryFacade interface
type MockJournalEntryRepository struct {
	mock.Mock
}

func (m *MockJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListEntriesInRange(ctx context.Context, filter portsrepo.EntryRangeFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Allows tests to echo the (UUID-bearing) entry back with adjustments.
	if fn, ok := args.Get(0).(func(domain.JournalEntry) *domain.JournalEntry); ok {
		return fn(entry), args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// MockReferenceCounterRepository is a mock type for the ReferenceCounterRepository interface
type MockReferenceCounterRepository struct {
	mock.Mock
}

func (m *MockReferenceCounterRepository) NextSequence(ctx context.Context, kind domain.ReferenceKind, day time.Time) (int64, error) {
	args := m.Called(ctx, kind, day)
	return args.Get(0).(int64), args.Error(1)
}

// MockReferenceService is a mock type for the ReferenceSvcFacade interface
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) Allocate(ctx context.Context, kind domain.ReferenceKind, date time.Time) (string, error) {
	args := m.Called(ctx, kind, date)
	return args.String(0), args.Error(1)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkIssued(ctx context.Context, invoiceID string, entry domain.JournalEntry) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(string, domain.JournalEntry) *domain.Invoice); ok {
		return fn(invoiceID, entry), args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindReceiptByPaymentID(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CreatePaymentAtomic(ctx context.Context, payment domain.Payment, receipt domain.Receipt, entry domain.JournalEntry) (*portsrepo.PaymentRecord, error) {
	args := m.Called(ctx, payment, receipt, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(domain.Payment, domain.Receipt, domain.JournalEntry) *portsrepo.PaymentRecord); ok {
		return fn(payment, receipt, entry), args.Error(1)
	}
	return args.Get(0).(*portsrepo.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) SetReceiptArtifactPath(ctx context.Context, receiptID string, artifactPath string) error {
	args := m.Called(ctx, receiptID, artifactPath)
	return args.Error(0)
}

// MockStatementRepository is a mock type for the StatementRepositoryFacade interface
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) FindStatementLineByID(ctx context.Context, lineID string) (*domain.BankStatementLine, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankStatementLine), args.Error(1)
}

func (m *MockStatementRepository) ListUnreconciled(ctx context.Context, accountCode string) ([]domain.BankStatementLine, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankStatementLine), args.Error(1)
}

func (m *MockStatementRepository) SaveStatementLine(ctx context.Context, line domain.BankStatementLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockStatementRepository) MarkReconciled(ctx context.Context, lineID string, entryID string) error {
	args := m.Called(ctx, lineID, entryID)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TrialBalance(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// MockReceiptRenderer is a mock type for the ReceiptArtifactRenderer interface
type MockReceiptRenderer struct {
	mock.Mock
}

func (m *MockReceiptRenderer) Render(ctx context.Context, receipt domain.Receipt, payment domain.Payment, invoice domain.Invoice) (string, error) {
	args := m.Called(ctx, receipt, payment, invoice)
	return args.String(0), args.Error(1)
}
