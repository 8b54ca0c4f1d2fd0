package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/core/services"
	"github.com/opsledger/ledgerd/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func createAccountRequest() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Code:         "1000",
		Name:         "Cash at Bank",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		CreatedBy:    "ops@example.com",
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := createAccountRequest()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "1000" && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("1000", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	ctx := context.Background()
	req := createAccountRequest()
	req.Code = "1010"
	req.ParentCode = "1000"

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1000").
		Return(&domain.Account{Code: "1000", AccountType: domain.Asset, IsActive: true}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("1000", account.ParentCode)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := createAccountRequest()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicateCode).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicateCode)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingParent() {
	ctx := context.Background()
	req := createAccountRequest()
	req.Code = "1010"
	req.ParentCode = "9999"

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrInvalidHierarchy)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SelfAncestorCycle() {
	ctx := context.Background()
	req := createAccountRequest()
	req.Code = "1000"
	req.ParentCode = "1010"

	// 1010's parent chain leads back to 1000, the code being created.
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1010").
		Return(&domain.Account{Code: "1010", ParentCode: "1000", AccountType: domain.Asset, IsActive: true}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrInvalidHierarchy)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveAccount(ctx, "9999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "1000", AccountType: domain.Asset, IsActive: true},
		{Code: "4000", AccountType: domain.Income, IsActive: true},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	got, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
