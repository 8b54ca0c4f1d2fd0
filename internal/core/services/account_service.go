package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/domain"
	portsrepo "github.com/opsledger/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/dto"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// maxHierarchyDepth bounds the parent-chain walk so a corrupted tree cannot
// loop forever.
const maxHierarchyDepth = 32

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount registers a new account in the chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ParentCode != "" {
		if err := s.validateParentChain(ctx, req.Code, req.ParentCode); err != nil {
			return nil, err
		}
	}

	account := domain.Account{
		Code:         req.Code,
		Name:         req.Name,
		AccountType:  req.AccountType,
		ParentCode:   req.ParentCode,
		CurrencyCode: req.CurrencyCode,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: req.CreatedBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCode) {
			logger.Warn("Duplicate account code", slog.String("code", req.Code))
			return nil, err
		}
		logger.Error("Failed to save account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("code", account.Code), slog.String("type", string(account.AccountType)))
	return &account, nil
}

// validateParentChain verifies the parent exists and that attaching newCode
// under it would not form a cycle.
func (s *accountService) validateParentChain(ctx context.Context, newCode, parentCode string) error {
	current := parentCode
	for depth := 0; current != ""; depth++ {
		if depth >= maxHierarchyDepth {
			return fmt.Errorf("%w: parent chain exceeds depth %d", apperrors.ErrInvalidHierarchy, maxHierarchyDepth)
		}
		if current == newCode {
			return fmt.Errorf("%w: account %s would be its own ancestor", apperrors.ErrInvalidHierarchy, newCode)
		}
		parent, err := s.accountRepo.FindAccountByCode(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrInvalidHierarchy, current)
			}
			return fmt.Errorf("failed to resolve parent account %s: %w", current, err)
		}
		current = parent.ParentCode
	}
	return nil
}

// ResolveAccount returns the account for a code.
func (s *accountService) ResolveAccount(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts returns all accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
