package services

import (
	"context"

	"github.com/opsledger/ledgerd/internal/core/domain"
	"github.com/opsledger/ledgerd/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount registers a new account. Fails with ErrDuplicateCode when
	// the code is taken and ErrInvalidHierarchy when the parent is missing or
	// would create a cycle.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// ResolveAccount returns the account for a code, or ErrNotFound.
	ResolveAccount(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns all accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
