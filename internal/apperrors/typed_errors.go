package apperrors

import "fmt"

// UnbalancedEntryError reports a journal entry whose debit and credit totals
// differ. Both totals are carried so callers can display the discrepancy
// without re-deriving it.
type UnbalancedEntryError struct {
	TotalDebit  int64
	TotalCredit int64
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry does not balance: total debit %d, total credit %d", e.TotalDebit, e.TotalCredit)
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// UnknownAccountError reports an entry line referencing an account code that
// does not exist in the registry.
type UnknownAccountError struct {
	Code string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account code %q", e.Code)
}

func (e *UnknownAccountError) Unwrap() error { return ErrValidation }

// InvalidTransitionError reports an invoice status transition that the state
// machine does not permit.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrConflict }

// OverpaymentError reports a payment attempt exceeding the invoice's
// outstanding balance.
type OverpaymentError struct {
	Outstanding int64
	Attempted   int64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %d exceeds outstanding balance %d", e.Attempted, e.Outstanding)
}

func (e *OverpaymentError) Unwrap() error { return ErrValidation }

// AmountMismatchError reports a reconciliation attempt where the journal
// entry's net effect on the account differs from the statement line.
type AmountMismatchError struct {
	Expected int64
	Actual   int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: statement expects %d, entry nets %d", e.Expected, e.Actual)
}

func (e *AmountMismatchError) Unwrap() error { return ErrValidation }
