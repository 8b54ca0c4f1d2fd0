package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrDuplicateCode indicates an attempt to create an account with a code that already exists.
var ErrDuplicateCode = errors.New("account code already exists")

// ErrDuplicateReference indicates an attempt to reuse a reference that has already been recorded.
var ErrDuplicateReference = errors.New("reference already exists")

// ErrInvalidHierarchy indicates a parent account that is missing or would form a cycle.
var ErrInvalidHierarchy = errors.New("invalid account hierarchy")

// ErrMalformedLine indicates an entry line that does not carry exactly one nonzero side.
var ErrMalformedLine = errors.New("entry line must have exactly one nonzero side")

// ErrInvalidAmount indicates a monetary amount outside its permitted range.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidState indicates an operation attempted against an entity in the wrong state.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrAlreadyReconciled indicates a statement line or journal entry that is already matched.
var ErrAlreadyReconciled = errors.New("already reconciled")

// ErrAllocationExhausted indicates the daily reference sequence space has run out.
var ErrAllocationExhausted = errors.New("reference sequence exhausted for day")
