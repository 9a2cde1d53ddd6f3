package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation lost to a concurrent update or hit a
// uniqueness constraint (e.g. duplicate voucher number under concurrent creation).
var ErrConflict = errors.New("conflicting update")

// ErrInternal indicates an unexpected storage or serialization fault.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientStock indicates a stock deduction would drive a metal
// counter negative. The operation leaves state unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInsufficientBalance indicates a settlement requires more fine weight or
// pending credit than the ledger currently carries. State unchanged.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidStockAmount indicates a negative or non-finite stock magnitude
// was passed by the caller; it is never treated as an adjustment in reverse.
var ErrInvalidStockAmount = fmt.Errorf("%w: invalid stock amount", ErrValidation)

// ErrAlreadyReversed indicates the record is already in a terminal state
// (cancelled or deleted) and cannot be reversed again.
var ErrAlreadyReversed = fmt.Errorf("%w: record already reversed", ErrConflict)

// ErrWindowExpired indicates the reversal time window has elapsed. Deletion
// may still proceed without touching balances; edits are rejected outright.
var ErrWindowExpired = errors.New("reversal window expired")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human readable message for the handler layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
