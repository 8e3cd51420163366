package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an infrastructure-level failure (connectivity, constraint
// violation during commit). It is propagated unchanged and never retried here.
var ErrInternal = errors.New("internal error")

// Stable machine-readable codes carried by BadRequestError. Clients branch on
// these, not on the message text.
const (
	CodeAlreadyPosted       = "TRANSACTION_ALREADY_POSTED"
	CodeMustContainRows     = "TRANSACTION_MUST_CONTAIN_ROWS"
	CodeUnbalanced          = "TRANSACTION_UNBALANCED"
	CodeClosedFiscalYear    = "CLOSED_FISCAL_YEAR"
	CodeInvalidAccount      = "EDIT_INVALID_ACCOUNT"
	CodeInvalidEntity       = "EDIT_INVALID_ENTITY"
	CodeInvalidReference    = "EDIT_INVALID_REFERENCE"
	CodeMissingExchangeRate = "MISSING_EXCHANGE_RATE"
)

// BadRequestError is a caller-facing precondition failure with a stable code.
type BadRequestError struct {
	Code    string
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any BadRequestError.
func (e *BadRequestError) Is(target error) bool {
	return target == ErrValidation
}

// NewBadRequest creates a BadRequestError with the given code and message.
func NewBadRequest(code, message string) *BadRequestError {
	return &BadRequestError{Code: code, Message: message}
}
