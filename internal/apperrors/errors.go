package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates a programming-logic failure, not a user input error.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a non-positive, wrongly-precise, or out-of-range
// monetary amount. Raised before any entries are constructed.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrSelfSettlement indicates a settlement where payer and recipient are the
// same party.
var ErrSelfSettlement = errors.New("settlement parties must differ")

// ErrOverSettlement indicates a settlement that exceeds the outstanding debt
// or runs in the wrong direction. Enforced before posting.
var ErrOverSettlement = errors.New("settlement exceeds outstanding debt")

// ErrUnbalanced indicates an entry set whose deltas do not sum to zero.
// A trigger is a logic bug, never a user input error.
var ErrUnbalanced = errors.New("entry set does not balance to zero")

// ErrMissingMirror indicates a receivable entry with no exactly-negated
// payable counterpart in the same entry set.
var ErrMissingMirror = errors.New("receivable entry lacks a mirrored payable")
