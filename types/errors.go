package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest     = errors.Register(ModuleName, 2, "invalid request")
	ErrInvalidQuantity    = errors.Register(ModuleName, 3, "invalid quantity")
	ErrInvalidAddress     = errors.Register(ModuleName, 4, "invalid address")
	ErrInvalidStatus      = errors.Register(ModuleName, 5, "invalid asset status")
	ErrInvalidDecimals    = errors.Register(ModuleName, 6, "invalid decimals")
	ErrDuplicateAsset     = errors.Register(ModuleName, 7, "duplicate asset")
	ErrUnhandledAction    = errors.Register(ModuleName, 8, "unhandled action")
	ErrInvariant          = errors.Register(ModuleName, 9, "invariant violated")
	ErrBoostMath          = errors.Register(ModuleName, 10, "boost computation failed")
	ErrInvalidCoefficient = errors.Register(ModuleName, 11, "invalid boost coefficient")
)

// CriticalError wraps an error that represents a programming error inside the
// engine, such as an action variant no stage knows how to apply. It carries a
// stable, hard-coded Reason decoupled from the underlying error text.
type CriticalError struct {
	// Reason is a stable description of the broken invariant.
	Reason string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface by returning the underlying error message.
func (e *CriticalError) Error() string { return e.Reason + ": " + e.Err.Error() }

// Unwrap allows errors.Unwrap and errors.Is/As to inspect the underlying error.
func (e *CriticalError) Unwrap() error { return e.Err }

// CriticalErr constructs a new CriticalError with the given reason string and underlying error.
func CriticalErr(reason string, err error) error {
	return &CriticalError{Reason: reason, Err: err}
}

// Fatal panics with a CriticalError. A wrong number must never be returned silently.
func Fatal(reason string, err error) {
	panic(CriticalErr(reason, err))
}
