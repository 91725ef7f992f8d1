package fixedpoint

import "cosmossdk.io/errors"

// Codespace is the error codespace for fixed-point arithmetic.
const Codespace = "fixedpoint"

var (
	ErrMalformedDecimal = errors.Register(Codespace, 2, "malformed decimal string")
	ErrDecimalsMismatch = errors.Register(Codespace, 3, "decimals mismatch")
	ErrDecimalsRange    = errors.Register(Codespace, 4, "decimals out of range")
)
