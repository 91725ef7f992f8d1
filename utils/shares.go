package utils

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// ProRata returns the share of amount that corresponds to part out of total.
//
// Formula (integer, floor):
//
//	if total == 0:
//	    share = 0
//	else:
//	    share = floor( amount * part / total )
//
// The multiplication happens first, in unbounded precision, so the result is
// exact up to the single floor. amount may be negative; part and total may not.
func ProRata(amount, part, total math.Int) (math.Int, error) {
	if part.IsNegative() || total.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if amount.IsZero() || total.IsZero() {
		return math.ZeroInt(), nil
	}

	num := new(big.Int).Mul(amount.BigInt(), part.BigInt())
	// Euclidean division floors for a positive divisor.
	return math.NewIntFromBigInt(new(big.Int).Div(num, total.BigInt())), nil
}
