package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// PowFrac calculates x^(num/den) for non-negative x as (x^(1/den))^num, using
// the deterministic LegacyDec root approximation.
//
//	x^(7/8) = PowFrac(x, 7, 8)
func PowFrac(x math.LegacyDec, num, den uint64) (math.LegacyDec, error) {
	if x.IsNegative() {
		return math.LegacyDec{}, fmt.Errorf("invalid input: negative base %s", x)
	}
	if den == 0 {
		return math.LegacyDec{}, fmt.Errorf("invalid input: zero root")
	}
	if x.IsZero() {
		return math.LegacyZeroDec(), nil
	}

	root, err := x.ApproxRoot(den)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("root %d of %s: %w", den, x, err)
	}
	return root.Power(num), nil
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi math.LegacyDec) math.LegacyDec {
	return math.LegacyMinDec(math.LegacyMaxDec(x, lo), hi)
}
