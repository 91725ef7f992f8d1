package fixedpoint

// Cmp compares x and y. Decimals must match.
func (x Decimal) Cmp(y Decimal) int {
	x.mustMatch(y, "cmp")
	return x.int().BigInt().Cmp(y.int().BigInt())
}

func (x Decimal) GT(y Decimal) bool  { return x.Cmp(y) > 0 }
func (x Decimal) GTE(y Decimal) bool { return x.Cmp(y) >= 0 }
func (x Decimal) LT(y Decimal) bool  { return x.Cmp(y) < 0 }
func (x Decimal) LTE(y Decimal) bool { return x.Cmp(y) <= 0 }

// Equal reports whether x and y have the same decimals and exact value.
func (x Decimal) Equal(y Decimal) bool {
	return x.decimals == y.decimals && x.int().Equal(y.int())
}

func (x Decimal) IsZero() bool     { return x.int().IsZero() }
func (x Decimal) IsPositive() bool { return x.int().IsPositive() }
func (x Decimal) IsNegative() bool { return x.int().IsNegative() }

// Min returns the smaller of x and y.
func Min(x, y Decimal) Decimal {
	if x.LTE(y) {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Decimal) Decimal {
	if x.GTE(y) {
		return x
	}
	return y
}
