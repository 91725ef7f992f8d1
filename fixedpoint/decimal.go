package fixedpoint

import (
	"math/big"

	"cosmossdk.io/math"
)

// ScaleDecimals is the number of decimals of the protocol base precision.
const ScaleDecimals uint8 = 18

// Protocol scale constants. These must match the on-chain contracts verbatim.
var (
	// Scale is the base precision of the protocol, 1e18.
	Scale = math.NewIntWithDecimal(1, int(ScaleDecimals))
	// RatioScale is the precision of asset to basket conversion ratios, 1e8.
	RatioScale = math.NewInt(100_000_000)
	// PercentScale is one percent expressed at Scale, 1e16.
	PercentScale = math.NewIntWithDecimal(1, 16)
)

// Decimal is an immutable fixed-point number representing exact / 10^decimals.
//
// Two values can only be combined or compared when their decimals match; use
// Scale first. Every operation returns a new value.
type Decimal struct {
	exact    math.Int
	decimals uint8
}

// New returns a Decimal with the given exact integer and decimals.
func New(exact math.Int, decimals uint8) Decimal {
	if exact.IsNil() {
		exact = math.ZeroInt()
	}
	return Decimal{exact: exact, decimals: decimals}
}

// NewFromInt64 returns a Decimal whose exact integer is v.
func NewFromInt64(v int64, decimals uint8) Decimal {
	return New(math.NewInt(v), decimals)
}

// NewFromBigInt returns a Decimal whose exact integer is a copy of v.
func NewFromBigInt(v *big.Int, decimals uint8) Decimal {
	if v == nil {
		return Zero(decimals)
	}
	return New(math.NewIntFromBigInt(v), decimals)
}

// NewFromUnits returns whole units expressed at the given decimals, i.e. units * 10^decimals.
func NewFromUnits(units int64, decimals uint8) Decimal {
	return New(math.NewIntWithDecimal(units, int(decimals)), decimals)
}

// Zero returns a zero value at the given decimals.
func Zero(decimals uint8) Decimal {
	return New(math.ZeroInt(), decimals)
}

// Exact returns the underlying integer.
func (x Decimal) Exact() math.Int {
	return x.int()
}

// Decimals returns the number of decimal places of x.
func (x Decimal) Decimals() uint8 {
	return x.decimals
}

func (x Decimal) int() math.Int {
	if x.exact.IsNil() {
		return math.ZeroInt()
	}
	return x.exact
}

// Add returns x + y. Decimals must match.
func (x Decimal) Add(y Decimal) Decimal {
	x.mustMatch(y, "add")
	return New(x.int().Add(y.int()), x.decimals)
}

// Sub returns x - y. Decimals must match. The result may be negative.
func (x Decimal) Sub(y Decimal) Decimal {
	x.mustMatch(y, "sub")
	return New(x.int().Sub(y.int()), x.decimals)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	return New(x.int().Neg(), x.decimals)
}

// MulTruncate returns floor(exact * y / Scale). Used to multiply by a Scale-denominated fraction.
func (x Decimal) MulTruncate(y math.Int) Decimal {
	return New(mulQuoFloor(x.int(), y, Scale), x.decimals)
}

// MulRatioTruncate converts an asset-unit quantity into basket units:
// floor(exact * ratio / RatioScale).
//
// Ratios carry the on-chain decimal adjustment (1e8 * 10^(18 - assetDecimals)),
// so the result is always at ScaleDecimals.
func (x Decimal) MulRatioTruncate(ratio math.Int) Decimal {
	return New(mulQuoFloor(x.int(), ratio, RatioScale), ScaleDecimals)
}

// DivRatioPrecisely converts a basket-unit quantity back into asset units:
// floor(exact * RatioScale / ratio), labelled with the asset's decimals.
// x is brought to ScaleDecimals first. A zero ratio yields zero.
func (x Decimal) DivRatioPrecisely(ratio math.Int, assetDecimals uint8) Decimal {
	if ratio.IsNil() || ratio.IsZero() {
		return Zero(assetDecimals)
	}
	base := x.Scale(ScaleDecimals)
	return New(mulQuoFloor(base.int(), RatioScale, ratio), assetDecimals)
}

// DivPrecisely returns floor(exact * Scale / y.exact) as a ScaleDecimals
// fraction. Decimals must match. Division by zero yields zero.
func (x Decimal) DivPrecisely(y Decimal) Decimal {
	x.mustMatch(y, "divPrecisely")
	if y.IsZero() {
		return Zero(ScaleDecimals)
	}
	return New(mulQuoFloor(x.int(), Scale, y.int()), ScaleDecimals)
}

// Scale re-denominates x to newDecimals. Scaling down truncates trailing digits.
func (x Decimal) Scale(newDecimals uint8) Decimal {
	switch {
	case newDecimals == x.decimals:
		return x
	case newDecimals > x.decimals:
		factor := math.NewIntWithDecimal(1, int(newDecimals-x.decimals))
		return New(x.int().Mul(factor), newDecimals)
	default:
		factor := math.NewIntWithDecimal(1, int(x.decimals-newDecimals))
		return New(x.int().Quo(factor), newDecimals)
	}
}

// FitsAt reports whether |x|, re-denominated to decimals, needs at most bits
// bits. Unlike Scale it never overflows, so it can vet untrusted values.
func (x Decimal) FitsAt(decimals uint8, bits int) bool {
	v := new(big.Int).Abs(x.int().BigInt())
	switch {
	case decimals > x.decimals:
		v.Mul(v, pow10(decimals-x.decimals))
	case decimals < x.decimals:
		v.Quo(v, pow10(x.decimals-decimals))
	}
	return v.BitLen() <= bits
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// mulQuoFloor computes floor(a * b / c) without an intermediate overflow.
func mulQuoFloor(a, b, c math.Int) math.Int {
	a, b, c = nz(a), nz(b), nz(c)
	if c.IsZero() {
		return math.ZeroInt()
	}
	p := new(big.Int).Mul(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(floorQuo(p, c.BigInt()))
}

func nz(i math.Int) math.Int {
	if i.IsNil() {
		return math.ZeroInt()
	}
	return i
}

func floorQuo(num, den *big.Int) *big.Int {
	q, m := new(big.Int).QuoRem(num, den, new(big.Int))
	if m.Sign() != 0 && (m.Sign() < 0) != (den.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

func (x Decimal) mustMatch(y Decimal, op string) {
	if x.decimals != y.decimals {
		panic(ErrDecimalsMismatch.Wrapf("%s: %d != %d", op, x.decimals, y.decimals))
	}
}
