package fixedpoint_test

import (
	"math/big"
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/basket/fixedpoint"
)

func TestMulTruncate(t *testing.T) {
	third := sdkmath.NewInt(333_333_333_333_333_333)

	tests := []struct {
		name     string
		x        fixedpoint.Decimal
		y        sdkmath.Int
		expected sdkmath.Int
	}{
		{
			name:     "identity at scale",
			x:        fixedpoint.NewFromInt64(42, 18),
			y:        fixedpoint.Scale,
			expected: sdkmath.NewInt(42),
		},
		{
			name:     "truncates toward floor",
			x:        fixedpoint.NewFromInt64(10, 18),
			y:        third,
			expected: sdkmath.NewInt(3),
		},
		{
			name:     "negative floors away from zero",
			x:        fixedpoint.NewFromInt64(-10, 18),
			y:        third,
			expected: sdkmath.NewInt(-4),
		},
		{
			name:     "zero multiplier",
			x:        fixedpoint.NewFromInt64(10, 18),
			y:        sdkmath.ZeroInt(),
			expected: sdkmath.ZeroInt(),
		},
		{
			name:     "forty percent of one thousand",
			x:        fixedpoint.NewFromUnits(1000, 18),
			y:        sdkmath.NewIntWithDecimal(4, 17),
			expected: sdkmath.NewIntWithDecimal(400, 18),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.x.MulTruncate(tc.y)
			require.Equal(t, tc.expected.String(), got.Exact().String())
			require.Equal(t, tc.x.Decimals(), got.Decimals())
		})
	}
}

func TestMulTruncateLargeOperands(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 250)
	x := fixedpoint.NewFromBigInt(huge, 18)

	got := x.MulTruncate(fixedpoint.Scale)
	require.Equal(t, huge.String(), got.Exact().String(), "product above 256 bits must not overflow before the division")
}

func TestMulRatioTruncate(t *testing.T) {
	tests := []struct {
		name     string
		x        fixedpoint.Decimal
		ratio    sdkmath.Int
		expected sdkmath.Int
	}{
		{
			name:     "one to one ratio",
			x:        fixedpoint.NewFromUnits(7, 18),
			ratio:    fixedpoint.RatioScale,
			expected: sdkmath.NewIntWithDecimal(7, 18),
		},
		{
			name:     "six decimal asset lifts to basket precision",
			x:        fixedpoint.NewFromUnits(100, 6),
			ratio:    sdkmath.NewIntWithDecimal(1, 20),
			expected: sdkmath.NewIntWithDecimal(100, 18),
		},
		{
			name:     "half ratio truncates",
			x:        fixedpoint.NewFromInt64(3, 18),
			ratio:    sdkmath.NewInt(50_000_000),
			expected: sdkmath.NewInt(1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.x.MulRatioTruncate(tc.ratio)
			require.Equal(t, tc.expected.String(), got.Exact().String())
			require.Equal(t, fixedpoint.ScaleDecimals, got.Decimals())
		})
	}
}

func TestDivRatioPrecisely(t *testing.T) {
	basketUnits := fixedpoint.NewFromUnits(100, 18)

	got := basketUnits.DivRatioPrecisely(sdkmath.NewIntWithDecimal(1, 20), 6)
	require.Equal(t, sdkmath.NewIntWithDecimal(100, 6).String(), got.Exact().String())
	require.Equal(t, uint8(6), got.Decimals())

	got = basketUnits.DivRatioPrecisely(sdkmath.ZeroInt(), 6)
	require.True(t, got.IsZero(), "zero ratio short-circuits to zero")

	got = fixedpoint.NewFromInt64(1, 18).DivRatioPrecisely(sdkmath.NewInt(300_000_000), 18)
	require.Equal(t, "0", got.Exact().String(), "1 * 1e8 / 3e8 floors to zero")
}

func TestDivPrecisely(t *testing.T) {
	share := fixedpoint.NewFromUnits(25, 18).DivPrecisely(fixedpoint.NewFromUnits(100, 18))
	require.Equal(t, "0.25", share.Format(2, false))
	require.Equal(t, fixedpoint.ScaleDecimals, share.Decimals())

	share = fixedpoint.NewFromUnits(1, 6).DivPrecisely(fixedpoint.NewFromUnits(3, 6))
	require.Equal(t, "333333333333333333", share.Exact().String())

	require.True(t, fixedpoint.NewFromUnits(25, 18).DivPrecisely(fixedpoint.Zero(18)).IsZero())
}

func TestScale(t *testing.T) {
	x := fixedpoint.NewFromInt64(1234, 2)

	up := x.Scale(4)
	require.Equal(t, "123400", up.Exact().String())
	require.Equal(t, uint8(4), up.Decimals())

	down := x.Scale(0)
	require.Equal(t, "12", down.Exact().String())

	requireDecEqual(t, down, down.Scale(0), "scaling twice to the same decimals is idempotent")
	requireDecEqual(t, up.Scale(4), up)
	requireDecEqual(t, x, up.Scale(2), "scaling up then back down is lossless")
}

func TestDecimalsMismatchPanics(t *testing.T) {
	a := fixedpoint.NewFromInt64(1, 6)
	b := fixedpoint.NewFromInt64(1, 18)

	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Sub(b) })
	require.Panics(t, func() { a.GT(b) })
	require.Panics(t, func() { a.DivPrecisely(b) })
	require.NotPanics(t, func() { a.Scale(18).Add(b) })
}

func TestAddSubCompare(t *testing.T) {
	a := fixedpoint.NewFromUnits(5, 18)
	b := fixedpoint.NewFromUnits(8, 18)

	requireDecEqual(t, fixedpoint.NewFromUnits(13, 18), a.Add(b))
	diff := a.Sub(b)
	require.True(t, diff.IsNegative())
	requireDecEqual(t, fixedpoint.NewFromUnits(3, 18), diff.Neg())
	require.True(t, a.LT(b))
	require.True(t, b.GTE(a))
	requireDecEqual(t, a, fixedpoint.Min(a, b))
	requireDecEqual(t, b, fixedpoint.Max(a, b))
	require.False(t, a.Equal(a.Scale(6)), "equal values at different decimals are not Equal")
}

func TestZeroValueIsUsable(t *testing.T) {
	var d fixedpoint.Decimal
	require.True(t, d.IsZero())
	require.Equal(t, "0", d.String())
	requireDecEqual(t, fixedpoint.NewFromInt64(1, 0), d.Add(fixedpoint.NewFromInt64(1, 0)))
}

func TestMulNeverRoundsUp(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	scale := fixedpoint.Scale.BigInt()
	ratioScale := fixedpoint.RatioScale.BigInt()

	for i := 0; i < 500; i++ {
		a := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 120))
		b := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 80))
		x := fixedpoint.NewFromBigInt(a, 18)
		product := new(big.Int).Mul(a, b)

		got := x.MulTruncate(sdkmath.NewIntFromBigInt(b)).Exact().BigInt()
		require.LessOrEqual(t, new(big.Int).Mul(got, scale).Cmp(product), 0)
		require.Positive(t, new(big.Int).Mul(new(big.Int).Add(got, big.NewInt(1)), scale).Cmp(product))

		got = x.MulRatioTruncate(sdkmath.NewIntFromBigInt(b)).Exact().BigInt()
		require.LessOrEqual(t, new(big.Int).Mul(got, ratioScale).Cmp(product), 0)
	}
}

func requireDecEqual(t *testing.T, expected, actual fixedpoint.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, expected.Decimals(), actual.Decimals(), msgAndArgs...)
	require.Equal(t, expected.Exact().String(), actual.Exact().String(), msgAndArgs...)
}
