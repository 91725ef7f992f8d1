package fixedpoint

import (
	"encoding/json"
	"strings"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// maxDecimals bounds the decimals accepted by Parse; ERC-20 decimals fit a uint8
// but nothing in the protocol goes past 36.
const maxDecimals = 36

// maxDigits is the number of decimal digits in 2^256.
const maxDigits = 78

// Parse interprets a human decimal string such as "12.32" at the given decimals.
// Fractional digits beyond decimals are truncated, never rounded. Thousands
// separators are ignored. Exponent notation is rejected.
func Parse(text string, decimals uint8) (Decimal, error) {
	if decimals > maxDecimals {
		return Decimal{}, ErrDecimalsRange.Wrapf("%d", decimals)
	}
	clean := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if clean == "" {
		return Decimal{}, ErrMalformedDecimal.Wrap("empty input")
	}
	if strings.ContainsAny(clean, "eE") {
		return Decimal{}, ErrMalformedDecimal.Wrapf("%q: exponent notation", text)
	}
	// Bound the size before shopspring materialises the value.
	intPart, _, _ := strings.Cut(strings.TrimLeft(clean, "+-"), ".")
	if len(strings.TrimLeft(intPart, "0"))+int(decimals) > maxDigits {
		return Decimal{}, ErrMalformedDecimal.Wrapf("%q exceeds %d digits", text, maxDigits)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Decimal{}, ErrMalformedDecimal.Wrapf("%q: %v", text, err)
	}
	exact := d.Shift(int32(decimals)).Truncate(0).BigInt()
	if exact.BitLen() > math.MaxBitLen {
		return Decimal{}, ErrMalformedDecimal.Wrapf("%q exceeds %d bits", text, math.MaxBitLen)
	}
	return NewFromBigInt(exact, decimals), nil
}

// MaybeParse is the non-failing form of Parse: ok is false for malformed input.
func MaybeParse(text string, decimals uint8) (Decimal, bool) {
	d, err := Parse(text, decimals)
	if err != nil {
		return Decimal{}, false
	}
	return d, true
}

// MustParse is Parse that panics on malformed input.
func MustParse(text string, decimals uint8) Decimal {
	d, err := Parse(text, decimals)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders x with exactly places fractional digits, floored (never rounded).
func (x Decimal) Format(places uint8, thousands bool) string {
	d := decimal.NewFromBigInt(x.int().BigInt(), -int32(x.decimals)).RoundFloor(int32(places))
	s := d.StringFixed(int32(places))
	if !thousands {
		return s
	}
	return groupThousands(s)
}

// String renders x at its full precision.
func (x Decimal) String() string {
	return x.Format(x.decimals, false)
}

// Float64 returns an approximation of x for charting. Never use it for arithmetic.
func (x Decimal) Float64() float64 {
	return decimal.NewFromBigInt(x.int().BigInt(), -int32(x.decimals)).InexactFloat64()
}

// MarshalJSON encodes x as a full-precision decimal string.
func (x Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
