package types

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/provlabs/basket/fixedpoint"
)

const (
	// ModuleName defines the module name, used as error codespace and log tag.
	ModuleName = "basket"

	// MaxQuantityBits bounds every token quantity, in its own units, and every
	// basket-unit value derived from it. An in-range value times a ratio or a
	// Scale factor stays inside 256 bits.
	MaxQuantityBits = 160
	// MaxRatioBits bounds conversion ratios.
	MaxRatioBits = 96
)

var (
	// Scale is the protocol base precision, 1e18.
	Scale = fixedpoint.Scale
	// RatioScale is the precision of conversion ratios, 1e8.
	RatioScale = fixedpoint.RatioScale
	// PercentScale is one percent at Scale, 1e16.
	PercentScale = fixedpoint.PercentScale

	// WeightThresholdConstant caps the weight-breach band at 50,000 basket units (18 decimals).
	WeightThresholdConstant = fixedpoint.New(math.NewIntWithDecimal(50_000, 18), fixedpoint.ScaleDecimals)

	// MaxQuantity is the largest exact quantity, 2^160 - 1.
	MaxQuantity = math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), MaxQuantityBits)).SubRaw(1)
)

// InRange reports whether x, re-denominated to decimals, is within MaxQuantity.
func InRange(x fixedpoint.Decimal, decimals uint8) bool {
	return x.FitsAt(decimals, MaxQuantityBits)
}
