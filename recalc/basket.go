// Package recalc derives the economic state of basket and vault snapshots.
// Every function is pure: it returns a new snapshot and never mutates its input.
package recalc

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
)

// Basket returns a copy of b with every per-asset derived field and every
// basket-level aggregate recomputed from the observed fields. It is idempotent.
func Basket(b types.Basket) types.Basket {
	out := b.Clone()
	decimals := out.Token.Decimals
	supply := out.Token.TotalSupply.Scale(decimals)
	threshold := WeightBreachThreshold(supply)

	// Every asset reads the same supply and threshold, computed once above.
	for i := range out.Assets {
		out.Assets[i] = Asset(out.Assets[i], supply, threshold)
	}
	return Aggregates(out)
}

// WeightBreachThreshold is min(1% of supply, WeightThresholdConstant), at the supply's decimals.
func WeightBreachThreshold(supply fixedpoint.Decimal) fixedpoint.Decimal {
	onePercent := supply.MulTruncate(types.PercentScale)
	return fixedpoint.Min(onePercent, types.WeightThresholdConstant.Scale(supply.Decimals()))
}

// Asset derives the basket-unit fields of a, given the basket supply and the
// weight-breach threshold, both at basket decimals.
func Asset(a types.Asset, supply, threshold fixedpoint.Decimal) types.Asset {
	decimals := supply.Decimals()

	a.BalanceInBasketUnits = a.Balance.MulRatioTruncate(a.Ratio).Scale(decimals)
	a.MaxWeightInBasketUnits = supply.MulTruncate(a.MaxWeight).Scale(decimals)
	a.TotalVaultInBasketUnits = a.TotalVaultBalance.MulRatioTruncate(a.Ratio).Scale(decimals)

	a.Overweight = supply.IsPositive() && a.TotalVaultInBasketUnits.GT(a.MaxWeightInBasketUnits)

	if supply.IsPositive() {
		a.BasketShare = a.TotalVaultInBasketUnits.DivPrecisely(supply)
	} else {
		a.BasketShare = fixedpoint.Zero(fixedpoint.ScaleDecimals)
	}

	a.WeightBreachThreshold = threshold
	lowerBound := fixedpoint.Max(fixedpoint.Zero(decimals), a.MaxWeightInBasketUnits.Sub(threshold))
	a.WeightBreached = lowerBound.LT(a.TotalVaultInBasketUnits) &&
		a.TotalVaultInBasketUnits.LTE(a.MaxWeightInBasketUnits)

	return a
}

// Aggregates recomputes the basket-level flags and id sets from the per-asset fields.
func Aggregates(b types.Basket) types.Basket {
	out := b.Clone()
	out.AllAssetsNormal = utils.All(out.Assets, func(a types.Asset) bool { return a.Status == types.StatusNormal })
	out.OverweightAssets = addresses(out.Assets, func(a types.Asset) bool { return a.Overweight })
	out.BreachedAssets = addresses(out.Assets, func(a types.Asset) bool { return a.WeightBreached })
	out.BlacklistedAssets = addresses(out.Assets, func(a types.Asset) bool { return a.Status == types.StatusBlacklisted })
	return out
}

func addresses(assets []types.Asset, fn func(types.Asset) bool) []common.Address {
	return slices.Collect(utils.Map(slices.Collect(utils.Filter(assets, fn)), func(a types.Asset) common.Address {
		return a.Address
	}))
}
