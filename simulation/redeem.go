package simulation

import (
	"cosmossdk.io/math"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
)

// redeemProportional burns amount basket units. The fee stays in basket units;
// the remainder is paid out of every asset pro rata to its basket-unit vault
// balance, converted back with divRatioPrecisely.
func redeemProportional(base types.Basket, amount types.Amount, mode Mode) Result {
	out := base.Clone()
	decimals := out.Token.Decimals

	burn, ok := entryAmount(amount, decimals, out.Token.Balance, mode)
	if !ok {
		return Result{Basket: out, BasketUnits: fixedpoint.Zero(decimals), Fee: fixedpoint.Zero(decimals)}
	}
	fee := burn.MulTruncate(feeRate(out))
	remainder := burn.Sub(fee)

	total := math.ZeroInt()
	for _, a := range base.Assets {
		total = total.Add(a.TotalVaultInBasketUnits.Exact())
	}

	deltas := make([]AssetDelta, 0, len(out.Assets))
	for i, a := range out.Assets {
		share, err := utils.ProRata(remainder.Exact(), a.TotalVaultInBasketUnits.Exact(), total)
		if err != nil {
			types.Fatal("proportional share", types.ErrInvariant.Wrapf("asset %s: %v", a.Address.Hex(), err))
		}
		paid := fixedpoint.New(share, decimals).DivRatioPrecisely(a.Ratio, a.Decimals)
		if mode == Capped {
			paid = clampNonNegative(fixedpoint.Min(paid, a.TotalVaultBalance))
		}

		a.TotalVaultBalance = a.TotalVaultBalance.Sub(paid)
		a.Balance = a.Balance.Add(paid)
		out.Assets[i] = a
		deltas = append(deltas, AssetDelta{Asset: a.Address, Amount: paid})
	}

	out.Token.TotalSupply = out.Token.TotalSupply.Sub(remainder)
	out.Token.Balance = out.Token.Balance.Sub(burn)

	return Result{Basket: out, BasketUnits: burn, Fee: fee, Deltas: deltas}
}

// redeemAssets is the reverse of mint: each entered asset amount leaves the
// vault for the user's wallet, and the user burns its basket-unit value plus
// the fee on it.
func redeemAssets(base types.Basket, entries []types.AssetAmount, mode Mode) Result {
	out := base.Clone()
	decimals := out.Token.Decimals
	rate := feeRate(out)
	burned := fixedpoint.Zero(decimals)
	fees := fixedpoint.Zero(decimals)
	available := out.Token.Balance
	var deltas []AssetDelta

	for _, e := range entries {
		i := out.IndexOf(e.Asset)
		if i < 0 {
			continue
		}
		a := out.Assets[i]

		amount, ok := entryAmount(e.Amount, a.Decimals, a.TotalVaultBalance, mode)
		if !ok {
			continue
		}
		units := amount.MulRatioTruncate(a.Ratio).Scale(decimals)
		if mode == Capped {
			if affordable := affordableUnits(available, rate); units.GT(affordable) {
				amount = affordable.DivRatioPrecisely(a.Ratio, a.Decimals)
				units = amount.MulRatioTruncate(a.Ratio).Scale(decimals)
			}
		}
		fee := units.MulTruncate(rate)
		available = available.Sub(units.Add(fee))

		a.TotalVaultBalance = a.TotalVaultBalance.Sub(amount)
		a.Balance = a.Balance.Add(amount)
		out.Assets[i] = a

		burned = burned.Add(units)
		fees = fees.Add(fee)
		deltas = append(deltas, AssetDelta{Asset: a.Address, Amount: amount})
	}

	out.Token.TotalSupply = out.Token.TotalSupply.Sub(burned)
	out.Token.Balance = out.Token.Balance.Sub(burned.Add(fees))

	return Result{Basket: out, BasketUnits: burned, Fee: fees, Deltas: deltas}
}

// RequiredBasketUnits is the basket-unit balance a single or multi redemption
// consumes: the value of the assets plus the fee on it.
func RequiredBasketUnits(res Result) fixedpoint.Decimal {
	return res.BasketUnits.Add(res.Fee)
}

// affordableUnits is the largest u with u + u*rate <= available.
func affordableUnits(available fixedpoint.Decimal, rate math.Int) fixedpoint.Decimal {
	if !available.IsPositive() {
		return fixedpoint.Zero(available.Decimals())
	}
	units, err := utils.ProRata(available.Exact(), types.Scale, types.Scale.Add(rate))
	if err != nil {
		types.Fatal("affordable units", types.ErrInvariant.Wrap(err.Error()))
	}
	return fixedpoint.New(units, available.Decimals())
}

func feeRate(b types.Basket) math.Int {
	if b.RedemptionFee.IsNil() {
		return math.ZeroInt()
	}
	return b.RedemptionFee
}
