package simulation

import (
	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
)

// mint moves each entered amount from the user's wallet into the basket vault
// and credits the user with amount.mulRatioTruncate(ratio) basket units.
func mint(base types.Basket, entries []types.AssetAmount, mode Mode) Result {
	out := base.Clone()
	decimals := out.Token.Decimals
	minted := fixedpoint.Zero(decimals)
	var deltas []AssetDelta

	for _, e := range entries {
		i := out.IndexOf(e.Asset)
		if i < 0 {
			continue
		}
		a := out.Assets[i]

		amount, ok := entryAmount(e.Amount, a.Decimals, a.Balance, mode)
		if !ok {
			continue
		}
		units := amount.MulRatioTruncate(a.Ratio).Scale(decimals)

		a.Balance = a.Balance.Sub(amount)
		a.TotalVaultBalance = a.TotalVaultBalance.Add(amount)
		out.Assets[i] = a

		minted = minted.Add(units)
		deltas = append(deltas, AssetDelta{Asset: a.Address, Amount: amount})
	}

	out.Token.TotalSupply = out.Token.TotalSupply.Add(minted)
	out.Token.Balance = out.Token.Balance.Add(minted)

	return Result{
		Basket:      out,
		BasketUnits: minted,
		Fee:         fixedpoint.Zero(decimals),
		Deltas:      deltas,
	}
}
