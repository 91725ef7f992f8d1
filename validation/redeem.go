package validation

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
)

func checkProportional(base types.Basket, amount types.Amount) types.ValidationResult {
	// Every asset is part of a proportional redemption.
	blocked := slices.Collect(utils.Map(slices.Collect(utils.Filter(base.Assets, func(a types.Asset) bool {
		return a.Status.NotAllowedInMint()
	})), func(a types.Asset) common.Address { return a.Address }))
	if len(blocked) > 0 {
		return types.Invalid(types.ReasonBasketContainsBlacklistedAsset, blocked...)
	}

	if reason := checkAmount(amount, limit{max: base.Token.Balance, reason: types.ReasonAmountExceedsBalance}); reason != types.ReasonNone {
		return types.Invalid(reason)
	}
	return types.ValidResult()
}

func checkRedeemAssets(base types.Basket, sim simulation.Result, entries []types.AssetAmount) types.ValidationResult {
	if len(entries) == 0 {
		return types.Invalid(types.ReasonNoAssetsSelected)
	}

	if res := combine(base, entries, redeemEligible, redeemAmount); !res.Valid {
		return res
	}
	if simulation.RequiredBasketUnits(sim).GT(base.Token.Balance) {
		return types.Invalid(types.ReasonAmountExceedsBalance)
	}

	overweight := base.OverweightAssets
	chosen := addressesOf(entries)
	switch {
	case len(overweight) > 1:
		return types.Invalid(types.ReasonMustRedeemProportionally, overweight...)
	case len(overweight) == 1 && !slices.Contains(chosen, overweight[0]):
		return types.Invalid(types.ReasonMustRedeemOverweightAssets, overweight[0])
	}

	var pushed []common.Address
	for _, addr := range sim.Basket.OverweightAssets {
		if !base.IsOverweight(addr) {
			pushed = append(pushed, addr)
		}
	}
	if len(pushed) > 0 {
		return types.Invalid(types.ReasonMustBeBelowMaxWeighting, pushed...)
	}
	return types.ValidResult()
}

func redeemEligible(_ types.AssetAmount, a types.Asset) types.ReasonCode {
	if a.Status.NotAllowedInMint() {
		return types.ReasonBasketContainsBlacklistedAsset
	}
	return types.ReasonNone
}

func redeemAmount(e types.AssetAmount, a types.Asset) types.ReasonCode {
	return checkAmount(e.Amount, limit{max: a.TotalVaultBalance, reason: types.ReasonAmountExceedsVaultBalance})
}
