package validation

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
)

func checkMint(base types.Basket, sim simulation.Result, entries []types.AssetAmount) types.ValidationResult {
	if len(entries) == 0 {
		return types.Invalid(types.ReasonNoAssetsSelected)
	}

	if res := combine(base, entries, mintEligible, mintAmount); !res.Valid {
		return res
	}

	// Weight limit, on the simulated snapshot.
	var capped []common.Address
	for _, addr := range addressesOf(entries) {
		a, ok := sim.Basket.Asset(addr)
		if ok && a.TotalVaultInBasketUnits.GT(a.MaxWeightInBasketUnits) && !slices.Contains(capped, addr) {
			capped = append(capped, addr)
		}
	}
	if len(capped) > 0 {
		return types.Invalid(types.ReasonMustBeBelowMaxWeighting, capped...)
	}
	return types.ValidResult()
}

func mintEligible(_ types.AssetAmount, a types.Asset) types.ReasonCode {
	if a.Status.NotAllowedInMint() {
		return types.ReasonAssetNotAllowedInMint
	}
	return types.ReasonNone
}

func mintAmount(e types.AssetAmount, a types.Asset) types.ReasonCode {
	return checkAmount(e.Amount,
		limit{max: a.Balance, reason: types.ReasonAmountExceedsBalance},
		limit{max: a.Allowance, reason: types.ReasonAmountExceedsApprovedAmount},
	)
}
