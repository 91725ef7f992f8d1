// Package validation decides whether a proposed action may be submitted.
//
// Rules run in a fixed priority order and the first failure wins: readiness,
// the basket-level gate, asset eligibility, amount well-formedness, then the
// weight rules that compare the baseline with the simulated snapshot.
package validation

import (
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
)

// Basket validates action against baseline, simulating it uncapped. A nil
// baseline means the snapshot has not loaded yet.
func Basket(baseline *types.Basket, action types.Action) types.ValidationResult {
	if !Ready(baseline, action) {
		return types.NotReady()
	}
	base := recalc.Basket(*baseline)
	return Check(base, simulation.Basket(base, action, simulation.Uncapped), action)
}

// Ready reports whether there is anything to validate yet.
func Ready(baseline *types.Basket, action types.Action) bool {
	return baseline != nil && action != nil && types.Touched(action)
}

// Check runs every basket rule given the recalculated baseline and the
// recalculated uncapped simulation of action.
func Check(base types.Basket, sim simulation.Result, action types.Action) types.ValidationResult {
	if action == nil || !types.Touched(action) {
		return types.NotReady()
	}
	kind := action.Kind()
	if !kind.IsMint() && !kind.IsRedeem() {
		types.Fatal("validate basket", types.ErrUnhandledAction.Wrapf("%T", action))
	}
	if res, failed := basketGate(base, kind); failed {
		return res
	}

	entries := types.Entries(action)
	if kind == types.ActionMintMulti || kind == types.ActionRedeemMulti {
		entries = selected(entries)
	}

	switch act := action.(type) {
	case types.RedeemProportional:
		return checkProportional(base, act.Amount)
	case types.MintSingle, types.MintMulti:
		return checkMint(base, sim, entries)
	default:
		return checkRedeemAssets(base, sim, entries)
	}
}

// basketGate halts everything on a failed basket and allows only
// proportional redemption while the basket is recollateralising.
func basketGate(b types.Basket, kind types.ActionKind) (types.ValidationResult, bool) {
	switch {
	case b.Failed:
		return types.Invalid(types.ReasonBasketFailed), true
	case b.UndergoingRecollateralisation && kind != types.ActionRedeemProportional:
		return types.Invalid(types.ReasonBasketUndergoingRecollateralisation), true
	}
	return types.ValidResult(), false
}
