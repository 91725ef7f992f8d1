// Package simulation applies a proposed action to a snapshot and re-derives
// the hypothetical state, leaving the baseline untouched.
package simulation

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
)

// Mode selects how amounts are applied.
type Mode int

const (
	// Uncapped applies amounts exactly as entered, even past zero. Validation uses it.
	Uncapped Mode = iota
	// Capped clamps amounts to what the user and the vaults can actually cover.
	// It is only for previews and never feeds validation.
	Capped
)

func (m Mode) String() string {
	if m == Capped {
		return "capped"
	}
	return "uncapped"
}

// AssetDelta is the asset amount moved for one asset, in asset units. For a
// mint it leaves the user's wallet; for a redemption it arrives there.
type AssetDelta struct {
	Asset  common.Address
	Amount fixedpoint.Decimal
}

// Result is a hypothetical basket and what the action moved to get there.
type Result struct {
	// Basket is the recalculated hypothetical snapshot.
	Basket types.Basket
	// BasketUnits is the basket-unit amount minted or burned, before fees.
	BasketUnits fixedpoint.Decimal
	// Fee is the redemption fee in basket units.
	Fee fixedpoint.Decimal
	// Deltas lists the asset amounts moved, in basket asset order for
	// proportional redemptions and in entered order otherwise.
	Deltas []AssetDelta
}

// Basket simulates action on baseline and recalculates the result.
func Basket(baseline types.Basket, action types.Action, mode Mode) Result {
	res := Apply(recalc.Basket(baseline), action, mode)
	res.Basket = recalc.Basket(res.Basket)
	return res
}

// Apply moves the observed quantities of a recalculated baseline according to
// action. Derived fields of the returned basket still describe the baseline
// until it is run through recalc.Basket. Vault actions are a programming error
// here and abort.
func Apply(base types.Basket, action types.Action, mode Mode) Result {
	switch act := action.(type) {
	case types.MintSingle, types.MintMulti:
		return mint(base, types.Entries(action), mode)
	case types.RedeemProportional:
		return redeemProportional(base, act.Amount, mode)
	case types.RedeemSingle, types.RedeemMulti:
		return redeemAssets(base, types.Entries(action), mode)
	default:
		types.Fatal("simulate basket", types.ErrUnhandledAction.Wrapf("%T", action))
		return Result{}
	}
}

// entryAmount re-denominates an entered amount to decimals. Unset and
// non-positive amounts are skipped; validation rejects them. Amounts beyond
// types.MaxQuantity are never scaled: capped mode clamps them to limit and
// uncapped mode skips them.
func entryAmount(amount types.Amount, decimals uint8, limit fixedpoint.Decimal, mode Mode) (fixedpoint.Decimal, bool) {
	if !amount.Set || !amount.Value.IsPositive() {
		return fixedpoint.Decimal{}, false
	}
	if !types.InRange(amount.Value, decimals) {
		if mode == Capped {
			return clampNonNegative(limit), true
		}
		return fixedpoint.Decimal{}, false
	}
	v := amount.Value.Scale(decimals)
	if mode == Capped {
		v = clampNonNegative(fixedpoint.Min(v, limit))
	}
	return v, true
}

// clampNonNegative returns max(x, 0).
func clampNonNegative(x fixedpoint.Decimal) fixedpoint.Decimal {
	return fixedpoint.Max(x, fixedpoint.Zero(x.Decimals()))
}
