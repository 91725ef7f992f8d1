package validation

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
)

// limit is an upper bound an amount must not exceed.
type limit struct {
	max    fixedpoint.Decimal
	reason types.ReasonCode
}

// checkAmount returns the first reason a is unacceptable, or ReasonNone.
func checkAmount(a types.Amount, limits ...limit) types.ReasonCode {
	switch {
	case !a.Set:
		return types.ReasonAmountMustBeSet
	case !a.Value.IsPositive():
		return types.ReasonAmountMustBeGreaterThanZero
	}
	for _, l := range limits {
		if !types.InRange(a.Value, l.max.Decimals()) || a.Value.Scale(l.max.Decimals()).GT(l.max) {
			return l.reason
		}
	}
	return types.ReasonNone
}

// entryCheck returns the reason one asset entry fails, or ReasonNone.
type entryCheck func(e types.AssetAmount, a types.Asset) types.ReasonCode

// combine runs checks in order over every entry; an entry's reason is that of
// its first failing check, and AssetReasons keeps it for every failing entry.
// The overall reason comes from the entry that failed the earliest check,
// ties going to the first such entry. Entries naming an unknown asset fail
// with AssetNotInBasket ahead of any check.
func combine(b types.Basket, entries []types.AssetAmount, checks ...entryCheck) types.ValidationResult {
	var (
		first   types.AssetAmount
		worst   = types.ReasonNone
		stage   = len(checks) + 1
		reasons map[common.Address]types.ReasonCode
	)
	for _, e := range entries {
		reason, at := entryReason(b, e, checks)
		if reason == types.ReasonNone {
			continue
		}
		if at < stage {
			first, worst, stage = e, reason, at
		}
		if reasons == nil {
			reasons = make(map[common.Address]types.ReasonCode)
		}
		if _, seen := reasons[e.Asset]; !seen {
			reasons[e.Asset] = reason
		}
	}
	if worst == types.ReasonNone {
		return types.ValidResult()
	}
	res := types.Invalid(worst, first.Asset)
	res.AssetReasons = reasons
	return res
}

// entryReason returns the first failing reason for e and the index of the
// check that produced it, 0 being the basket membership check.
func entryReason(b types.Basket, e types.AssetAmount, checks []entryCheck) (types.ReasonCode, int) {
	a, ok := b.Asset(e.Asset)
	if !ok {
		return types.ReasonAssetNotInBasket, 0
	}
	for i, check := range checks {
		if reason := check(e, a); reason != types.ReasonNone {
			return reason, i + 1
		}
	}
	return types.ReasonNone, 0
}

// selected returns the rows of a multi-asset form that are part of the
// selection: touched and not cleared.
func selected(entries []types.AssetAmount) []types.AssetAmount {
	out := make([]types.AssetAmount, 0, len(entries))
	for _, e := range entries {
		if e.Amount.Touched && strings.TrimSpace(e.Amount.Text) != "" {
			out = append(out, e)
		}
	}
	return out
}

func addressesOf(entries []types.AssetAmount) []common.Address {
	out := make([]common.Address, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Asset)
	}
	return out
}
