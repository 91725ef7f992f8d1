package validation

import "github.com/provlabs/basket/types"

// Vault validates a stake or unstake. A nil baseline means the vault snapshot
// has not loaded yet.
func Vault(baseline *types.Vault, action types.Action) types.ValidationResult {
	if baseline == nil || action == nil || !types.Touched(action) {
		return types.NotReady()
	}

	var reason types.ReasonCode
	switch act := action.(type) {
	case types.Stake:
		reason = checkAmount(act.Amount,
			limit{max: baseline.StakingToken.Balance, reason: types.ReasonAmountExceedsBalance},
			limit{max: baseline.StakingAllowance, reason: types.ReasonAmountExceedsApprovedAmount},
		)
	case types.Unstake:
		reason = checkAmount(act.Amount, limit{max: baseline.StakedBalance, reason: types.ReasonAmountExceedsBalance})
	default:
		types.Fatal("validate vault", types.ErrUnhandledAction.Wrapf("%T", action))
	}

	if reason != types.ReasonNone {
		return types.Invalid(reason)
	}
	return types.ValidResult()
}
