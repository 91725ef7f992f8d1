package engine

import (
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/validation"
)

// VaultOutcome is everything the presentation layer needs for one vault action.
type VaultOutcome struct {
	Baseline   types.Vault
	Simulated  simulation.VaultResult
	Preview    simulation.VaultResult
	Validation types.ValidationResult
}

// EvaluateVault runs a stake or unstake against snapshot through the same
// stage order as EvaluateBasket. Errors come only from boost re-derivation,
// such as invalid on-chain coefficients.
func (e *Engine) EvaluateVault(snapshot *types.Vault, action types.Action) (VaultOutcome, error) {
	if snapshot == nil {
		e.logger.Debug("vault action not ready", "stage", "initialize")
		return VaultOutcome{Validation: types.NotReady()}, nil
	}

	// initialize
	baseline, err := recalc.Vault(*snapshot, e.boosts)
	if err != nil {
		e.logger.Error("failed to derive vault boost", "vault", snapshot.Address.Hex(), "err", err)
		return VaultOutcome{}, err
	}
	out := VaultOutcome{Baseline: baseline}
	if action == nil || !types.Touched(action) {
		e.logger.Debug("vault action not ready", "stage", "initialize")
		out.Validation = types.NotReady()
		return out, nil
	}

	// apply-action, re-derive-aggregates
	out.Simulated = simulation.ApplyVault(baseline, action, simulation.Uncapped)
	if out.Simulated.Vault, err = recalc.Vault(out.Simulated.Vault, e.boosts); err != nil {
		return VaultOutcome{}, err
	}

	// simulate
	if out.Preview, err = simulation.Vault(baseline, action, simulation.Capped, e.boosts); err != nil {
		return VaultOutcome{}, err
	}

	// validate
	out.Validation = validation.Vault(&baseline, action)

	e.logger.Debug("evaluated vault action",
		"action", action.Kind().String(),
		"valid", out.Validation.Valid,
		"reason", out.Validation.Reason.String(),
		"boost", out.Preview.Vault.Boost.String(),
	)
	return out, nil
}
