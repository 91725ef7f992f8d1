package simulation

import (
	"github.com/provlabs/basket/boost"
	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
)

// VaultResult is a hypothetical vault after a stake or unstake.
type VaultResult struct {
	Vault types.Vault
	// Amount is the staking-token amount actually applied.
	Amount fixedpoint.Decimal
}

// Vault simulates a stake or unstake on baseline and re-derives the boost.
func Vault(baseline types.Vault, action types.Action, mode Mode, table boost.Table) (VaultResult, error) {
	res := ApplyVault(baseline, action, mode)
	// A negative uncapped staked balance still has a defined boost: the
	// formulas treat a non-positive stake as no stake.
	v, err := recalc.Vault(res.Vault, table)
	if err != nil {
		return VaultResult{}, err
	}
	res.Vault = v
	return res, nil
}

// ApplyVault moves the staking balances of baseline according to a stake or
// unstake without touching the derived boost. Basket actions are a
// programming error here and abort.
func ApplyVault(baseline types.Vault, action types.Action, mode Mode) VaultResult {
	out := baseline.Clone()
	decimals := out.StakingToken.Decimals
	applied := fixedpoint.Zero(decimals)

	switch act := action.(type) {
	case types.Stake:
		if amount, ok := entryAmount(act.Amount, decimals, out.StakingToken.Balance, mode); ok {
			applied = amount
			out.StakingToken.Balance = out.StakingToken.Balance.Sub(applied)
			out.StakedBalance = out.StakedBalance.Add(applied)
			out.TotalStaked = out.TotalStaked.Add(applied)
		}
	case types.Unstake:
		if amount, ok := entryAmount(act.Amount, decimals, out.StakedBalance, mode); ok {
			applied = amount
			out.StakingToken.Balance = out.StakingToken.Balance.Add(applied)
			out.StakedBalance = out.StakedBalance.Sub(applied)
			out.TotalStaked = out.TotalStaked.Sub(applied)
		}
	default:
		types.Fatal("simulate vault", types.ErrUnhandledAction.Wrapf("%T", action))
	}

	return VaultResult{Vault: out, Amount: applied}
}
