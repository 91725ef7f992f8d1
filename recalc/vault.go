package recalc

import (
	"github.com/provlabs/basket/boost"
	"github.com/provlabs/basket/types"
)

// Vault returns a copy of v with the boost and the lock balance needed for the
// maximum boost recomputed. Coefficients come from the vault itself, then table.
func Vault(v types.Vault, table boost.Table) (types.Vault, error) {
	out := v.Clone()
	coeffs := table.Coefficients(out)

	b, err := boost.Calculate(out.StakedBalance, out.LockToken.Balance, coeffs)
	if err != nil {
		return types.Vault{}, err
	}
	required, err := boost.LockForMaxBoost(out.StakedBalance, out.LockToken.Decimals, coeffs)
	if err != nil {
		return types.Vault{}, err
	}

	out.Boost = b
	out.LockRequiredForMaxBoost = required
	return out, nil
}
