package types

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
)

// BoostCoefficients parameterise the boost formula of a vault.
type BoostCoefficients struct {
	BoostCoeff math.LegacyDec
	PriceCoeff math.LegacyDec
}

// maxCoefficient bounds both boost coefficients so the boost arithmetic
// cannot overflow for in-range stakes.
var maxCoefficient = math.LegacyNewDec(1_000_000_000_000_000_000)

// Validate checks both coefficients are positive and at most 1e18.
func (c BoostCoefficients) Validate() error {
	if c.BoostCoeff.IsNil() || !c.BoostCoeff.IsPositive() {
		return ErrInvalidCoefficient.Wrap("boost coefficient must be positive")
	}
	if c.PriceCoeff.IsNil() || !c.PriceCoeff.IsPositive() {
		return ErrInvalidCoefficient.Wrap("price coefficient must be positive")
	}
	if c.BoostCoeff.GT(maxCoefficient) || c.PriceCoeff.GT(maxCoefficient) {
		return ErrInvalidCoefficient.Wrapf("coefficients must not exceed %s", maxCoefficient)
	}
	return nil
}

// Vault is a snapshot of a boosted staking vault from the user's perspective.
type Vault struct {
	Address common.Address
	// StakingToken.Balance is the user's unstaked wallet balance.
	StakingToken Token
	// LockToken.Balance is the user's governance-lock balance.
	LockToken Token

	// StakingAllowance is what the user has approved the vault to pull.
	StakingAllowance fixedpoint.Decimal
	// StakedBalance is the user's balance inside the vault.
	StakedBalance fixedpoint.Decimal
	TotalStaked   fixedpoint.Decimal

	// Coefficients are set when the vault exposes its own on chain.
	Coefficients *BoostCoefficients

	// Derived by recalc.Vault.
	Boost                   math.LegacyDec
	LockRequiredForMaxBoost fixedpoint.Decimal
}

// Clone returns a copy of the vault that shares no pointers with v.
func (v Vault) Clone() Vault {
	c := v
	if v.Coefficients != nil {
		coeffs := *v.Coefficients
		c.Coefficients = &coeffs
	}
	return c
}
