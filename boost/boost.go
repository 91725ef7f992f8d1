package boost

import (
	"cosmossdk.io/math"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
)

// Protocol boost bounds and constants.
var (
	MinBoost = math.LegacyOneDec()
	MaxBoost = math.LegacyNewDec(3)

	// LegacyMultiplier is the lock-balance multiplier of the fixed formula.
	LegacyMultiplier = math.LegacyNewDec(6)

	// Floor is the constant term of the coefficient formula.
	Floor = math.LegacyNewDecWithPrec(95, 2)
	// MinDeposit is the staked balance the coefficient formula requires, in whole tokens.
	MinDeposit = math.LegacyOneDec()
	// LockCap caps the lock balance counted by the coefficient formula, in whole tokens.
	LockCap = math.LegacyNewDec(600_000)
)

// The stake exponent is 7/8 in both families.
const (
	expNum uint64 = 7
	expDen uint64 = 8
)

// CalculateLegacy returns the fixed-formula boost:
//
//	boost = clamp(1 + 6 * lock / stake^(7/8), 1, 3)
//
// A non-positive stake or lock yields MinBoost.
func CalculateLegacy(stake, lock math.LegacyDec) (math.LegacyDec, error) {
	if !stake.IsPositive() || !lock.IsPositive() {
		return MinBoost, nil
	}
	denom, err := utils.PowFrac(stake, expNum, expDen)
	if err != nil {
		return math.LegacyDec{}, types.ErrBoostMath.Wrap(err.Error())
	}
	if denom.IsZero() {
		return MaxBoost, nil
	}
	raw := MinBoost.Add(LegacyMultiplier.Mul(lock).Quo(denom))
	return utils.Clamp(raw, MinBoost, MaxBoost), nil
}

// LegacyLockForMaxBoost returns the lock balance at which CalculateLegacy reaches MaxBoost:
//
//	lock = (3 - 1) / 6 * stake^(7/8)
func LegacyLockForMaxBoost(stake math.LegacyDec) (math.LegacyDec, error) {
	if !stake.IsPositive() {
		return math.LegacyZeroDec(), nil
	}
	pow, err := utils.PowFrac(stake, expNum, expDen)
	if err != nil {
		return math.LegacyDec{}, types.ErrBoostMath.Wrap(err.Error())
	}
	return MaxBoost.Sub(MinBoost).Mul(pow).Quo(LegacyMultiplier), nil
}

// CalculateWithCoefficients returns the coefficient-parameterised boost:
//
//	boost = clamp(0.95 + boostCoeff * min(lock, LockCap) / (stake * priceCoeff)^(7/8), 1, 3)
//
// It yields MinBoost unless stake > MinDeposit and lock > 0.
func CalculateWithCoefficients(stake, lock math.LegacyDec, c types.BoostCoefficients) (math.LegacyDec, error) {
	if err := c.Validate(); err != nil {
		return math.LegacyDec{}, err
	}
	if !stake.GT(MinDeposit) || !lock.IsPositive() {
		return MinBoost, nil
	}
	denom, err := utils.PowFrac(stake.Mul(c.PriceCoeff), expNum, expDen)
	if err != nil {
		return math.LegacyDec{}, types.ErrBoostMath.Wrap(err.Error())
	}
	if denom.IsZero() {
		return MaxBoost, nil
	}
	counted := math.LegacyMinDec(lock, LockCap)
	raw := Floor.Add(c.BoostCoeff.Mul(counted).Quo(denom))
	return utils.Clamp(raw, MinBoost, MaxBoost), nil
}

// LockForMaxBoostWithCoefficients returns the lock balance at which
// CalculateWithCoefficients reaches MaxBoost, capped at LockCap:
//
//	lock = min(LockCap, (3 - 0.95) * (stake * priceCoeff)^(7/8) / boostCoeff)
//
// A stake of at most MinDeposit yields zero: no lock lifts its boost above MinBoost.
func LockForMaxBoostWithCoefficients(stake math.LegacyDec, c types.BoostCoefficients) (math.LegacyDec, error) {
	if err := c.Validate(); err != nil {
		return math.LegacyDec{}, err
	}
	if !stake.GT(MinDeposit) {
		return math.LegacyZeroDec(), nil
	}
	pow, err := utils.PowFrac(stake.Mul(c.PriceCoeff), expNum, expDen)
	if err != nil {
		return math.LegacyDec{}, types.ErrBoostMath.Wrap(err.Error())
	}
	lock := MaxBoost.Sub(Floor).Mul(pow).Quo(c.BoostCoeff)
	return math.LegacyMinDec(lock, LockCap), nil
}

// Calculate picks the formula family: the coefficient formula when coeffs is
// set, the fixed formula otherwise.
func Calculate(stake, lock fixedpoint.Decimal, coeffs *types.BoostCoefficients) (math.LegacyDec, error) {
	if coeffs == nil {
		return CalculateLegacy(ToDec(stake), ToDec(lock))
	}
	return CalculateWithCoefficients(ToDec(stake), ToDec(lock), *coeffs)
}

// LockForMaxBoost returns the lock balance, at lockDecimals, needed for MaxBoost.
// The result is floored to lockDecimals.
func LockForMaxBoost(stake fixedpoint.Decimal, lockDecimals uint8, coeffs *types.BoostCoefficients) (fixedpoint.Decimal, error) {
	var (
		lock math.LegacyDec
		err  error
	)
	if coeffs == nil {
		lock, err = LegacyLockForMaxBoost(ToDec(stake))
	} else {
		lock, err = LockForMaxBoostWithCoefficients(ToDec(stake), *coeffs)
	}
	if err != nil {
		return fixedpoint.Decimal{}, err
	}
	return FromDec(lock, lockDecimals), nil
}

// ToDec converts a token quantity into a LegacyDec of whole tokens.
// Digits beyond 18 decimals are truncated.
func ToDec(d fixedpoint.Decimal) math.LegacyDec {
	scaled := d.Scale(math.LegacyPrecision)
	return math.LegacyNewDecFromBigIntWithPrec(scaled.Exact().BigInt(), math.LegacyPrecision)
}

// FromDec converts whole tokens back into a quantity at the given decimals.
func FromDec(d math.LegacyDec, decimals uint8) fixedpoint.Decimal {
	if d.IsNil() {
		return fixedpoint.Zero(decimals)
	}
	return fixedpoint.NewFromBigInt(d.BigInt(), math.LegacyPrecision).Scale(decimals)
}
