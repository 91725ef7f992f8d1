package boost

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/types"
)

// Table maps a vault address to its boost coefficients. A vault missing from
// the table, and carrying none on chain, uses the fixed formula.
type Table map[common.Address]types.BoostCoefficients

// Known vault coefficients for vaults that do not expose them on chain.
var (
	SaveVaultUSD       = common.HexToAddress("0x78BefCa7de27d07DC6e71da295Cc2946681A6c7B")
	SaveVaultBTC       = common.HexToAddress("0xF38522f63f40f9Dd81aBAfD2B8EFc2EC958a3016")
	FeederVaultGUSD    = common.HexToAddress("0xAdeeDD3e5768F7882572Ad91065f93BA88343C99")
	FeederVaultBUSD    = common.HexToAddress("0xD124B55f70D374F58455c8AEdf308E52Cf2A6207")
	defaultCoefficient = map[common.Address][2]string{
		SaveVaultUSD:    {"9", "0.1"},
		SaveVaultBTC:    {"43", "4800"},
		FeederVaultGUSD: {"48", "1"},
		FeederVaultBUSD: {"48", "1"},
	}
)

// DefaultTable returns a fresh copy of the built-in coefficient table.
func DefaultTable() Table {
	t := make(Table, len(defaultCoefficient))
	for addr, pair := range defaultCoefficient {
		t[addr] = types.BoostCoefficients{
			BoostCoeff: math.LegacyMustNewDecFromStr(pair[0]),
			PriceCoeff: math.LegacyMustNewDecFromStr(pair[1]),
		}
	}
	return t
}

// With returns a copy of t with addr set to coeffs.
func (t Table) With(addr common.Address, coeffs types.BoostCoefficients) Table {
	c := make(Table, len(t)+1)
	for k, v := range t {
		c[k] = v
	}
	c[addr] = coeffs
	return c
}

// Lookup returns the coefficients for v. Coefficients the vault carries itself
// win over the table. ok is false when neither has any.
func (t Table) Lookup(v types.Vault) (coeffs types.BoostCoefficients, ok bool) {
	if v.Coefficients != nil {
		return *v.Coefficients, true
	}
	coeffs, ok = t[v.Address]
	return coeffs, ok
}

// Coefficients is Lookup returning a pointer, nil when the vault has none.
func (t Table) Coefficients(v types.Vault) *types.BoostCoefficients {
	coeffs, ok := t.Lookup(v)
	if !ok {
		return nil
	}
	return &coeffs
}
