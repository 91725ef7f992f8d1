package simulation

import (
	"cosmossdk.io/math"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
	"github.com/provlabs/basket/utils"
)

// BasketDecimals is the decimals of every basket token built here.
const BasketDecimals = fixedpoint.ScaleDecimals

// RatioFor returns the 1:1 conversion ratio for an asset with the given
// decimals: RatioScale * 10^(18 - decimals).
func RatioFor(decimals uint8) math.Int {
	if decimals <= fixedpoint.ScaleDecimals {
		return math.NewIntWithDecimal(1, int(8+fixedpoint.ScaleDecimals-decimals))
	}
	return types.RatioScale.Quo(math.NewIntWithDecimal(1, int(decimals-fixedpoint.ScaleDecimals)))
}

// AssetOption customises an asset built by NewAsset.
type AssetOption func(*types.Asset)

func WithBalance(text string) AssetOption {
	return func(a *types.Asset) { a.Balance = fixedpoint.MustParse(text, a.Decimals) }
}

func WithAllowance(text string) AssetOption {
	return func(a *types.Asset) { a.Allowance = fixedpoint.MustParse(text, a.Decimals) }
}

func WithVaultBalance(text string) AssetOption {
	return func(a *types.Asset) { a.TotalVaultBalance = fixedpoint.MustParse(text, a.Decimals) }
}

// WithMaxWeight sets the max weight from a fraction such as "0.4".
func WithMaxWeight(fraction string) AssetOption {
	return func(a *types.Asset) { a.MaxWeight = fixedpoint.MustParse(fraction, fixedpoint.ScaleDecimals).Exact() }
}

func WithRatio(ratio math.Int) AssetOption {
	return func(a *types.Asset) { a.Ratio = ratio }
}

func WithStatus(status types.AssetStatus) AssetOption {
	return func(a *types.Asset) { a.Status = status }
}

// NewAsset builds a normal asset whose address derives from symbol, with a
// 1:1 ratio, a 100% max weight, and zero balances unless options say otherwise.
// An unlimited allowance is the default.
func NewAsset(symbol string, decimals uint8, opts ...AssetOption) types.Asset {
	a := types.Asset{
		Address:           utils.AddressFromSeed(symbol),
		Symbol:            symbol,
		Decimals:          decimals,
		Balance:           fixedpoint.Zero(decimals),
		Allowance:         fixedpoint.New(types.MaxQuantity, decimals),
		TotalVaultBalance: fixedpoint.Zero(decimals),
		Ratio:             RatioFor(decimals),
		MaxWeight:         types.Scale,
		Status:            types.StatusNormal,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewBasket builds and recalculates a basket with the given supply and user
// balance, both whole basket units.
func NewBasket(supply, balance string, assets ...types.Asset) types.Basket {
	b := types.Basket{
		Token: types.Token{
			Address:     utils.AddressFromSeed("basket"),
			Symbol:      "mBASKET",
			Decimals:    BasketDecimals,
			TotalSupply: fixedpoint.MustParse(supply, BasketDecimals),
			Balance:     fixedpoint.MustParse(balance, BasketDecimals),
		},
		Assets:        assets,
		RedemptionFee: math.ZeroInt(),
	}
	return recalc.Basket(b)
}

// NewVault builds a vault over 18 decimal staking and lock tokens, quantities
// in whole tokens. The allowance equals the wallet balance.
func NewVault(wallet, staked, lock string) types.Vault {
	return types.Vault{
		Address: utils.AddressFromSeed("vault"),
		StakingToken: types.Token{
			Address:  utils.AddressFromSeed("stake"),
			Symbol:   "STK",
			Decimals: BasketDecimals,
			Balance:  fixedpoint.MustParse(wallet, BasketDecimals),
		},
		LockToken: types.Token{
			Address:  utils.AddressFromSeed("lock"),
			Symbol:   "vLOCK",
			Decimals: BasketDecimals,
			Balance:  fixedpoint.MustParse(lock, BasketDecimals),
		},
		StakingAllowance: fixedpoint.MustParse(wallet, BasketDecimals),
		StakedBalance:    fixedpoint.MustParse(staked, BasketDecimals),
		TotalStaked:      fixedpoint.MustParse(staked, BasketDecimals),
	}
}
