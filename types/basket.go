package types

import (
	"slices"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
)

// Token is the basket-unit token, or any ERC-20 the user holds.
type Token struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
	// TotalSupply is the token's total supply.
	TotalSupply fixedpoint.Decimal
	// Balance is the user's wallet balance.
	Balance fixedpoint.Decimal
}

// Asset is one basket constituent.
//
// Balance, Allowance, TotalVaultBalance, Ratio, MaxWeight and Status are
// observed on chain. The remaining fields are derived by recalc.Basket and are
// never authoritative.
type Asset struct {
	Address  common.Address
	Symbol   string
	Decimals uint8

	// Balance is the user's wallet balance of the asset.
	Balance fixedpoint.Decimal
	// Allowance is what the user has approved the basket to spend.
	Allowance fixedpoint.Decimal
	// TotalVaultBalance is the collateral the basket holds.
	TotalVaultBalance fixedpoint.Decimal
	// Ratio converts asset units to basket units, RatioScale-denominated and
	// including the 10^(18 - Decimals) adjustment.
	Ratio math.Int
	// MaxWeight is the Scale-denominated fraction of the basket this asset may represent.
	MaxWeight math.Int
	Status    AssetStatus

	BalanceInBasketUnits    fixedpoint.Decimal
	TotalVaultInBasketUnits fixedpoint.Decimal
	MaxWeightInBasketUnits  fixedpoint.Decimal
	BasketShare             fixedpoint.Decimal
	WeightBreachThreshold   fixedpoint.Decimal
	Overweight              bool
	WeightBreached          bool
}

// Basket is an immutable snapshot of a multi-asset basket. A fresh snapshot is
// built on every chain-data update; simulations always produce a new one.
type Basket struct {
	Token  Token
	Assets []Asset
	// RedemptionFee is a Scale-denominated fraction charged on redemptions.
	RedemptionFee math.Int

	Failed                        bool
	UndergoingRecollateralisation bool

	// Aggregates derived by recalc.Basket.
	AllAssetsNormal   bool
	OverweightAssets  []common.Address
	BreachedAssets    []common.Address
	BlacklistedAssets []common.Address
}

// Clone returns a copy of the basket that shares no slices with b.
func (b Basket) Clone() Basket {
	c := b
	c.Assets = slices.Clone(b.Assets)
	c.OverweightAssets = slices.Clone(b.OverweightAssets)
	c.BreachedAssets = slices.Clone(b.BreachedAssets)
	c.BlacklistedAssets = slices.Clone(b.BlacklistedAssets)
	return c
}

// IndexOf returns the position of the asset in b.Assets, or -1.
func (b Basket) IndexOf(addr common.Address) int {
	return slices.IndexFunc(b.Assets, func(a Asset) bool { return a.Address == addr })
}

// Asset returns the asset with the given address.
func (b Basket) Asset(addr common.Address) (Asset, bool) {
	i := b.IndexOf(addr)
	if i < 0 {
		return Asset{}, false
	}
	return b.Assets[i], true
}

// IsOverweight reports whether addr is in the derived overweight set.
func (b Basket) IsOverweight(addr common.Address) bool {
	return slices.Contains(b.OverweightAssets, addr)
}
