package simulation

import (
	"fmt"
	"math/big"
	"math/rand"

	"cosmossdk.io/math"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
)

const (
	MaxNumAssets        = 5
	MaxVaultBalance     = 1_000_000 // whole tokens
	MaxUserBalance      = 100_000   // whole tokens
	MinMaxWeightPercent = 20
	ChanceOfAbnormal    = 8  // 1 in X
	ChanceOfRedeemFee   = 2  // 1 in X
	MaxRedeemFeeBps     = 50 // basis points
)

var assetDecimalOptions = []uint8{6, 8, 18}

// RandomBasket creates a consistent random basket: the supply equals the
// basket-unit value of the collateral.
func RandomBasket(r *rand.Rand) types.Basket {
	n := r.Intn(MaxNumAssets) + 1
	assets := make([]types.Asset, 0, n)
	supply := fixedpoint.Zero(BasketDecimals)

	for i := 0; i < n; i++ {
		a := RandomAsset(r, fmt.Sprintf("asset%d-%d", i, r.Int63()))
		supply = supply.Add(a.TotalVaultBalance.MulRatioTruncate(a.Ratio))
		assets = append(assets, a)
	}

	fee := math.ZeroInt()
	if r.Intn(ChanceOfRedeemFee) == 0 {
		// 1 bp is 1e14 at Scale.
		fee = math.NewInt(r.Int63n(MaxRedeemFeeBps) + 1).Mul(math.NewIntWithDecimal(1, 14))
	}

	balance := fixedpoint.NewFromBigInt(randomBig(r, supply.Exact()), BasketDecimals)
	b := NewBasket("0", "0", assets...)
	b.Token.TotalSupply = supply
	b.Token.Balance = balance
	b.RedemptionFee = fee
	return recalc.Basket(b)
}

// RandomAsset creates a random asset with a 1:1 ratio.
func RandomAsset(r *rand.Rand, symbol string) types.Asset {
	decimals := assetDecimalOptions[r.Intn(len(assetDecimalOptions))]
	maxWeight := math.NewInt(int64(MinMaxWeightPercent + r.Intn(101-MinMaxWeightPercent))).Mul(types.PercentScale)

	a := NewAsset(symbol, decimals)
	a.MaxWeight = maxWeight
	a.TotalVaultBalance = randomQuantity(r, MaxVaultBalance, decimals)
	a.Balance = randomQuantity(r, MaxUserBalance, decimals)
	a.Allowance = a.Balance
	if r.Intn(ChanceOfAbnormal) == 0 {
		a.Status = types.AssetStatus(r.Intn(int(types.StatusFailed)) + 1)
	}
	return a
}

// RandomMint returns a single-asset mint of up to the user's balance.
func RandomMint(r *rand.Rand, b types.Basket) types.Action {
	a := b.Assets[r.Intn(len(b.Assets))]
	amount := fixedpoint.NewFromBigInt(randomBig(r, a.Balance.Exact()), a.Decimals)
	return types.MintSingle{Asset: a.Address, Amount: types.AmountOf(amount)}
}

// RandomRedeem returns a proportional, single or multi redemption.
func RandomRedeem(r *rand.Rand, b types.Basket) types.Action {
	switch r.Intn(3) {
	case 0:
		amount := fixedpoint.NewFromBigInt(randomBig(r, b.Token.Balance.Exact()), BasketDecimals)
		return types.RedeemProportional{Amount: types.AmountOf(amount)}
	case 1:
		a := b.Assets[r.Intn(len(b.Assets))]
		return types.RedeemSingle{Asset: a.Address, Amount: types.AmountOf(randomShare(r, a.TotalVaultBalance))}
	default:
		outputs := make([]types.AssetAmount, 0, len(b.Assets))
		for _, a := range b.Assets {
			if r.Intn(2) == 0 {
				continue
			}
			outputs = append(outputs, types.AssetAmount{Asset: a.Address, Amount: types.AmountOf(randomShare(r, a.TotalVaultBalance))})
		}
		return types.RedeemMulti{Outputs: outputs}
	}
}

func randomQuantity(r *rand.Rand, maxWhole int64, decimals uint8) fixedpoint.Decimal {
	return fixedpoint.New(math.NewInt(r.Int63n(maxWhole)).Mul(math.NewIntWithDecimal(1, int(decimals))), decimals)
}

// randomShare returns up to a tenth of x.
func randomShare(r *rand.Rand, x fixedpoint.Decimal) fixedpoint.Decimal {
	return fixedpoint.NewFromBigInt(randomBig(r, x.Exact().QuoRaw(10)), x.Decimals())
}

// randomBig returns a uniform value in [0, upper].
func randomBig(r *rand.Rand, upper math.Int) *big.Int {
	if !upper.IsPositive() {
		return new(big.Int)
	}
	return new(big.Int).Rand(r, new(big.Int).Add(upper.BigInt(), big.NewInt(1)))
}
