package cmd

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/boost"
	"github.com/provlabs/basket/engine"
	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/simulation"
	"github.com/provlabs/basket/types"
)

type assetReport struct {
	Address                 common.Address     `json:"address"`
	Symbol                  string             `json:"symbol"`
	Status                  types.AssetStatus  `json:"status"`
	VaultBalance            fixedpoint.Decimal `json:"vaultBalance"`
	TotalVaultInBasketUnits fixedpoint.Decimal `json:"totalVaultInBasketUnits"`
	MaxWeightInBasketUnits  fixedpoint.Decimal `json:"maxWeightInBasketUnits"`
	BalanceInBasketUnits    fixedpoint.Decimal `json:"balanceInBasketUnits"`
	BasketShare             fixedpoint.Decimal `json:"basketShare"`
	// SharePercent approximates BasketShare for charting.
	SharePercent          float64            `json:"sharePercent"`
	WeightBreachThreshold fixedpoint.Decimal `json:"weightBreachThreshold"`
	Overweight            bool               `json:"overweight"`
	WeightBreached        bool               `json:"weightBreached"`
}

type basketReport struct {
	Symbol            string             `json:"symbol"`
	TotalSupply       fixedpoint.Decimal `json:"totalSupply"`
	Balance           fixedpoint.Decimal `json:"balance"`
	AllAssetsNormal   bool               `json:"allAssetsNormal"`
	OverweightAssets  []common.Address   `json:"overweightAssets"`
	BreachedAssets    []common.Address   `json:"breachedAssets"`
	BlacklistedAssets []common.Address   `json:"blacklistedAssets"`
	Assets            []assetReport      `json:"assets"`
}

func newBasketReport(b types.Basket) basketReport {
	r := basketReport{
		Symbol:            b.Token.Symbol,
		TotalSupply:       b.Token.TotalSupply,
		Balance:           b.Token.Balance,
		AllAssetsNormal:   b.AllAssetsNormal,
		OverweightAssets:  nonNil(b.OverweightAssets),
		BreachedAssets:    nonNil(b.BreachedAssets),
		BlacklistedAssets: nonNil(b.BlacklistedAssets),
		Assets:            make([]assetReport, 0, len(b.Assets)),
	}
	for _, a := range b.Assets {
		r.Assets = append(r.Assets, assetReport{
			Address:                 a.Address,
			Symbol:                  a.Symbol,
			Status:                  a.Status,
			VaultBalance:            a.TotalVaultBalance,
			TotalVaultInBasketUnits: a.TotalVaultInBasketUnits,
			MaxWeightInBasketUnits:  a.MaxWeightInBasketUnits,
			BalanceInBasketUnits:    a.BalanceInBasketUnits,
			BasketShare:             a.BasketShare,
			SharePercent:            a.BasketShare.Float64() * 100,
			WeightBreachThreshold:   a.WeightBreachThreshold,
			Overweight:              a.Overweight,
			WeightBreached:          a.WeightBreached,
		})
	}
	return r
}

type validationReport struct {
	Ready          bool                                `json:"ready"`
	Valid          bool                                `json:"valid"`
	Reason         types.ReasonCode                    `json:"reason,omitempty"`
	AffectedAssets []common.Address                    `json:"affectedAssets,omitempty"`
	AssetReasons   map[common.Address]types.ReasonCode `json:"assetReasons,omitempty"`
}

func newValidationReport(r types.ValidationResult) validationReport {
	return validationReport{
		Ready:          r.Ready(),
		Valid:          r.Valid,
		Reason:         r.Reason,
		AffectedAssets: r.AffectedAssets,
		AssetReasons:   r.AssetReasons,
	}
}

type deltaReport struct {
	Asset  common.Address     `json:"asset"`
	Amount fixedpoint.Decimal `json:"amount"`
}

type previewReport struct {
	BasketUnits fixedpoint.Decimal `json:"basketUnits"`
	Fee         fixedpoint.Decimal `json:"fee"`
	Deltas      []deltaReport      `json:"deltas"`
	Basket      basketReport       `json:"basket"`
}

func newPreviewReport(res simulation.Result) previewReport {
	deltas := make([]deltaReport, 0, len(res.Deltas))
	for _, d := range res.Deltas {
		deltas = append(deltas, deltaReport{Asset: d.Asset, Amount: d.Amount})
	}
	return previewReport{
		BasketUnits: res.BasketUnits,
		Fee:         res.Fee,
		Deltas:      deltas,
		Basket:      newBasketReport(res.Basket),
	}
}

type basketOutcomeReport struct {
	Validation validationReport `json:"validation"`
	Preview    *previewReport   `json:"preview,omitempty"`
}

func newBasketOutcomeReport(out engine.BasketOutcome) basketOutcomeReport {
	r := basketOutcomeReport{Validation: newValidationReport(out.Validation)}
	if out.Validation.Ready() {
		preview := newPreviewReport(out.Preview)
		r.Preview = &preview
	}
	return r
}

type vaultReport struct {
	Vault                   common.Address     `json:"vault"`
	Formula                 string             `json:"formula"`
	Staked                  fixedpoint.Decimal `json:"staked"`
	TotalStaked             fixedpoint.Decimal `json:"totalStaked"`
	Lock                    fixedpoint.Decimal `json:"lock"`
	Boost                   math.LegacyDec     `json:"boost"`
	LockRequiredForMaxBoost fixedpoint.Decimal `json:"lockRequiredForMaxBoost"`
}

func newVaultReport(v types.Vault, table boost.Table) vaultReport {
	formula := "legacy"
	if table.Coefficients(v) != nil {
		formula = "coefficients"
	}
	return vaultReport{
		Vault:                   v.Address,
		Formula:                 formula,
		Staked:                  v.StakedBalance,
		TotalStaked:             v.TotalStaked,
		Lock:                    v.LockToken.Balance,
		Boost:                   v.Boost,
		LockRequiredForMaxBoost: v.LockRequiredForMaxBoost,
	}
}

type requiredReport struct {
	Vault    common.Address     `json:"vault"`
	Staked   fixedpoint.Decimal `json:"staked"`
	Lock     fixedpoint.Decimal `json:"lock"`
	Required fixedpoint.Decimal `json:"required"`
}

type vaultOutcomeReport struct {
	Validation validationReport    `json:"validation"`
	Preview    *vaultReport        `json:"preview,omitempty"`
	Applied    *fixedpoint.Decimal `json:"applied,omitempty"`
}

func newVaultOutcomeReport(out engine.VaultOutcome, table boost.Table) vaultOutcomeReport {
	r := vaultOutcomeReport{Validation: newValidationReport(out.Validation)}
	if out.Validation.Ready() {
		preview := newVaultReport(out.Preview.Vault, table)
		r.Preview = &preview
		r.Applied = &out.Preview.Amount
	}
	return r
}

func nonNil(addrs []common.Address) []common.Address {
	if addrs == nil {
		return []common.Address{}
	}
	return addrs
}
