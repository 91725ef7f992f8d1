package types

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/provlabs/basket/fixedpoint"
)

// ActionKind identifies a proposed action variant.
type ActionKind int32

const (
	ActionMintSingle ActionKind = iota + 1
	ActionMintMulti
	ActionRedeemProportional
	ActionRedeemSingle
	ActionRedeemMulti
	ActionStake
	ActionUnstake
)

var actionKindNames = map[ActionKind]string{
	ActionMintSingle:         "MintSingle",
	ActionMintMulti:          "MintMulti",
	ActionRedeemProportional: "RedeemProportional",
	ActionRedeemSingle:       "RedeemSingle",
	ActionRedeemMulti:        "RedeemMulti",
	ActionStake:              "Stake",
	ActionUnstake:            "Unstake",
}

func (k ActionKind) String() string { return actionKindNames[k] }

// IsMint reports whether the action mints basket units.
func (k ActionKind) IsMint() bool { return k == ActionMintSingle || k == ActionMintMulti }

// IsRedeem reports whether the action redeems basket units.
func (k ActionKind) IsRedeem() bool {
	return k == ActionRedeemProportional || k == ActionRedeemSingle || k == ActionRedeemMulti
}

// IsVault reports whether the action targets a staking vault.
func (k ActionKind) IsVault() bool { return k == ActionStake || k == ActionUnstake }

// Amount is a user-entered quantity. Set is false until Text parses.
type Amount struct {
	Text    string
	Touched bool
	Value   fixedpoint.Decimal
	Set     bool
}

// NewAmount parses user-entered text at the given decimals. The amount counts
// as touched even when the text is empty or malformed.
func NewAmount(text string, decimals uint8) Amount {
	value, ok := fixedpoint.MaybeParse(text, decimals)
	return Amount{Text: text, Touched: true, Value: value, Set: ok}
}

// AmountOf wraps an already-parsed value.
func AmountOf(value fixedpoint.Decimal) Amount {
	return Amount{Text: value.String(), Touched: true, Value: value, Set: true}
}

// AssetAmount pairs an asset with an amount of it.
type AssetAmount struct {
	Asset  common.Address
	Amount Amount
}

// Action is a proposed mint, redeem, stake or unstake.
type Action interface {
	Kind() ActionKind
}

// MintSingle mints basket units from one asset.
type MintSingle struct {
	Asset  common.Address
	Amount Amount
}

// MintMulti mints basket units from several assets in one transaction.
type MintMulti struct {
	Inputs []AssetAmount
}

// RedeemProportional burns basket units for every asset pro rata.
type RedeemProportional struct {
	Amount Amount
}

// RedeemSingle redeems Amount of one asset, in asset units.
type RedeemSingle struct {
	Asset  common.Address
	Amount Amount
}

// RedeemMulti redeems specific amounts of several assets.
type RedeemMulti struct {
	Outputs []AssetAmount
}

// Stake deposits staking tokens into a vault.
type Stake struct {
	Amount Amount
}

// Unstake withdraws staked tokens from a vault.
type Unstake struct {
	Amount Amount
}

func (MintSingle) Kind() ActionKind         { return ActionMintSingle }
func (MintMulti) Kind() ActionKind          { return ActionMintMulti }
func (RedeemProportional) Kind() ActionKind { return ActionRedeemProportional }
func (RedeemSingle) Kind() ActionKind       { return ActionRedeemSingle }
func (RedeemMulti) Kind() ActionKind        { return ActionRedeemMulti }
func (Stake) Kind() ActionKind              { return ActionStake }
func (Unstake) Kind() ActionKind            { return ActionUnstake }

// Entries returns the per-asset amounts of an asset-specific action, in
// entered order. RedeemProportional and vault actions have none.
func Entries(a Action) []AssetAmount {
	switch act := a.(type) {
	case MintSingle:
		return []AssetAmount{{Asset: act.Asset, Amount: act.Amount}}
	case MintMulti:
		return act.Inputs
	case RedeemSingle:
		return []AssetAmount{{Asset: act.Asset, Amount: act.Amount}}
	case RedeemMulti:
		return act.Outputs
	case RedeemProportional, Stake, Unstake:
		return nil
	default:
		Fatal("entries", ErrUnhandledAction.Wrapf("%T", a))
		return nil
	}
}

// Touched reports whether the user has entered any amount for the action.
func Touched(a Action) bool {
	switch act := a.(type) {
	case RedeemProportional:
		return act.Amount.Touched
	case Stake:
		return act.Amount.Touched
	case Unstake:
		return act.Amount.Touched
	}
	for _, e := range Entries(a) {
		if e.Amount.Touched {
			return true
		}
	}
	return false
}
