package types

import "fmt"

// ReasonCode is the closed set of reasons a proposed action is invalid.
// The presentation layer maps each code to a localized message.
type ReasonCode int32

const (
	// ReasonNone means no user-visible reason: either valid or not ready yet.
	ReasonNone ReasonCode = iota
	ReasonBasketFailed
	ReasonBasketUndergoingRecollateralisation
	ReasonAssetNotAllowedInMint
	ReasonBasketContainsBlacklistedAsset
	ReasonAssetNotInBasket
	ReasonNoAssetsSelected
	ReasonAmountMustBeSet
	ReasonAmountMustBeGreaterThanZero
	ReasonAmountExceedsBalance
	ReasonAmountExceedsApprovedAmount
	ReasonAmountExceedsVaultBalance
	ReasonMustBeBelowMaxWeighting
	ReasonMustRedeemOverweightAssets
	ReasonMustRedeemProportionally
)

var reasonNames = map[ReasonCode]string{
	ReasonNone:         "",
	ReasonBasketFailed: "BasketFailed",
	ReasonBasketUndergoingRecollateralisation: "BasketUndergoingRecollateralisation",
	ReasonAssetNotAllowedInMint:               "AssetNotAllowedInMint",
	ReasonBasketContainsBlacklistedAsset:      "BasketContainsBlacklistedAsset",
	ReasonAssetNotInBasket:                    "AssetNotInBasket",
	ReasonNoAssetsSelected:                    "NoAssetsSelected",
	ReasonAmountMustBeSet:                     "AmountMustBeSet",
	ReasonAmountMustBeGreaterThanZero:         "AmountMustBeGreaterThanZero",
	ReasonAmountExceedsBalance:                "AmountExceedsBalance",
	ReasonAmountExceedsApprovedAmount:         "AmountExceedsApprovedAmount",
	ReasonAmountExceedsVaultBalance:           "AmountExceedsVaultBalance",
	ReasonMustBeBelowMaxWeighting:             "MustBeBelowMaxWeighting",
	ReasonMustRedeemOverweightAssets:          "MustRedeemOverweightAssets",
	ReasonMustRedeemProportionally:            "MustRedeemProportionally",
}

func (r ReasonCode) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ReasonCode(%d)", int32(r))
}

// MarshalText encodes the reason by name.
func (r ReasonCode) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
