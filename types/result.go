package types

import "github.com/ethereum/go-ethereum/common"

// ValidationResult is the outcome of validating a proposed action.
//
// Three shapes are meaningful: valid; invalid with a reason; invalid with a
// reason and the assets that caused it. Invalid with ReasonNone means the
// inputs are not ready yet and nothing should be shown to the user.
type ValidationResult struct {
	Valid          bool
	Reason         ReasonCode
	AffectedAssets []common.Address
	// AssetReasons holds each asset's own reason for per-field display on multi-asset actions.
	AssetReasons map[common.Address]ReasonCode
}

// ValidResult returns a valid result.
func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NotReady returns an invalid result without a user-visible reason.
func NotReady() ValidationResult {
	return ValidationResult{}
}

// Invalid returns an invalid result for reason, naming any affected assets.
func Invalid(reason ReasonCode, affected ...common.Address) ValidationResult {
	return ValidationResult{Reason: reason, AffectedAssets: affected}
}

// Ready reports whether the result carries a decision the user should see.
func (r ValidationResult) Ready() bool {
	return r.Valid || r.Reason != ReasonNone
}
