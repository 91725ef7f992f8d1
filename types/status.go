package types

import (
	"fmt"
	"strings"
)

// AssetStatus mirrors the on-chain status of a basket asset.
type AssetStatus int32

const (
	StatusNormal AssetStatus = iota
	StatusBrokenBelowPeg
	StatusBrokenAbovePeg
	StatusBlacklisted
	StatusLiquidating
	StatusLiquidated
	StatusFailed
)

var assetStatusNames = map[AssetStatus]string{
	StatusNormal:         "Normal",
	StatusBrokenBelowPeg: "BrokenBelowPeg",
	StatusBrokenAbovePeg: "BrokenAbovePeg",
	StatusBlacklisted:    "Blacklisted",
	StatusLiquidating:    "Liquidating",
	StatusLiquidated:     "Liquidated",
	StatusFailed:         "Failed",
}

func (s AssetStatus) String() string {
	if name, ok := assetStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("AssetStatus(%d)", int32(s))
}

// MarshalText encodes the status by name.
func (s AssetStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// NotAllowedInMint reports whether an asset with this status blocks minting.
func (s AssetStatus) NotAllowedInMint() bool {
	return s == StatusBrokenBelowPeg || s == StatusLiquidating || s == StatusBlacklisted
}

// ParseAssetStatus parses a status name case-insensitively. An empty string is Normal.
func ParseAssetStatus(s string) (AssetStatus, error) {
	if s == "" {
		return StatusNormal, nil
	}
	for status, name := range assetStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return 0, ErrInvalidStatus.Wrapf("%q", s)
}
