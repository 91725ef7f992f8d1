package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/basket/fixedpoint"
	"github.com/provlabs/basket/types"
)

const rawBasketJSON = `{
  "token": {"address": "0xe2f2a5C287993345a840Db3B0845fbC70f5935a5", "symbol": "mUSD", "decimals": 18,
            "totalSupply": "1000000000000000000000", "balance": "100000000000000000000"},
  "redemptionFee": "1000000000000000",
  "assets": [
    {"address": "0x6B175474E89094C44Da98b954EedeAC495271d0F", "symbol": "DAI", "decimals": 18,
     "balance": "5000000000000000000", "allowance": "0", "vaultBalance": "600000000000000000000",
     "ratio": "100000000", "maxWeight": "550000000000000000", "status": "normal"},
    {"address": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "symbol": "USDC", "decimals": 6,
     "balance": "2500000", "allowance": "1000000", "vaultBalance": "400000000",
     "ratio": "100000000000000000000", "maxWeight": "550000000000000000", "status": "BrokenAbovePeg"}
  ]
}`

func TestRawBasketParse(t *testing.T) {
	var raw types.RawBasket
	require.NoError(t, json.Unmarshal([]byte(rawBasketJSON), &raw))

	b, err := raw.Parse()
	require.NoError(t, err)
	require.Len(t, b.Assets, 2)
	assert.Equal(t, "1000.000000000000000000", b.Token.TotalSupply.String())
	assert.Equal(t, "1000000000000000", b.RedemptionFee.String())

	usdc := b.Assets[1]
	assert.Equal(t, uint8(6), usdc.TotalVaultBalance.Decimals())
	assert.Equal(t, "400.000000", usdc.TotalVaultBalance.String())
	assert.Equal(t, "2.500000", usdc.Balance.String())
	assert.Equal(t, types.StatusBrokenAbovePeg, usdc.Status)
	assert.True(t, usdc.BasketShare.IsZero(), "derived fields are left for recalc")
}

func TestRawAssetParseErrors(t *testing.T) {
	valid := types.RawAsset{
		Address:      "0x6B175474E89094C44Da98b954EedeAC495271d0F",
		Decimals:     18,
		VaultBalance: "1",
		Ratio:        "100000000",
		MaxWeight:    "1000000000000000000",
	}

	tests := []struct {
		name        string
		mutate      func(*types.RawAsset)
		expectedErr error
	}{
		{name: "valid", mutate: func(*types.RawAsset) {}},
		{name: "empty quantities are zero", mutate: func(r *types.RawAsset) { r.Balance, r.Allowance = "", "" }},
		{name: "bad address", mutate: func(r *types.RawAsset) { r.Address = "0x123" }, expectedErr: types.ErrInvalidAddress},
		{name: "negative balance", mutate: func(r *types.RawAsset) { r.Balance = "-1" }, expectedErr: types.ErrInvalidQuantity},
		{name: "fractional balance", mutate: func(r *types.RawAsset) { r.Balance = "1.5" }, expectedErr: types.ErrInvalidQuantity},
		{
			name: "above 256 bits",
			mutate: func(r *types.RawAsset) {
				r.VaultBalance = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
			},
			expectedErr: types.ErrInvalidQuantity,
		},
		{
			name: "6-decimal vault balance near 2^256",
			mutate: func(r *types.RawAsset) {
				r.Decimals, r.Ratio = 6, "100000000000000000000"
				r.VaultBalance = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
			},
			expectedErr: types.ErrInvalidQuantity,
		},
		{name: "above 160 bits", mutate: func(r *types.RawAsset) { r.Balance = "1461501637330902918203684832716283019655932542976" }, expectedErr: types.ErrInvalidQuantity},
		{name: "at 160 bits", mutate: func(r *types.RawAsset) { r.Balance = "1461501637330902918203684832716283019655932542975" }},
		{name: "zero ratio", mutate: func(r *types.RawAsset) { r.Ratio = "0" }, expectedErr: types.ErrInvalidQuantity},
		{name: "ratio above 96 bits", mutate: func(r *types.RawAsset) { r.Ratio = "79228162514264337593543950336" }, expectedErr: types.ErrInvalidQuantity},
		{name: "max weight above one", mutate: func(r *types.RawAsset) { r.MaxWeight = "1000000000000000001" }, expectedErr: types.ErrInvalidQuantity},
		{name: "unknown status", mutate: func(r *types.RawAsset) { r.Status = "paused" }, expectedErr: types.ErrInvalidStatus},
		{name: "decimals too large", mutate: func(r *types.RawAsset) { r.Decimals = 77 }, expectedErr: types.ErrInvalidDecimals},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := valid
			tc.mutate(&raw)
			_, err := raw.Parse()
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRawBasketRejectsDuplicates(t *testing.T) {
	var raw types.RawBasket
	require.NoError(t, json.Unmarshal([]byte(rawBasketJSON), &raw))
	raw.Assets = append(raw.Assets, raw.Assets[0])
	_, err := raw.Parse()
	assert.ErrorIs(t, err, types.ErrDuplicateAsset)
}

func TestRawBasketParseBounds(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*types.RawBasket)
		expectedErr error
	}{
		{name: "valid", mutate: func(*types.RawBasket) {}},
		{name: "basket token not 18 decimals", mutate: func(r *types.RawBasket) { r.Token.Decimals = 6 }, expectedErr: types.ErrInvalidDecimals},
		{name: "redemption fee above one", mutate: func(r *types.RawBasket) { r.RedemptionFee = "2000000000000000000" }, expectedErr: types.ErrInvalidQuantity},
		{
			// In range as 6-decimal units, out of range once converted at 1e12.
			name: "converted vault balance above 160 bits",
			mutate: func(r *types.RawBasket) {
				r.Assets[1].VaultBalance = "1461501637330902918203684832716283019655932542975"
			},
			expectedErr: types.ErrInvalidQuantity,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var raw types.RawBasket
			require.NoError(t, json.Unmarshal([]byte(rawBasketJSON), &raw))
			tc.mutate(&raw)
			_, err := raw.Parse()
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUnlimitedAllowanceSaturates(t *testing.T) {
	var raw types.RawBasket
	require.NoError(t, json.Unmarshal([]byte(rawBasketJSON), &raw))
	raw.Assets[1].Allowance = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

	b, err := raw.Parse()
	require.NoError(t, err)
	assert.Equal(t, types.MaxQuantity.String(), b.Assets[1].Allowance.Exact().String())
	assert.Equal(t, uint8(6), b.Assets[1].Allowance.Decimals())
}

func TestInRange(t *testing.T) {
	limit := fixedpoint.New(types.MaxQuantity, 6)
	assert.True(t, types.InRange(limit, 6))
	assert.False(t, types.InRange(limit, 7))
	assert.True(t, types.InRange(limit, 0))
	assert.False(t, types.InRange(fixedpoint.New(types.MaxQuantity.AddRaw(1), 6), 6))
}

func TestRawVaultParse(t *testing.T) {
	raw := types.RawVault{
		Address:      "0x78BefCa7de27d07DC6e71da295Cc2946681A6c7B",
		StakingToken: types.RawToken{Address: "0x30647a72Dc82d7Fbb1123EA74716aB8A317Eac19", Decimals: 18, Balance: "10000000000000000000"},
		LockToken:    types.RawToken{Address: "0xaE8bC96DA4F9A9613c323478BE181FDb2Aa0E1BF", Decimals: 18, Balance: "5000000000000000000"},
		Allowance:    "10000000000000000000",
		Staked:       "1000000000000000000000",
		TotalStaked:  "5000000000000000000000",
	}
	v, err := raw.Parse()
	require.NoError(t, err)
	assert.Nil(t, v.Coefficients)
	assert.Equal(t, "1000.000000000000000000", v.StakedBalance.String())

	raw.BoostCoeff, raw.PriceCoeff = "9", "0.1"
	v, err = raw.Parse()
	require.NoError(t, err)
	require.NotNil(t, v.Coefficients)
	assert.Equal(t, "0.100000000000000000", v.Coefficients.PriceCoeff.String())

	raw.PriceCoeff = ""
	_, err = raw.Parse()
	assert.ErrorIs(t, err, types.ErrInvalidCoefficient)

	raw.BoostCoeff, raw.PriceCoeff = "-1", "1"
	_, err = raw.Parse()
	assert.ErrorIs(t, err, types.ErrInvalidCoefficient)

	raw.BoostCoeff, raw.PriceCoeff = "1", "1000000000000000001"
	_, err = raw.Parse()
	assert.ErrorIs(t, err, types.ErrInvalidCoefficient)
}
