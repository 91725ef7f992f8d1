package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/basket/cmd/basketsim/cmd"
)

const (
	daiAddr   = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	usdcAddr  = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	vaultAddr = "0x1f35bfa29a4c4e3b27ad5eb0c9e2de6a3b4c8d71"

	// saveVaultAddr carries built-in boost coefficients.
	saveVaultAddr = "0x78BefCa7de27d07DC6e71da295Cc2946681A6c7B"
)

const basketJSON = `{
  "token": {"address": "0xe2f2a5C287993345a840Db3B0845fbC70f5935a5", "symbol": "mUSD", "decimals": 18,
            "totalSupply": "1000000000000000000000", "balance": "100000000000000000000"},
  "assets": [
    {"address": "` + daiAddr + `", "symbol": "DAI", "decimals": 18,
     "balance": "5000000000000000000", "allowance": "5000000000000000000", "vaultBalance": "600000000000000000000",
     "ratio": "100000000", "maxWeight": "700000000000000000"},
    {"address": "` + usdcAddr + `", "symbol": "USDC", "decimals": 6,
     "balance": "2500000", "allowance": "1000000", "vaultBalance": "400000000",
     "ratio": "100000000000000000000", "maxWeight": "550000000000000000", "status": "BrokenAbovePeg"}
  ]
}`

const vaultJSON = `{
  "address": "` + vaultAddr + `",
  "stakingToken": {"address": "0x30647a72Dc82d7Fbb1123EA74716aB8A317Eac19", "symbol": "imUSD", "decimals": 18,
                   "balance": "10000000000000000000"},
  "lockToken": {"address": "0xaE8bC96DA4F9A9613c323478BE181FDb2Aa0E1BF", "symbol": "vMTA", "decimals": 18,
                "balance": "20000000000000000000"},
  "allowance": "10000000000000000000",
  "staked": "1000000000000000000000",
  "totalStaked": "5000000000000000000000"
}`

const saveVaultJSON = `{
  "address": "` + saveVaultAddr + `",
  "stakingToken": {"address": "0x30647a72Dc82d7Fbb1123EA74716aB8A317Eac19", "symbol": "imUSD", "decimals": 18,
                   "balance": "10000000000000000000"},
  "lockToken": {"address": "0xaE8bC96DA4F9A9613c323478BE181FDb2Aa0E1BF", "symbol": "vMTA", "decimals": 18,
                "balance": "20000000000000000000"},
  "allowance": "10000000000000000000",
  "staked": "1000000000000000000000",
  "totalStaked": "5000000000000000000000"
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command and decodes its JSON output.
func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return nil, err
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded), out.String())
	return decoded, nil
}

func validation(t *testing.T, out map[string]any) map[string]any {
	t.Helper()
	v, ok := out["validation"].(map[string]any)
	require.True(t, ok, "missing validation in %v", out)
	return v
}

func TestRecalcCommand(t *testing.T) {
	out, err := run(t, "recalc", writeFile(t, "basket.json", basketJSON))
	require.NoError(t, err)

	assert.Equal(t, "1000.000000000000000000", out["totalSupply"])
	assert.Equal(t, false, out["allAssetsNormal"])
	assert.Empty(t, out["overweightAssets"])

	assets := out["assets"].([]any)
	require.Len(t, assets, 2)
	usdc := assets[1].(map[string]any)
	assert.Equal(t, "400.000000000000000000", usdc["totalVaultInBasketUnits"])
	assert.Equal(t, "0.400000000000000000", usdc["basketShare"])
	assert.InDelta(t, 40.0, usdc["sharePercent"], 1e-9)
	assert.Equal(t, "BrokenAbovePeg", usdc["status"])
}

func TestValidateCommand(t *testing.T) {
	basket := writeFile(t, "basket.json", basketJSON)

	tests := []struct {
		name   string
		args   []string
		valid  bool
		reason string
	}{
		{name: "mint", args: []string{"--action", "mint", "--asset", usdcAddr, "--amount", "1"}, valid: true},
		{name: "mint over allowance", args: []string{"--action", "mint", "--asset", usdcAddr, "--amount", "2"}, reason: "AmountExceedsApprovedAmount"},
		{name: "mint unknown asset", args: []string{"--action", "mint", "--asset", vaultAddr, "--amount", "1"}, reason: "AssetNotInBasket"},
		{name: "redeem over balance", args: []string{"--action", "redeem", "--amount", "100.5"}, reason: "AmountExceedsBalance"},
		{name: "redeem", args: []string{"--action", "redeem", "--amount", "10"}, valid: true},
		{name: "redeem single", args: []string{"--action", "redeem-single", "--asset", daiAddr, "--amount", "10"}, valid: true},
		{
			name:   "mint multi",
			args:   []string{"--action", "mint-multi", "--entry", daiAddr + "=1", "--entry", usdcAddr + "=2"},
			reason: "AmountExceedsApprovedAmount",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append([]string{"validate", basket}, tc.args...)...)
			require.NoError(t, err)
			v := validation(t, out)
			assert.Equal(t, true, v["ready"])
			assert.Equal(t, tc.valid, v["valid"])
			if tc.reason != "" {
				assert.Equal(t, tc.reason, v["reason"])
			}
			assert.NotNil(t, out["preview"])
		})
	}
}

func TestValidateEmptyAmount(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "basket.json", basketJSON), "--action", "redeem")
	require.NoError(t, err)
	// An empty --amount still counts as entered.
	assert.Equal(t, "AmountMustBeSet", validation(t, out)["reason"])
}

func TestValidateVault(t *testing.T) {
	vault := writeFile(t, "vault.json", vaultJSON)

	out, err := run(t, "validate", vault, "--action", "stake", "--amount", "5")
	require.NoError(t, err)
	assert.Equal(t, true, validation(t, out)["valid"])
	preview := out["preview"].(map[string]any)
	assert.Equal(t, "1005.000000000000000000", preview["staked"])
	assert.Equal(t, "5.000000000000000000", out["applied"])

	out, err = run(t, "validate", vault, "--action", "unstake", "--amount", "1001")
	require.NoError(t, err)
	assert.Equal(t, "AmountExceedsBalance", validation(t, out)["reason"])
}

func TestValidateRejectsBadInput(t *testing.T) {
	basket := writeFile(t, "basket.json", basketJSON)

	_, err := run(t, "validate", basket, "--action", "swap")
	assert.ErrorContains(t, err, "unknown action")

	_, err = run(t, "validate", basket, "--action", "mint", "--asset", "usdc", "--amount", "1")
	assert.ErrorContains(t, err, "invalid address")

	_, err = run(t, "validate", basket, "--action", "mint-multi", "--entry", daiAddr)
	assert.ErrorContains(t, err, "expected <address>=<amount>")

	_, err = run(t, "validate", writeFile(t, "bad.json", "{"), "--action", "redeem", "--amount", "1")
	assert.ErrorContains(t, err, "failed to decode")
}

func TestBoostCommands(t *testing.T) {
	vault := writeFile(t, "vault.json", vaultJSON)

	out, err := run(t, "boost", vault)
	require.NoError(t, err)
	assert.Equal(t, "legacy", out["formula"])
	assert.NotEqual(t, "3.000000000000000000", out["boost"])

	out, err = run(t, "boost", "required", vault)
	require.NoError(t, err)
	assert.NotEmpty(t, out["required"])
	assert.Equal(t, "20.000000000000000000", out["lock"])
}

func TestBoostCoefficientsFromTable(t *testing.T) {
	out, err := run(t, "boost", writeFile(t, "vault.json", saveVaultJSON))
	require.NoError(t, err)
	assert.Equal(t, "coefficients", out["formula"])
	assert.Equal(t, "3.000000000000000000", out["boost"])
}

func TestBoostCoefficientsFromConfig(t *testing.T) {
	vault := writeFile(t, "vault.json", vaultJSON)
	config := writeFile(t, "config.toml", `
log_level = "debug"

[boost.vaults.`+vaultAddr+`]
boost_coeff = "9"
price_coeff = "0.1"
`)

	out, err := run(t, "boost", vault, "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "coefficients", out["formula"])
	assert.Equal(t, "3.000000000000000000", out["boost"])

	bad := writeFile(t, "bad.toml", `
[boost.vaults.`+vaultAddr+`]
boost_coeff = "0"
price_coeff = "1"
`)
	_, err = run(t, "boost", vault, "--config", bad)
	assert.ErrorContains(t, err, "invalid boost coefficient")
}

func TestLogConfiguration(t *testing.T) {
	vault := writeFile(t, "vault.json", vaultJSON)

	t.Setenv("BASKETSIM_LOG_LEVEL", "loud")
	_, err := run(t, "boost", vault)
	assert.ErrorContains(t, err, "invalid log_level")

	t.Setenv("BASKETSIM_LOG_LEVEL", "debug")
	_, err = run(t, "boost", vault, "--log_format", "xml")
	assert.ErrorContains(t, err, "invalid log_format")

	_, err = run(t, "boost", vault, "--log_format", "json")
	assert.NoError(t, err)
}
