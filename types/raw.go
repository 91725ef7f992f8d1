package types

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/provlabs/basket/fixedpoint"
)

// maxTokenDecimals is the largest decimals accepted at the boundary.
const maxTokenDecimals = 36

// RawToken is a token as delivered by the data-fetching layer. Quantities are
// base-10 integer strings in the token's own units.
type RawToken struct {
	Address     string `json:"address"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
	Balance     string `json:"balance"`
}

// RawAsset is a basket constituent as delivered by the data-fetching layer.
type RawAsset struct {
	Address      string `json:"address"`
	Symbol       string `json:"symbol"`
	Decimals     uint8  `json:"decimals"`
	Balance      string `json:"balance"`
	Allowance    string `json:"allowance"`
	VaultBalance string `json:"vaultBalance"`
	Ratio        string `json:"ratio"`
	MaxWeight    string `json:"maxWeight"`
	Status       string `json:"status"`
}

// RawBasket is a basket as delivered by the data-fetching layer.
type RawBasket struct {
	Token                         RawToken   `json:"token"`
	Assets                        []RawAsset `json:"assets"`
	RedemptionFee                 string     `json:"redemptionFee"`
	Failed                        bool       `json:"failed"`
	UndergoingRecollateralisation bool       `json:"undergoingRecollateralisation"`
}

// RawVault is a staking vault as delivered by the data-fetching layer.
// BoostCoeff and PriceCoeff are decimal strings and may be empty.
type RawVault struct {
	Address      string   `json:"address"`
	StakingToken RawToken `json:"stakingToken"`
	LockToken    RawToken `json:"lockToken"`
	Allowance    string   `json:"allowance"`
	Staked       string   `json:"staked"`
	TotalStaked  string   `json:"totalStaked"`
	BoostCoeff   string   `json:"boostCoeff"`
	PriceCoeff   string   `json:"priceCoeff"`
}

// Parse converts the raw token into a Token.
func (r RawToken) Parse() (Token, error) {
	addr, err := parseAddress("token address", r.Address)
	if err != nil {
		return Token{}, err
	}
	if r.Decimals > maxTokenDecimals {
		return Token{}, ErrInvalidDecimals.Wrapf("token %s: %d", r.Address, r.Decimals)
	}
	supply, err := parseQuantity("totalSupply", r.TotalSupply, r.Decimals)
	if err != nil {
		return Token{}, err
	}
	balance, err := parseQuantity("balance", r.Balance, r.Decimals)
	if err != nil {
		return Token{}, err
	}
	return Token{
		Address:     addr,
		Symbol:      r.Symbol,
		Decimals:    r.Decimals,
		TotalSupply: supply,
		Balance:     balance,
	}, nil
}

// Parse converts the raw asset into an Asset with no derived fields.
func (r RawAsset) Parse() (Asset, error) {
	addr, err := parseAddress("asset address", r.Address)
	if err != nil {
		return Asset{}, err
	}
	if r.Decimals > maxTokenDecimals {
		return Asset{}, ErrInvalidDecimals.Wrapf("asset %s: %d", r.Address, r.Decimals)
	}

	quantities := make([]fixedpoint.Decimal, 2)
	for i, field := range []struct{ name, value string }{
		{"balance", r.Balance},
		{"vaultBalance", r.VaultBalance},
	} {
		if quantities[i], err = parseQuantity(field.name, field.value, r.Decimals); err != nil {
			return Asset{}, ErrInvalidQuantity.Wrapf("asset %s: %v", r.Address, err)
		}
	}
	allowance, err := parseAllowance("allowance", r.Allowance, r.Decimals)
	if err != nil {
		return Asset{}, ErrInvalidQuantity.Wrapf("asset %s: %v", r.Address, err)
	}

	ratio, err := parseWord("ratio", r.Ratio)
	if err != nil {
		return Asset{}, err
	}
	if !ratio.IsPositive() {
		return Asset{}, ErrInvalidQuantity.Wrapf("asset %s: ratio must be positive", r.Address)
	}
	if ratio.BigInt().BitLen() > MaxRatioBits {
		return Asset{}, ErrInvalidQuantity.Wrapf("asset %s: ratio exceeds %d bits", r.Address, MaxRatioBits)
	}
	maxWeight, err := parseFraction("maxWeight", r.MaxWeight)
	if err != nil {
		return Asset{}, err
	}
	status, err := ParseAssetStatus(r.Status)
	if err != nil {
		return Asset{}, err
	}

	return Asset{
		Address:           addr,
		Symbol:            r.Symbol,
		Decimals:          r.Decimals,
		Balance:           quantities[0],
		Allowance:         allowance,
		TotalVaultBalance: quantities[1],
		Ratio:             ratio,
		MaxWeight:         maxWeight,
		Status:            status,
	}, nil
}

// Parse converts the raw basket into a Basket with no derived fields.
// Run it through recalc.Basket before use.
func (r RawBasket) Parse() (Basket, error) {
	token, err := r.Token.Parse()
	if err != nil {
		return Basket{}, err
	}
	if token.Decimals != fixedpoint.ScaleDecimals {
		return Basket{}, ErrInvalidDecimals.Wrapf("basket token %s: %d, want %d", r.Token.Address, token.Decimals, fixedpoint.ScaleDecimals)
	}
	fee, err := parseFraction("redemptionFee", r.RedemptionFee)
	if err != nil {
		return Basket{}, err
	}

	assets := make([]Asset, 0, len(r.Assets))
	seen := make(map[common.Address]struct{}, len(r.Assets))
	for _, ra := range r.Assets {
		a, err := ra.Parse()
		if err != nil {
			return Basket{}, err
		}
		if _, dup := seen[a.Address]; dup {
			return Basket{}, ErrDuplicateAsset.Wrap(a.Address.Hex())
		}
		for _, q := range []fixedpoint.Decimal{a.Balance, a.TotalVaultBalance} {
			if !InRange(q.MulRatioTruncate(a.Ratio), token.Decimals) {
				return Basket{}, ErrInvalidQuantity.Wrapf("asset %s: basket value of %s exceeds %d bits", a.Address.Hex(), q, MaxQuantityBits)
			}
		}
		seen[a.Address] = struct{}{}
		assets = append(assets, a)
	}

	return Basket{
		Token:                         token,
		Assets:                        assets,
		RedemptionFee:                 fee,
		Failed:                        r.Failed,
		UndergoingRecollateralisation: r.UndergoingRecollateralisation,
	}, nil
}

// Parse converts the raw vault into a Vault with no derived fields.
func (r RawVault) Parse() (Vault, error) {
	addr, err := parseAddress("vault address", r.Address)
	if err != nil {
		return Vault{}, err
	}
	staking, err := r.StakingToken.Parse()
	if err != nil {
		return Vault{}, err
	}
	lock, err := r.LockToken.Parse()
	if err != nil {
		return Vault{}, err
	}
	allowance, err := parseAllowance("allowance", r.Allowance, staking.Decimals)
	if err != nil {
		return Vault{}, err
	}
	staked, err := parseQuantity("staked", r.Staked, staking.Decimals)
	if err != nil {
		return Vault{}, err
	}
	total, err := parseQuantity("totalStaked", r.TotalStaked, staking.Decimals)
	if err != nil {
		return Vault{}, err
	}

	v := Vault{
		Address:          addr,
		StakingToken:     staking,
		LockToken:        lock,
		StakingAllowance: allowance,
		StakedBalance:    staked,
		TotalStaked:      total,
	}

	if r.BoostCoeff != "" || r.PriceCoeff != "" {
		coeffs, err := ParseBoostCoefficients(r.BoostCoeff, r.PriceCoeff)
		if err != nil {
			return Vault{}, err
		}
		v.Coefficients = &coeffs
	}
	return v, nil
}

// ParseBoostCoefficients parses a pair of decimal coefficient strings.
func ParseBoostCoefficients(boostCoeff, priceCoeff string) (BoostCoefficients, error) {
	bc, err := math.LegacyNewDecFromStr(boostCoeff)
	if err != nil {
		return BoostCoefficients{}, ErrInvalidCoefficient.Wrapf("boost coefficient %q: %v", boostCoeff, err)
	}
	pc, err := math.LegacyNewDecFromStr(priceCoeff)
	if err != nil {
		return BoostCoefficients{}, ErrInvalidCoefficient.Wrapf("price coefficient %q: %v", priceCoeff, err)
	}
	coeffs := BoostCoefficients{BoostCoeff: bc, PriceCoeff: pc}
	return coeffs, coeffs.Validate()
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress.Wrapf("%s: %q", field, s)
	}
	return common.HexToAddress(s), nil
}

// parseWord parses an unsigned 256-bit chain word. Empty means zero.
func parseWord(field, s string) (math.Int, error) {
	if s == "" {
		return math.ZeroInt(), nil
	}
	u, err := uint256.FromDecimal(s)
	if err != nil {
		return math.Int{}, ErrInvalidQuantity.Wrapf("%s: %q: %v", field, s, err)
	}
	return math.NewIntFromBigInt(u.ToBig()), nil
}

// parseQuantity parses a token quantity, bounded by MaxQuantity.
func parseQuantity(field, s string, decimals uint8) (fixedpoint.Decimal, error) {
	w, err := parseWord(field, s)
	if err != nil {
		return fixedpoint.Decimal{}, err
	}
	if w.BigInt().BitLen() > MaxQuantityBits {
		return fixedpoint.Decimal{}, ErrInvalidQuantity.Wrapf("%s: %q exceeds %d bits", field, s, MaxQuantityBits)
	}
	return fixedpoint.New(w, decimals), nil
}

// parseAllowance parses an approval. Approvals beyond MaxQuantity, such as the
// customary unlimited 2^256 - 1, saturate at MaxQuantity.
func parseAllowance(field, s string, decimals uint8) (fixedpoint.Decimal, error) {
	w, err := parseWord(field, s)
	if err != nil {
		return fixedpoint.Decimal{}, err
	}
	if w.BigInt().BitLen() > MaxQuantityBits {
		w = MaxQuantity
	}
	return fixedpoint.New(w, decimals), nil
}

// parseFraction parses a Scale-denominated fraction in [0, Scale].
func parseFraction(field, s string) (math.Int, error) {
	w, err := parseWord(field, s)
	if err != nil {
		return math.Int{}, err
	}
	if w.GT(Scale) {
		return math.Int{}, ErrInvalidQuantity.Wrapf("%s: %q above %s", field, s, Scale)
	}
	return w, nil
}
