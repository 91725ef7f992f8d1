package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
)

const (
	FlagAction = "action"
	FlagAsset  = "asset"
	FlagAmount = "amount"
	FlagEntry  = "entry"
)

// Action names accepted by --action.
const (
	ActionMint               = "mint"
	ActionMintMulti          = "mint-multi"
	ActionRedeemProportional = "redeem"
	ActionRedeemSingle       = "redeem-single"
	ActionRedeemMulti        = "redeem-multi"
	ActionStake              = "stake"
	ActionUnstake            = "unstake"
)

func recalcCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc [basket.json]",
		Short: "Derive basket-unit values, shares and weight flags for a basket snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBasket(args[0])
			if err != nil {
				return err
			}
			derived := recalc.Basket(b)
			a.logger.Debug("recalculated basket", "assets", len(derived.Assets), "overweight", len(derived.OverweightAssets))
			return printJSON(cmd, newBasketReport(derived))
		},
	}
}

func validateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [snapshot.json]",
		Short: "Simulate a proposed action and validate it",
		Long: `Simulate a proposed action against a snapshot and report whether it may be submitted.

Basket actions (mint, mint-multi, redeem, redeem-single, redeem-multi) read a basket
snapshot; vault actions (stake, unstake) read a vault snapshot. Multi-asset actions
take one --entry <address>=<amount> per asset.`,
		Example: `  basketsim validate basket.json --action mint --asset 0xA0b8...eB48 --amount 100
  basketsim validate basket.json --action redeem --amount 25.5
  basketsim validate basket.json --action mint-multi --entry 0x6B17...1d0F=10 --entry 0xA0b8...eB48=5
  basketsim validate vault.json --action stake --amount 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := cmd.Flags().GetString(FlagAction)
			if err != nil {
				return err
			}
			if kind == ActionStake || kind == ActionUnstake {
				return runValidateVault(cmd, a, args[0], kind)
			}
			return runValidateBasket(cmd, a, args[0], kind)
		},
	}

	cmd.Flags().String(FlagAction, ActionMint, "action to validate")
	cmd.Flags().String(FlagAsset, "", "asset address for single-asset actions")
	cmd.Flags().String(FlagAmount, "", "amount, in whole units of the asset, basket token or staking token")
	cmd.Flags().StringArray(FlagEntry, nil, "<address>=<amount> for multi-asset actions")
	return cmd
}

func runValidateBasket(cmd *cobra.Command, a *app, path, kind string) error {
	b, err := readBasket(path)
	if err != nil {
		return err
	}
	action, err := basketAction(cmd, b, kind)
	if err != nil {
		return err
	}
	out := a.engine.EvaluateBasket(&b, action)
	return printJSON(cmd, newBasketOutcomeReport(out))
}

func runValidateVault(cmd *cobra.Command, a *app, path, kind string) error {
	v, err := readVault(path)
	if err != nil {
		return err
	}
	text, err := cmd.Flags().GetString(FlagAmount)
	if err != nil {
		return err
	}

	amount := types.NewAmount(text, v.StakingToken.Decimals)
	var action types.Action = types.Stake{Amount: amount}
	if kind == ActionUnstake {
		action = types.Unstake{Amount: amount}
	}

	out, err := a.engine.EvaluateVault(&v, action)
	if err != nil {
		return err
	}
	return printJSON(cmd, newVaultOutcomeReport(out, a.engine.BoostTable()))
}

// basketAction builds the action named by kind from the command flags.
// Amounts parse at the decimals of the asset they name.
func basketAction(cmd *cobra.Command, b types.Basket, kind string) (types.Action, error) {
	text, err := cmd.Flags().GetString(FlagAmount)
	if err != nil {
		return nil, err
	}
	asset, err := cmd.Flags().GetString(FlagAsset)
	if err != nil {
		return nil, err
	}
	entries, err := cmd.Flags().GetStringArray(FlagEntry)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ActionMint, ActionRedeemSingle:
		addr, err := parseAssetFlag(asset)
		if err != nil {
			return nil, err
		}
		amount := types.NewAmount(text, assetDecimals(b, addr))
		if kind == ActionMint {
			return types.MintSingle{Asset: addr, Amount: amount}, nil
		}
		return types.RedeemSingle{Asset: addr, Amount: amount}, nil
	case ActionMintMulti, ActionRedeemMulti:
		parsed, err := parseEntries(b, entries)
		if err != nil {
			return nil, err
		}
		if kind == ActionMintMulti {
			return types.MintMulti{Inputs: parsed}, nil
		}
		return types.RedeemMulti{Outputs: parsed}, nil
	case ActionRedeemProportional:
		return types.RedeemProportional{Amount: types.NewAmount(text, b.Token.Decimals)}, nil
	default:
		return nil, types.ErrInvalidRequest.Wrapf("unknown action %q", kind)
	}
}

func parseEntries(b types.Basket, entries []string) ([]types.AssetAmount, error) {
	out := make([]types.AssetAmount, 0, len(entries))
	for _, entry := range entries {
		addrText, text, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, types.ErrInvalidRequest.Wrapf("entry %q: expected <address>=<amount>", entry)
		}
		addr, err := parseAssetFlag(addrText)
		if err != nil {
			return nil, err
		}
		out = append(out, types.AssetAmount{Asset: addr, Amount: types.NewAmount(text, assetDecimals(b, addr))})
	}
	return out, nil
}

func parseAssetFlag(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, types.ErrInvalidAddress.Wrapf("asset %q", s)
	}
	return common.HexToAddress(s), nil
}

// assetDecimals falls back to the basket decimals for an unknown asset,
// which then fails validation as not in the basket.
func assetDecimals(b types.Basket, addr common.Address) uint8 {
	if a, ok := b.Asset(addr); ok {
		return a.Decimals
	}
	return b.Token.Decimals
}

func readBasket(path string) (types.Basket, error) {
	var raw types.RawBasket
	if err := readJSON(path, &raw); err != nil {
		return types.Basket{}, err
	}
	return raw.Parse()
}

func readVault(path string) (types.Vault, error) {
	var raw types.RawVault
	if err := readJSON(path, &raw); err != nil {
		return types.Vault{}, err
	}
	return raw.Parse()
}

func readJSON(path string, v any) error {
	bz, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
