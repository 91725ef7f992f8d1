package cmd

import (
	"github.com/spf13/cobra"

	"github.com/provlabs/basket/recalc"
	"github.com/provlabs/basket/types"
)

func boostCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boost [vault.json]",
		Short: "Compute the reward boost of a staking vault position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deriveVault(a, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, newVaultReport(v, a.engine.BoostTable()))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "required [vault.json]",
		Short: "Compute the lock balance needed for the maximum boost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := deriveVault(a, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, requiredReport{
				Vault:    v.Address,
				Staked:   v.StakedBalance,
				Lock:     v.LockToken.Balance,
				Required: v.LockRequiredForMaxBoost,
			})
		},
	})
	return cmd
}

func deriveVault(a *app, path string) (types.Vault, error) {
	v, err := readVault(path)
	if err != nil {
		return types.Vault{}, err
	}
	return recalc.Vault(v, a.engine.BoostTable())
}
