package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provlabs/basket/boost"
	"github.com/provlabs/basket/engine"
	"github.com/provlabs/basket/types"
)

const (
	EnvPrefix = "BASKETSIM"

	FlagConfig    = "config"
	FlagLogLevel  = "log_level"
	FlagLogFormat = "log_format"

	LogFormatJSON  = "json"
	LogFormatPlain = "plain"

	// boostVaultsKey holds per-vault coefficient overrides:
	// boost.vaults.<address>.boost_coeff and boost.vaults.<address>.price_coeff.
	boostVaultsKey = "boost.vaults"
)

// app is the state shared by every command, filled in before any command runs.
type app struct {
	viper  *viper.Viper
	logger log.Logger
	engine *engine.Engine
}

// NewRootCmd creates the basketsim root command.
func NewRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "basketsim",
		Short:         "Recalculate, simulate and validate basket and staking vault actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String(FlagConfig, "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().String(FlagLogLevel, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String(FlagLogFormat, LogFormatPlain, "log format (plain or json)")

	initRootCmd(rootCmd, a)
	return rootCmd
}

func initRootCmd(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(
		recalcCommand(a),
		validateCommand(a),
		boostCommand(a),
	)
}

// init binds flags, environment and the optional config file, then builds the
// logger and the engine.
func (a *app) init(cmd *cobra.Command) error {
	v := a.viper
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(cmd, v)
	if err != nil {
		return err
	}
	table, err := boostTable(v)
	if err != nil {
		return err
	}

	a.logger = logger
	a.engine = engine.New(engine.WithLogger(logger), engine.WithBoostTable(table))
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(FlagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FlagLogLevel, err)
	}

	opts := []log.Option{log.LevelOption(level)}
	switch format := v.GetString(FlagLogFormat); format {
	case LogFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	case LogFormatPlain, "":
		opts = append(opts, log.ColorOption(false))
	default:
		return nil, fmt.Errorf("invalid %s: %q", FlagLogFormat, format)
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

// boostTable is the built-in coefficient table with any configured overrides applied.
func boostTable(v *viper.Viper) (boost.Table, error) {
	table := boost.DefaultTable()
	for key := range v.GetStringMap(boostVaultsKey) {
		if !common.IsHexAddress(key) {
			return nil, types.ErrInvalidAddress.Wrapf("%s.%s", boostVaultsKey, key)
		}
		prefix := boostVaultsKey + "." + key + "."
		coeffs, err := types.ParseBoostCoefficients(v.GetString(prefix+"boost_coeff"), v.GetString(prefix+"price_coeff"))
		if err != nil {
			return nil, fmt.Errorf("vault %s: %w", key, err)
		}
		table = table.With(common.HexToAddress(key), coeffs)
	}
	return table, nil
}
