package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/atomforge/atomtype/autodock"
	"github.com/atomforge/atomtype/element"
	"github.com/atomforge/atomtype/typing"
)

// Flag and config keys shared by the subcommands. viper resolves each
// key from (highest priority first) flag > ATOMTYPE_* env > config file.
const (
	keyTyper      = "typer"
	keyMaxElement = "max-element"
	keyCovalent   = "covalent"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "atomtype",
		Short:         "Inspect atom typers and validate type-mapping files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("ATOMTYPE")
			viper.AutomaticEnv()
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfgFile == "" {
				return nil
			}
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config %s: %w", cfgFile, err)
			}
			logger.Debug("config loaded", zap.String("file", viper.ConfigFileUsed()))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file")
	root.PersistentFlags().String(keyTyper, "autodock", "typer to use: autodock or element")
	root.PersistentFlags().Int(keyMaxElement, element.DefaultMaxElement,
		"category-space size for the element typer")
	root.PersistentFlags().Bool(keyCovalent, false,
		"emit covalent radii instead of XS radii (autodock typer)")

	root.AddCommand(newNamesCmd(logger), newValidateCmd(logger))

	return root
}

// buildTyper constructs the typer selected by configuration.
func buildTyper() (typing.IndexTyper, error) {
	switch name := viper.GetString(keyTyper); name {
	case "autodock":
		var opts []autodock.Option
		if viper.GetBool(keyCovalent) {
			opts = append(opts, autodock.WithCovalentRadius())
		}

		return autodock.New(opts...), nil
	case "element":
		return element.New(viper.GetInt(keyMaxElement)), nil
	default:
		return nil, fmt.Errorf("unknown typer %q (want autodock or element)", name)
	}
}
