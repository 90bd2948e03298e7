package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newNamesCmd prints a typer's category vocabulary, one "id name" pair
// per line — the channel labels a grid consumer would attach to its
// output tensor.
func newNamesCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print the selected typer's category names in id order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			typer, err := buildTyper()
			if err != nil {
				return err
			}

			names := typer.TypeNames()
			logger.Debug("typer constructed",
				zap.Int("num_types", typer.NumTypes()))
			for id, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, name)
			}

			return nil
		},
	}
}
