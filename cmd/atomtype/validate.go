package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atomforge/atomtype/mapper"
)

// newValidateCmd checks a mapping file against the selected typer's
// vocabulary and reports the destination space it would produce.
func newValidateCmd(logger *zap.Logger) *cobra.Command {
	var mapFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a type-mapping file against the selected typer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			typer, err := buildTyper()
			if err != nil {
				return err
			}

			m, err := mapper.NewFileMapperFromPath(mapFile, typer.TypeNames())
			if err != nil {
				return fmt.Errorf("invalid mapping file: %w", err)
			}

			logger.Info("mapping file valid",
				zap.String("file", mapFile),
				zap.Int("origin_types", typer.NumTypes()),
				zap.Int("destination_types", m.NumTypes()))
			for id, name := range m.TypeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mapFile, "map", "", "mapping file to validate")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}
