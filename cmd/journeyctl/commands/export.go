package commands

import (
	"github.com/spf13/cobra"

	"journey-backend/internal/journey"
)

func exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return journey.Encode(cmd.OutOrStdout(), catalog, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", journey.FormatYAML, "output format: yaml or json")
	return cmd
}
