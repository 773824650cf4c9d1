package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check catalog ids, package references and slider ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d chapters, %d packages, %d sliders (checksum %s)\n",
				len(catalog.Chapters), len(catalog.Packages), len(catalog.ROI.Sliders), store.Checksum())
			return nil
		},
	}
	return cmd
}
