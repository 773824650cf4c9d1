package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"journey-backend/internal/journey"
)

func chapterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapter [id]",
		Short: "Print one chapter and the packages that include it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, ok := store.GetChapterByID(args[0])
			if !ok {
				return fmt.Errorf("chapter %q: %w", args[0], journey.ErrNotFound)
			}
			var tiers []string
			for _, pkg := range store.Packages() {
				for _, included := range store.GetPackageChapters(pkg.Tier) {
					if included.ID == ch.ID {
						tiers = append(tiers, pkg.Tier)
						break
					}
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				journey.Chapter
				Packages []string `json:"packages"`
			}{Chapter: ch, Packages: tiers})
		},
	}
	return cmd
}
