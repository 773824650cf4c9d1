package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"journey-backend/internal/journey"
	"journey-backend/internal/suggestions"
)

func suggestCmd() *cobra.Command {
	var value bool
	cmd := &cobra.Command{
		Use:   "suggest [chapter-id]",
		Short: "List suggestions for a chapter, or cart-level suggestions with --value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []suggestions.Suggestion
			switch {
			case value:
				list = suggestions.GetValueOptimizationSuggestions()
			case len(args) == 1:
				ch, ok := store.GetChapterByID(args[0])
				if !ok {
					ch = journey.Chapter{ID: args[0]}
				}
				list = suggestions.GetChapterSuggestions(ch)
			default:
				return fmt.Errorf("a chapter id or --value is required")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tIMPACT\tTITLE")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Impact, s.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&value, "value", false, "show value-optimization suggestions")
	return cmd
}
