package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"journey-backend/internal/journey"
)

var (
	catalogPath string
	catalog     journey.Config
	store       *journey.Store
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "journeyctl",
		Short:        "Inspect and publish the automation journey catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			catalog = cfg
			store = journey.NewStore(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (yaml or json); defaults to the built-in catalog")

	root.AddCommand(
		validateCmd(),
		exportCmd(),
		chapterCmd(),
		suggestCmd(),
		publishCmd(),
		uploadDiagramsCmd(),
	)
	return root
}

func loadCatalog(path string) (journey.Config, error) {
	if strings.TrimSpace(path) == "" {
		return journey.Default(), nil
	}
	return journey.LoadFile(path)
}
