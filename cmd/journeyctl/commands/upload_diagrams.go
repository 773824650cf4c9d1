package commands

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"journey-backend/internal/bootstrap"
	"journey-backend/internal/shared/config"
	"journey-backend/internal/shared/storage/object"
)

func uploadDiagramsCmd() *cobra.Command {
	var from, prefix string
	cmd := &cobra.Command{
		Use:   "upload-diagrams",
		Short: "Copy diagram files into the configured asset store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			assets, err := bootstrap.NewAssetStore(ctx, config.Load())
			if err != nil {
				return err
			}
			uploaded, err := uploadDir(ctx, assets, from, prefix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d files\n", len(uploaded))

			for _, ch := range store.Chapters() {
				key, err := ch.Diagram.AssetKey()
				if err != nil {
					continue
				}
				if _, ok := uploaded[key]; !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s diagram %s was not uploaded\n", ch.ID, key)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "directory holding diagram files")
	cmd.Flags().StringVar(&prefix, "prefix", "diagrams", "key prefix inside the asset store")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// uploadDir saves every regular file under dir and returns the keys written.
func uploadDir(ctx context.Context, assets object.ObjectStore, dir, prefix string) (map[string]struct{}, error) {
	uploaded := make(map[string]struct{})
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := path.Join(strings.Trim(prefix, "/"), filepath.ToSlash(rel))

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		contentType := mime.TypeByExtension(filepath.Ext(p))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if _, err := assets.SaveWithKey(ctx, key, contentType, f); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		uploaded[key] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uploaded, nil
}
