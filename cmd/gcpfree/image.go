package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tchung/gcpfree/internal/image"
	"github.com/tchung/gcpfree/internal/output"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "List Ubuntu LTS AMD64 images",
	Long: `List the Ubuntu LTS AMD64 Standard images available for the Free Tier VM.

Only the 22.04 and 24.04 LTS Standard builds are shown; Pro, Minimal,
accelerator and ARM64 variants are filtered out. The configured default
image is marked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.ValidateFormat(outputFormat); err != nil {
			return err
		}
		cfg, err := requireConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		gc, err := newClient(ctx)
		if err != nil {
			return err
		}

		names, err := gc.ListImages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list images: %w", err)
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(outputFormat),
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		result, err := formatter.FormatImages(image.Catalog(names, cfg.Image))
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(result)
		return nil
	},
}
