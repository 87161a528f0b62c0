package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/image"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure project and image settings",
	Long: `Interactively configure the GCP project id and default Ubuntu image.

Settings are written to ~/.env as GCP_PROJECT and GCP_IMAGE; unrelated keys
in that file are left untouched. This is the only command that works without
a configured project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println("Configure Default Settings")
		fmt.Println(strings.Repeat("=", 30))

		reader := bufio.NewReader(os.Stdin)

		current := cfg.Project
		if current == "" {
			current = "(not set)"
		}
		fmt.Printf("\nCurrent GCP_PROJECT: %s\n", current)
		newProject := promptLine(reader, "Enter GCP Project ID (or press Enter to keep current): ")

		entries := availableImages(cmd.Context(), cfg)

		fmt.Printf("\nCurrent Image: %s\n", cfg.Image)
		fmt.Println("Available Ubuntu Images:")
		for i, entry := range entries {
			marker := ""
			if entry.Name == cfg.Image {
				marker = " (current)"
			}
			fmt.Printf("  %d. %s - %s%s\n", i+1, entry.Name, entry.Description, marker)
		}
		choice := promptLine(reader, fmt.Sprintf("Choose image (1-%d, or press Enter to keep current): ", len(entries)))

		changed := false
		if newProject != "" {
			cfg.Project = newProject
			changed = true
		}
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(entries) {
			cfg.Image = entries[idx-1].Name
			changed = true
		}

		if changed {
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Println("\n✓ Settings updated!")
			fmt.Printf("   Project: %s\n", cfg.Project)
			fmt.Printf("   Image: %s\n", cfg.Image)
		} else {
			fmt.Println("\n✓ No changes made.")
		}

		fmt.Println()
		printDefaults(cfg)
		fmt.Println()
		return nil
	},
}

// availableImages queries the live catalog, falling back to the known LTS
// families so the project id can still be configured when gcloud is
// missing, unauthenticated or offline.
func availableImages(ctx context.Context, cfg config.Config) []image.Entry {
	names := image.Fallback()

	if gc, err := newClient(ctx); err == nil {
		if live, err := gc.ListImages(ctx); err == nil {
			if filtered := image.Filter(live); len(filtered) > 0 {
				names = live
			}
		}
	}

	return image.Catalog(names, cfg.Image)
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
