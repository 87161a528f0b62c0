package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
	"github.com/tchung/gcpfree/internal/vm"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	outputFormat string
	noHeaders    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gcpfree",
	Short: "gcpfree - GCP Free Tier VM management tool",
	Long: `gcpfree manages a single GCP Compute Engine instance within the Free Tier.

It creates one Ubuntu LTS AMD64 VM named 'free-tier' with Free Tier eligible
defaults (e2-micro, us-west1-a, 30GB standard disk) and refuses to create a
second one. All operations are carried out through the gcloud CLI.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Project == "" {
			fmt.Println("ERROR: GCP_PROJECT not set")
			fmt.Println("Run 'gcpfree set' to configure your project.")
			fmt.Println()
		} else {
			printDefaults(cfg)
			fmt.Println()
		}
		return cmd.Usage()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(deleteCmd)

	for _, cmd := range []*cobra.Command{listCmd, imageCmd} {
		cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, yaml, json)")
		cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit headers in table output")
	}
}

// loadConfig and newClient are indirected through variables so tests can
// substitute fakes.
var (
	loadConfig = config.Load
	newClient  = liveClient
)

// requireConfig loads the settings file and refuses to continue without a
// configured project. This runs before any gcloud invocation, so a missing
// project never causes an external call.
func requireConfig() (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// liveClient builds the gcloud client and verifies install and auth state
// once per invocation.
func liveClient(ctx context.Context) (gcloud.Client, error) {
	gc := gcloud.NewClient(gcloud.NewRunner())
	if err := gcloud.Preflight(ctx, gc); err != nil {
		return nil, err
	}
	return gc, nil
}

func printDefaults(cfg config.Config) {
	fmt.Println("Defaults (Free Tier eligible):")
	fmt.Printf("  VM Name: %s\n", vm.InstanceName)
	fmt.Printf("  Zone: %s\n", vm.Zone)
	fmt.Printf("  Machine: %s (0.25 vCPU, 1GB RAM)\n", vm.MachineType)
	fmt.Printf("  Image: %s\n", cfg.Image)
	fmt.Printf("  Boot Disk: %dGB %s\n", vm.BootDiskSizeGB, vm.BootDiskType)
}
