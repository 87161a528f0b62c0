package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tchung/gcpfree/internal/image"
	"github.com/tchung/gcpfree/internal/output"
	"github.com/tchung/gcpfree/internal/progress"
	"github.com/tchung/gcpfree/internal/vm"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List VM instances",
	Long: `List the Compute Engine instances in the configured project.

Output formats:
  -o table  Human-readable table (default)
  -o yaml   YAML list
  -o json   JSON array`,
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

		instances, err := vm.List(ctx, gc, cfg)
		if err != nil {
			return fmt.Errorf("failed to list instances: %w", err)
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(outputFormat),
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		result, err := formatter.FormatInstances(instances)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(result)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the Free Tier VM with defaults",
	Long: `Create the 'free-tier' instance using fixed Free Tier eligible parameters:
e2-micro in us-west1-a with a 30GB pd-standard boot disk and the configured
Ubuntu LTS image.

Creation is refused while the instance already exists, keeping the tool
within the single-VM Free Tier allowance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		gc, err := newClient(ctx)
		if err != nil {
			return err
		}

		fmt.Println("(this can take up to 3 mins)")

		var out string
		err = progress.Run(
			fmt.Sprintf("Creating instance '%s' with %s...", vm.InstanceName, image.Describe(cfg.Image)),
			func() error {
				var createErr error
				out, createErr = vm.Create(ctx, gc, cfg)
				return createErr
			},
		)
		if err != nil {
			progress.Failure(fmt.Sprintf("Failed to create instance '%s'", vm.InstanceName))
			return err
		}

		progress.Success(fmt.Sprintf("Instance '%s' created successfully!", vm.InstanceName))
		if strings.TrimSpace(out) != "" {
			fmt.Println(strings.TrimSpace(out))
		}
		return nil
	},
}

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "SSH into the Free Tier VM",
	Long: `Open an interactive SSH session to the 'free-tier' instance via
'gcloud compute ssh'. The instance must exist and be running.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		gc, err := newClient(ctx)
		if err != nil {
			return err
		}

		return vm.Connect(ctx, gc, cfg)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the Free Tier VM",
	Long: `Delete the 'free-tier' instance, waiting up to 3 minutes for gcloud to
confirm. If the wait ceiling is reached the deletion is reported as likely
still in progress, together with manual verification steps.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}

		if !confirm(fmt.Sprintf("Delete instance '%s'? (y/N): ", vm.InstanceName)) {
			fmt.Println("Aborted.")
			return nil
		}

		ctx := context.Background()
		gc, err := newClient(ctx)
		if err != nil {
			return err
		}

		fmt.Println("(this can take up to 3 mins)")

		var outcome vm.DeleteOutcome
		err = progress.Run(
			fmt.Sprintf("Deleting instance '%s'...", vm.InstanceName),
			func() error {
				var deleteErr error
				outcome, deleteErr = vm.Delete(ctx, gc, cfg)
				return deleteErr
			},
		)
		if err != nil {
			progress.Failure(fmt.Sprintf("Failed to delete instance '%s'", vm.InstanceName))
			return err
		}

		switch outcome {
		case vm.NothingToDelete:
			fmt.Printf("Instance '%s' not found. Nothing to delete.\n", vm.InstanceName)
		case vm.DeleteTimedOut:
			progress.Failure("Delete operation timed out after 3 minutes")
			fmt.Println("The deletion may still be in progress. You can:")
			for _, line := range vm.DeleteFallback(cfg.Project) {
				fmt.Println("  " + line)
			}
		case vm.Deleted:
			progress.Success(fmt.Sprintf("Instance '%s' deleted successfully!", vm.InstanceName))
		}
		return nil
	},
}

// confirm prompts on stdout and reads one line from stdin. Anything other
// than y/Y declines.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
