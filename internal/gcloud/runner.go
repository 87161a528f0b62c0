package gcloud

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes external commands. It exists so the rest of the tool can be
// tested without a real gcloud binary on the machine.
//
// In production, this is satisfied by execRunner.
// In tests, this is satisfied by fake implementations.
type Runner interface {
	// Run executes the command and captures its output.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

	// RunInteractive executes the command attached to the user's terminal.
	// Used for ssh, where gcloud itself owns the session.
	RunInteractive(ctx context.Context, name string, args ...string) error
}

// execRunner runs commands via os/exec.
type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (execRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// exitCode extracts the process exit code from a Run error, or -1 if the
// process never ran.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
