package gcloud

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGcloudNotFound indicates the gcloud binary is not installed or not on PATH.
	ErrGcloudNotFound = errors.New("gcloud CLI not found")

	// ErrNotAuthenticated indicates gcloud has no active credentials.
	ErrNotAuthenticated = errors.New("gcloud is not authenticated")

	// ErrInstanceNotFound indicates the requested instance does not exist.
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrInstanceExists indicates an instance with the requested name already exists.
	ErrInstanceExists = errors.New("instance already exists")
)

// CommandError wraps a gcloud invocation that failed for a reason other than
// the well-known conditions above. It preserves the arguments and stderr so
// the caller can show the user exactly what was run and what came back.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("gcloud %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.err
}

// classify maps a failed gcloud invocation to one of the sentinel errors,
// falling back to a CommandError for anything unrecognized. A query that
// fails for an unknown reason must stay distinct from "resource absent", so
// only stderr patterns that clearly mean not-found map to ErrInstanceNotFound.
func classify(args []string, stderr string, exitCode int, err error) error {
	s := strings.ToLower(stderr)

	switch {
	// "Could not fetch resource:" alone is ambiguous; gcloud uses the same
	// prefix for permission and backend errors, so it never implies absence.
	case strings.Contains(s, "was not found") || strings.Contains(s, "not found: 404"):
		return fmt.Errorf("%w: %s", ErrInstanceNotFound, strings.TrimSpace(stderr))
	case strings.Contains(s, "already exists"):
		return fmt.Errorf("%w: %s", ErrInstanceExists, strings.TrimSpace(stderr))
	case strings.Contains(s, "not currently have an active account") ||
		strings.Contains(s, "reauthentication required") ||
		strings.Contains(s, "application default credentials"):
		return fmt.Errorf("%w: run 'gcloud auth login'", ErrNotAuthenticated)
	}

	return &CommandError{Args: args, Stderr: stderr, ExitCode: exitCode, err: err}
}
