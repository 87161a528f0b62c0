package gcloud

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Preflight verifies that gcloud is installed and authenticated. It runs once
// per invocation, before any real operation, so later failures can be blamed
// on the operation itself rather than a missing SDK.
func Preflight(ctx context.Context, c Client) error {
	if _, err := c.Version(ctx); err != nil {
		if errors.Is(err, ErrGcloudNotFound) {
			return fmt.Errorf("%w\n%s", err, InstallHint())
		}
		return fmt.Errorf("gcloud is installed but not working: %w", err)
	}

	if _, err := c.ActiveAccount(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return fmt.Errorf("%w\nAuthenticate with:\n  gcloud auth login", ErrNotAuthenticated)
		}
		return fmt.Errorf("failed to check gcloud authentication: %w", err)
	}

	return nil
}

// InstallHint returns platform-specific installation guidance for the SDK.
func InstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install the Google Cloud SDK:\n" +
			"  brew install --cask google-cloud-sdk\n" +
			"or visit https://cloud.google.com/sdk/docs/install"
	case "linux":
		return "Install the Google Cloud SDK:\n" +
			"  curl https://sdk.cloud.google.com | bash\n" +
			"or visit https://cloud.google.com/sdk/docs/install"
	default:
		return "Install the Google Cloud SDK: https://cloud.google.com/sdk/docs/install"
	}
}
