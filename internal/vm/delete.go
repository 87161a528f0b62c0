package vm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
)

// DeleteOutcome reports how a delete request ended.
type DeleteOutcome int

const (
	// Deleted means gcloud confirmed the deletion.
	Deleted DeleteOutcome = iota

	// NothingToDelete means no instance existed.
	NothingToDelete

	// DeleteTimedOut means the wait ceiling was reached before gcloud
	// confirmed completion. The deletion may still be in progress; this is
	// not treated as a failure.
	DeleteTimedOut
)

// Delete deletes the Free Tier instance, waiting at most 3 minutes for
// gcloud to confirm completion.
//
// Precondition: the instance must exist; deleting an absent instance is a
// no-op reported as NothingToDelete. A timeout yields DeleteTimedOut with a
// nil error; callers should surface DeleteFallback so the user can verify
// out of band.
func Delete(ctx context.Context, gc gcloud.Client, cfg config.Config) (DeleteOutcome, error) {
	return deleteWithDeps(ctx, gc, cfg, deleteTimeout)
}

func deleteWithDeps(ctx context.Context, gc gcloudClient, cfg config.Config, timeout time.Duration) (DeleteOutcome, error) {
	existence, err := existsWithDeps(ctx, gc, cfg)
	if err != nil {
		return 0, err
	}
	if !existence.Found {
		return NothingToDelete, nil
	}

	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := gc.DeleteInstance(dctx, cfg.Project, Zone, InstanceName); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || dctx.Err() == context.DeadlineExceeded {
			return DeleteTimedOut, nil
		}
		return 0, fmt.Errorf("failed to delete instance '%s': %w", InstanceName, err)
	}
	return Deleted, nil
}

// DeleteFallback returns the manual verification steps shown after a delete
// timeout. Each line is literal and user-runnable.
func DeleteFallback(project string) []string {
	return []string{
		"Check status:   gcpfree list",
		"Console:        https://console.cloud.google.com/compute/instances?project=" + project,
		fmt.Sprintf("Delete again:   gcloud compute instances delete %s --project=%s --zone=%s --quiet",
			InstanceName, project, Zone),
	}
}
