package vm

import (
	"context"
	"fmt"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
)

// Connect opens an interactive ssh session to the Free Tier instance by
// delegating to `gcloud compute ssh`.
//
// Preconditions: the instance must exist and be RUNNING. An absent instance
// is refused with guidance to create it; a transitional one with guidance to
// retry shortly.
func Connect(ctx context.Context, gc gcloud.Client, cfg config.Config) error {
	return connectWithDeps(ctx, gc, cfg)
}

func connectWithDeps(ctx context.Context, gc gcloudClient, cfg config.Config) error {
	existence, err := existsWithDeps(ctx, gc, cfg)
	if err != nil {
		return err
	}
	if !existence.Found {
		return fmt.Errorf("%w: instance '%s' does not exist; run 'gcpfree create' first",
			gcloud.ErrInstanceNotFound, InstanceName)
	}
	if !IsRunning(existence.Status) {
		hint := "start it or delete and recreate it"
		if IsTransitional(existence.Status) {
			hint = "try again shortly"
		}
		return fmt.Errorf("instance '%s' is %s, not RUNNING; %s", InstanceName, existence.Status, hint)
	}

	return gc.SSH(ctx, cfg.Project, Zone, InstanceName)
}
