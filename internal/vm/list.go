package vm

import (
	"context"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
)

// List returns the current instance table for the configured project.
// An empty project yields an empty (non-nil) slice.
func List(ctx context.Context, gc gcloud.Client, cfg config.Config) ([]gcloud.Instance, error) {
	return listWithDeps(ctx, gc, cfg)
}

func listWithDeps(ctx context.Context, gc gcloudClient, cfg config.Config) ([]gcloud.Instance, error) {
	instances, err := gc.ListInstances(ctx, cfg.Project)
	if err != nil {
		return nil, err
	}
	if instances == nil {
		instances = []gcloud.Instance{}
	}
	return instances, nil
}
