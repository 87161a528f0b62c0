package vm

import (
	"context"
	"fmt"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
)

// Create creates the Free Tier instance with fixed parameters.
//
// Precondition: the instance must not already exist. If it does, or its
// existence cannot be determined, no creation request is issued.
//
// Creation blocks on gcloud's own completion signal; no additional timeout
// is imposed because gcloud only returns once the instance is up.
//
// Returns gcloud's stdout on success.
func Create(ctx context.Context, gc gcloud.Client, cfg config.Config) (string, error) {
	return createWithDeps(ctx, gc, cfg)
}

func createWithDeps(ctx context.Context, gc gcloudClient, cfg config.Config) (string, error) {
	existence, err := existsWithDeps(ctx, gc, cfg)
	if err != nil {
		return "", err
	}
	if existence.Found {
		return "", fmt.Errorf("%w: instance '%s' already exists (status %s); delete it first",
			gcloud.ErrInstanceExists, InstanceName, existence.Status)
	}

	return gc.CreateInstance(ctx, gcloud.CreateSpec{
		Project:        cfg.Project,
		Zone:           Zone,
		Name:           InstanceName,
		MachineType:    MachineType,
		Image:          cfg.Image,
		ImageProject:   ImageProject,
		BootDiskSizeGB: BootDiskSizeGB,
		BootDiskType:   BootDiskType,
		Tags:           []string{NetworkTag},
	})
}
