package vm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tchung/gcpfree/internal/config"
	"github.com/tchung/gcpfree/internal/gcloud"
)

// Free Tier eligible defaults. These are fixed; the only user-configurable
// pieces are the project and the boot image.
const (
	// InstanceName is the fixed name of the single managed instance.
	InstanceName = "free-tier"

	// Zone is a Free Tier eligible us-west1 zone.
	Zone = "us-west1-a"

	// MachineType is the Free Tier machine size (0.25 vCPU, 1GB RAM).
	MachineType = "e2-micro"

	// BootDiskSizeGB is the Free Tier disk allowance.
	BootDiskSizeGB = 30

	// BootDiskType is the Free Tier eligible disk type.
	BootDiskType = "pd-standard"

	// ImageProject is the public project hosting Ubuntu images.
	ImageProject = "ubuntu-os-cloud"

	// NetworkTag marks the instance for the ssh-allowing firewall rule.
	NetworkTag = "allow-ssh"

	// deleteTimeout bounds the wait for instance deletion. gcloud usually
	// finishes within this; past it, the deletion is reported as likely
	// still in progress rather than failed.
	deleteTimeout = 3 * time.Minute
)

// Existence is the observed presence of the managed instance.
type Existence struct {
	// Found reports whether the instance exists.
	Found bool

	// Status is the instance status (RUNNING, PROVISIONING, ...) when found.
	Status string
}

// Exists queries gcloud for the managed instance. A failed query is an
// error, never "absent": acting on unknown state could violate the
// single-VM guarantee.
func Exists(ctx context.Context, gc gcloud.Client, cfg config.Config) (Existence, error) {
	return existsWithDeps(ctx, gc, cfg)
}

func existsWithDeps(ctx context.Context, gc gcloudClient, cfg config.Config) (Existence, error) {
	status, err := gc.DescribeInstance(ctx, cfg.Project, Zone, InstanceName)
	if err != nil {
		if errors.Is(err, gcloud.ErrInstanceNotFound) {
			return Existence{}, nil
		}
		return Existence{}, fmt.Errorf("failed to check whether instance '%s' exists: %w", InstanceName, err)
	}
	return Existence{Found: true, Status: status}, nil
}
