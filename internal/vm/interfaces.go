package vm

import (
	"context"

	"github.com/tchung/gcpfree/internal/gcloud"
)

// gcloudClient defines the gcloud operations needed for lifecycle management.
//
// In production, this is satisfied by gcloud.Client.
// In tests, this is satisfied by mock implementations.
type gcloudClient interface {
	// DescribeInstance returns the status of a named instance
	DescribeInstance(ctx context.Context, project, zone, name string) (string, error)

	// ListInstances lists all instances in the project
	ListInstances(ctx context.Context, project string) ([]gcloud.Instance, error)

	// CreateInstance creates an instance and blocks until completion
	CreateInstance(ctx context.Context, spec gcloud.CreateSpec) (string, error)

	// DeleteInstance deletes an instance, bounded by ctx
	DeleteInstance(ctx context.Context, project, zone, name string) error

	// SSH hands the terminal over to gcloud compute ssh
	SSH(ctx context.Context, project, zone, name string) error
}
