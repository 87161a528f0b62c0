package vm

import (
	"context"
	"fmt"
	"sync"

	"github.com/tchung/gcpfree/internal/gcloud"
)

// mockGcloudClient is a mock implementation of the gcloudClient interface
// for testing.
type mockGcloudClient struct {
	mu sync.Mutex

	// Configurable behavior
	describeInstanceFunc func(ctx context.Context, project, zone, name string) (string, error)
	listInstancesFunc    func(ctx context.Context, project string) ([]gcloud.Instance, error)
	createInstanceFunc   func(ctx context.Context, spec gcloud.CreateSpec) (string, error)
	deleteInstanceFunc   func(ctx context.Context, project, zone, name string) error
	sshFunc              func(ctx context.Context, project, zone, name string) error

	// Call tracking
	describeInstanceCalls []string
	listInstancesCalls    []string
	createInstanceCalls   []gcloud.CreateSpec
	deleteInstanceCalls   []string
	sshCalls              []string
}

// newMockGcloudClient creates a mock with default behavior: no instance
// exists, and every mutation succeeds.
func newMockGcloudClient() *mockGcloudClient {
	m := &mockGcloudClient{}

	m.describeInstanceFunc = func(ctx context.Context, project, zone, name string) (string, error) {
		return "", fmt.Errorf("%w: %s", gcloud.ErrInstanceNotFound, name)
	}
	m.listInstancesFunc = func(ctx context.Context, project string) ([]gcloud.Instance, error) {
		return nil, nil
	}
	m.createInstanceFunc = func(ctx context.Context, spec gcloud.CreateSpec) (string, error) {
		return "Created instance " + spec.Name, nil
	}
	m.deleteInstanceFunc = func(ctx context.Context, project, zone, name string) error {
		return nil
	}
	m.sshFunc = func(ctx context.Context, project, zone, name string) error {
		return nil
	}

	return m
}

func (m *mockGcloudClient) DescribeInstance(ctx context.Context, project, zone, name string) (string, error) {
	m.mu.Lock()
	m.describeInstanceCalls = append(m.describeInstanceCalls, name)
	m.mu.Unlock()
	return m.describeInstanceFunc(ctx, project, zone, name)
}

func (m *mockGcloudClient) ListInstances(ctx context.Context, project string) ([]gcloud.Instance, error) {
	m.mu.Lock()
	m.listInstancesCalls = append(m.listInstancesCalls, project)
	m.mu.Unlock()
	return m.listInstancesFunc(ctx, project)
}

func (m *mockGcloudClient) CreateInstance(ctx context.Context, spec gcloud.CreateSpec) (string, error) {
	m.mu.Lock()
	m.createInstanceCalls = append(m.createInstanceCalls, spec)
	m.mu.Unlock()
	return m.createInstanceFunc(ctx, spec)
}

func (m *mockGcloudClient) DeleteInstance(ctx context.Context, project, zone, name string) error {
	m.mu.Lock()
	m.deleteInstanceCalls = append(m.deleteInstanceCalls, name)
	m.mu.Unlock()
	return m.deleteInstanceFunc(ctx, project, zone, name)
}

func (m *mockGcloudClient) SSH(ctx context.Context, project, zone, name string) error {
	m.mu.Lock()
	m.sshCalls = append(m.sshCalls, name)
	m.mu.Unlock()
	return m.sshFunc(ctx, project, zone, name)
}

// existingInstance configures the mock to report an existing instance in the
// given status.
func (m *mockGcloudClient) existingInstance(status string) {
	m.describeInstanceFunc = func(ctx context.Context, project, zone, name string) (string, error) {
		return status, nil
	}
}
