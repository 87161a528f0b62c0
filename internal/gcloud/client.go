// Package gcloud wraps the Google Cloud SDK command-line tool. Every state
// query and mutation this tool performs goes through a gcloud subprocess;
// nothing here talks to the GCP API directly.
package gcloud

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Binary is the name of the external executable.
const Binary = "gcloud"

// Instance is one row of `gcloud compute instances list`.
type Instance struct {
	Name        string `json:"name" yaml:"name"`
	Zone        string `json:"zone" yaml:"zone"`
	MachineType string `json:"machineType" yaml:"machine_type"`
	InternalIP  string `json:"internalIP,omitempty" yaml:"internal_ip,omitempty"`
	ExternalIP  string `json:"externalIP,omitempty" yaml:"external_ip,omitempty"`
	Status      string `json:"status" yaml:"status"`
}

// CreateSpec holds the parameters for an instance creation request.
type CreateSpec struct {
	Project        string
	Zone           string
	Name           string
	MachineType    string
	Image          string
	ImageProject   string
	BootDiskSizeGB int
	BootDiskType   string
	Tags           []string
}

// Client issues gcloud invocations with fixed argument templates.
//
// In production, this is satisfied by *client.
// In tests, this is satisfied by mock implementations.
type Client interface {
	// Version reports the installed gcloud version.
	Version(ctx context.Context) (string, error)

	// ActiveAccount returns the active gcloud account, or ErrNotAuthenticated.
	ActiveAccount(ctx context.Context) (string, error)

	// DescribeInstance returns the status of a named instance, or
	// ErrInstanceNotFound if it does not exist.
	DescribeInstance(ctx context.Context, project, zone, name string) (string, error)

	// ListInstances lists all instances in the project.
	ListInstances(ctx context.Context, project string) ([]Instance, error)

	// CreateInstance creates an instance and blocks until gcloud reports
	// completion. Returns gcloud's stdout.
	CreateInstance(ctx context.Context, spec CreateSpec) (string, error)

	// DeleteInstance deletes an instance and blocks until gcloud reports
	// completion or ctx expires.
	DeleteInstance(ctx context.Context, project, zone, name string) error

	// ListImages returns the names of ubuntu x86_64 images in the public
	// image catalog.
	ListImages(ctx context.Context) ([]string, error)

	// SSH hands the terminal over to `gcloud compute ssh`.
	SSH(ctx context.Context, project, zone, name string) error
}

type client struct {
	runner Runner
}

// NewClient returns a Client that invokes gcloud through the given runner.
func NewClient(r Runner) Client {
	return &client{runner: r}
}

// run invokes gcloud and classifies any failure.
func (c *client) run(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, Binary, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s is not installed or not on PATH", ErrGcloudNotFound, Binary)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", classify(args, stderr, exitCode(err), err)
	}
	return stdout, nil
}

func (c *client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	// First line is "Google Cloud SDK x.y.z".
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return line, nil
}

func (c *client) ActiveAccount(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "auth", "list", "--filter=status:ACTIVE", "--format=value(account)")
	if err != nil {
		return "", err
	}
	account := strings.TrimSpace(out)
	if account == "" {
		return "", fmt.Errorf("%w: run 'gcloud auth login'", ErrNotAuthenticated)
	}
	return account, nil
}

func (c *client) DescribeInstance(ctx context.Context, project, zone, name string) (string, error) {
	out, err := c.run(ctx,
		"compute", "instances", "describe", name,
		"--project="+project,
		"--zone="+zone,
		"--format=value(status)",
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) ListInstances(ctx context.Context, project string) ([]Instance, error) {
	out, err := c.run(ctx,
		"compute", "instances", "list",
		"--project="+project,
		"--format=value(name,zone.basename(),machineType.basename(),"+
			"networkInterfaces[0].networkIP,networkInterfaces[0].accessConfigs[0].natIP,status)",
	)
	if err != nil {
		return nil, err
	}
	return parseInstances(out), nil
}

// parseInstances parses the tab-separated rows produced by --format=value().
func parseInstances(out string) []Instance {
	instances := []Instance{}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		// value() emits one field per requested key, empty when unset.
		get := func(i int) string {
			if i < len(fields) {
				return strings.TrimSpace(fields[i])
			}
			return ""
		}
		instances = append(instances, Instance{
			Name:        get(0),
			Zone:        get(1),
			MachineType: get(2),
			InternalIP:  get(3),
			ExternalIP:  get(4),
			Status:      get(5),
		})
	}
	return instances
}

func (c *client) CreateInstance(ctx context.Context, spec CreateSpec) (string, error) {
	args := []string{
		"compute", "instances", "create", spec.Name,
		"--project=" + spec.Project,
		"--zone=" + spec.Zone,
		"--machine-type=" + spec.MachineType,
		"--image=" + spec.Image,
		"--image-project=" + spec.ImageProject,
		fmt.Sprintf("--boot-disk-size=%dGB", spec.BootDiskSizeGB),
		"--boot-disk-type=" + spec.BootDiskType,
	}
	if len(spec.Tags) > 0 {
		args = append(args, "--tags="+strings.Join(spec.Tags, ","))
	}
	return c.run(ctx, args...)
}

func (c *client) DeleteInstance(ctx context.Context, project, zone, name string) error {
	// --quiet suppresses gcloud's own confirmation prompt; this tool asks
	// the user before getting here.
	_, err := c.run(ctx,
		"compute", "instances", "delete", name,
		"--project="+project,
		"--zone="+zone,
		"--quiet",
	)
	return err
}

func (c *client) ListImages(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx,
		"compute", "images", "list",
		"--filter=name~ubuntu AND architecture=X86_64",
		"--format=value(name)",
	)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func (c *client) SSH(ctx context.Context, project, zone, name string) error {
	err := c.runner.RunInteractive(ctx,
		Binary,
		"compute", "ssh", name,
		"--project="+project,
		"--zone="+zone,
	)
	if err != nil && errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s is not installed or not on PATH", ErrGcloudNotFound, Binary)
	}
	return err
}
