package vm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tchung/gcpfree/internal/gcloud"
)

func TestConnect_Success(t *testing.T) {
	ctx := context.Background()
	gc := newMockGcloudClient()
	gc.existingInstance(StatusRunning)

	if err := connectWithDeps(ctx, gc, testConfig()); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(gc.sshCalls) != 1 {
		t.Errorf("expected 1 ssh call, got %d", len(gc.sshCalls))
	}
}

func TestConnect_RefusedWhenAbsent(t *testing.T) {
	ctx := context.Background()
	gc := newMockGcloudClient() // default: instance absent

	err := connectWithDeps(ctx, gc, testConfig())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, gcloud.ErrInstanceNotFound) {
		t.Errorf("expected ErrInstanceNotFound, got: %v", err)
	}
	if !strings.Contains(err.Error(), "create") {
		t.Errorf("expected guidance to create first, got: %v", err)
	}
	if len(gc.sshCalls) != 0 {
		t.Errorf("expected 0 ssh calls, got %d", len(gc.sshCalls))
	}
}

func TestConnect_RefusedWhenNotRunning(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantHint string
	}{
		{"provisioning", StatusProvisioning, "try again shortly"},
		{"staging", StatusStaging, "try again shortly"},
		{"terminated", StatusTerminated, "delete and recreate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gc := newMockGcloudClient()
			gc.existingInstance(tt.status)

			err := connectWithDeps(ctx, gc, testConfig())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.status) {
				t.Errorf("expected status %q in error, got: %v", tt.status, err)
			}
			if !strings.Contains(err.Error(), tt.wantHint) {
				t.Errorf("expected hint %q in error, got: %v", tt.wantHint, err)
			}
			if len(gc.sshCalls) != 0 {
				t.Errorf("expected 0 ssh calls, got %d", len(gc.sshCalls))
			}
		})
	}
}
