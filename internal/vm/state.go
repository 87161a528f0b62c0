package vm

// GCE instance status strings, as reported by `gcloud compute instances
// describe --format=value(status)`.
const (
	StatusProvisioning = "PROVISIONING"
	StatusStaging      = "STAGING"
	StatusRunning      = "RUNNING"
	StatusStopping     = "STOPPING"
	StatusSuspending   = "SUSPENDING"
	StatusSuspended    = "SUSPENDED"
	StatusRepairing    = "REPAIRING"
	StatusTerminated   = "TERMINATED"
)

// IsRunning returns true if the instance is up and reachable.
func IsRunning(status string) bool {
	return status == StatusRunning
}

// IsTransitional returns true if the instance is between stable states and
// will settle on its own.
func IsTransitional(status string) bool {
	switch status {
	case StatusProvisioning, StatusStaging, StatusStopping, StatusSuspending, StatusRepairing:
		return true
	}
	return false
}
