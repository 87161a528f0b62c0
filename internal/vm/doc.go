// Package vm guards the lifecycle of the single Free Tier instance.
//
// The tool manages at most one VM, named "free-tier", and every operation
// re-queries gcloud for current state before acting:
//   - Create: refused while the instance exists
//   - Delete: a no-op when the instance is absent; bounded to a 3 minute
//     wait, after which the deletion is reported as likely still in progress
//     together with manual verification steps
//   - Connect: requires the instance to exist and be RUNNING
//   - List: passes through the current instance table
//
// Nothing is cached; gcloud is the source of truth on every call.
//
// Each exported operation delegates to an unexported ...WithDeps function
// that accepts the gcloud client as an interface, so tests can substitute a
// mock without invoking a real binary.
package vm
