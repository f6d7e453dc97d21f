package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GroveError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *GroveError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ServiceNotFound creates a service not found error
func ServiceNotFound(service string) *GroveError {
	return New(ErrCodeServiceNotFound, fmt.Sprintf("service '%s' not found", service)).
		WithDetail("service", service)
}

// ContainerTimeout creates a container timeout error
func ContainerTimeout(service string, timeout string) *GroveError {
	return New(ErrCodeContainerTimeout,
		fmt.Sprintf("container '%s' failed to become ready within %s", service, timeout)).
		WithDetail("service", service).
		WithDetail("timeout", timeout)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *GroveError {
	groveErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		groveErr = groveErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return groveErr
}

// PortConflict creates a port conflict error
func PortConflict(port int, service string) *GroveError {
	return New(ErrCodePortConflict,
		fmt.Sprintf("port %d is already in use by another service", port)).
		WithDetail("port", port).
		WithDetail("conflictingService", service)
}

// SessionNotFound creates a "session not found" error (spec §7 kind 2:
// session death). Callers classify on this code, not on string matching.
func SessionNotFound(detail string) *GroveError {
	return New(ErrCodeSessionNotFound, "tmux session not found").
		WithDetail("detail", detail)
}

// PaneNotFound creates a "pane not found" error, the sibling of
// SessionNotFound for pane-scoped operations.
func PaneNotFound(detail string) *GroveError {
	return New(ErrCodePaneNotFound, "tmux pane not found").
		WithDetail("detail", detail)
}

// CommandTimeout creates an error for a multiplexer call that exceeded its
// per-call deadline (spec §4.1 Timeouts).
func CommandTimeout(detail string) *GroveError {
	return New(ErrCodeCommandTimeout, "multiplexer command timed out").
		WithDetail("detail", detail)
}

// CaptureTruncated creates an error-adjacent note recording that a capture
// was truncated at the 2 MiB ceiling (spec §4.1). Not a failure — callers
// attach it as metadata, not as a returned error.
func CaptureTruncated(originalLen, truncatedLen int) *GroveError {
	return New(ErrCodeCaptureTruncated, "capture output truncated").
		WithDetail("originalBytes", originalLen).
		WithDetail("truncatedBytes", truncatedLen)
}

// MarkerUnreadable creates an error for a present-but-unreadable
// .grove-agent/.grove-base marker file (spec §7 kind 4: structural
// corruption).
func MarkerUnreadable(path string, cause error) *GroveError {
	return Wrap(cause, ErrCodeMarkerUnreadable, fmt.Sprintf("workspace marker unreadable: %s", path)).
		WithDetail("path", path)
}

// SetupFailed creates an error for a non-zero .grove-setup.sh exit (spec §7
// kind 3: setup/launch failure).
func SetupFailed(workspace string, cause error) *GroveError {
	return Wrap(cause, ErrCodeSetupFailed, fmt.Sprintf("setup script failed for workspace %q", workspace)).
		WithDetail("workspace", workspace)
}

// LaunchFailed creates an error for an agent that refused to start (spec §7
// kind 3).
func LaunchFailed(workspace string, cause error) *GroveError {
	return Wrap(cause, ErrCodeLaunchFailed, fmt.Sprintf("agent failed to launch in workspace %q", workspace)).
		WithDetail("workspace", workspace)
}

// GenerationStale creates the invariant-violation error for a capture result
// whose generation no longer matches the session's current generation (spec
// §7 kind 5). It is never surfaced to the operator — only recorded in the
// debug-record stream.
func GenerationStale(session string, got, want uint64) *GroveError {
	return New(ErrCodeGenerationStale, "stale generation discarded").
		WithDetail("session", session).
		WithDetail("got", got).
		WithDetail("want", want)
}