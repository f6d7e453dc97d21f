package tmux

import (
	"regexp"
	"strings"
)

var invalidSessionChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeSessionName replaces every character outside [A-Za-z0-9_-] with a
// hyphen. Unlike a slug helper, it does not lowercase or collapse runs of
// hyphens: session names are matched verbatim against tmux's own listing, so
// any normalization here would have to be mirrored everywhere a name is
// looked up again.
func SanitizeSessionName(name string) string {
	sanitized := invalidSessionChars.ReplaceAllString(name, "-")
	if sanitized == "" {
		return "session"
	}
	return sanitized
}

// SessionName derives the deterministic tmux session name for a workspace:
// grove-ws-{project?-}{workspace}, sanitized per SanitizeSessionName.
func SessionName(project, workspaceName string) string {
	var raw string
	if project != "" {
		raw = "grove-ws-" + project + "-" + workspaceName
	} else {
		raw = "grove-ws-" + workspaceName
	}
	return SanitizeSessionName(raw)
}

// GitPreviewSessionName returns the companion git-preview session name for a
// workspace session.
func GitPreviewSessionName(workspaceSessionName string) string {
	return workspaceSessionName + "-git"
}

// HasGrovePrefix reports whether a session name was created by grove, used to
// filter the multiplexer's session listing during reconciliation.
func HasGrovePrefix(sessionName string) bool {
	return strings.HasPrefix(sessionName, "grove-ws-")
}
