package workspace

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/grovetools/core/errors"
)

// flockContext returns a context bounding how long a TryLockContext poll
// loop is allowed to run.
func flockContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Marker file names written at each workspace root (spec §6 External
// Interfaces).
const (
	AgentMarkerFile = ".grove-agent"
	BaseMarkerFile  = ".grove-base"
	SetupScriptFile = ".grove-setup.sh"
	StartScriptFile = ".grove-start.sh"
)

// gitignoreEntries is appended (idempotently) to a project's ignore file on
// workspace creation.
var gitignoreEntries = []string{
	AgentMarkerFile,
	BaseMarkerFile,
	StartScriptFile,
	SetupScriptFile,
}

// ReadAgentMarker reads the single-line .grove-agent marker at workspaceRoot.
// A missing file means "not Grove-managed" and is reported via ok=false with
// a nil error; a present-but-unreadable file is a structural-corruption
// error (spec §7 kind 4).
func ReadAgentMarker(workspaceRoot string) (kind AgentKind, ok bool, err error) {
	path := filepath.Join(workspaceRoot, AgentMarkerFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.MarkerUnreadable(path, err)
	}
	return ParseAgentKind(strings.TrimSpace(string(content))), true, nil
}

// WriteAgentMarker writes the .grove-agent marker.
func WriteAgentMarker(workspaceRoot string, kind AgentKind) error {
	path := filepath.Join(workspaceRoot, AgentMarkerFile)
	return os.WriteFile(path, []byte(string(kind)+"\n"), 0644)
}

// ReadBaseMarker reads the single-line .grove-base marker, returning "" if
// absent.
func ReadBaseMarker(workspaceRoot string) (string, error) {
	path := filepath.Join(workspaceRoot, BaseMarkerFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.MarkerUnreadable(path, err)
	}
	return strings.TrimSpace(string(content)), nil
}

// WriteBaseMarker writes the .grove-base marker.
func WriteBaseMarker(workspaceRoot, baseBranch string) error {
	path := filepath.Join(workspaceRoot, BaseMarkerFile)
	return os.WriteFile(path, []byte(baseBranch+"\n"), 0644)
}

// AppendGitignore idempotently appends Grove's marker/script filenames to
// the ignore file at projectRoot/.gitignore, preserving existing line order
// and never duplicating an entry already present (spec §6 Gitignore
// additions).
func AppendGitignore(projectRoot string) error {
	path := filepath.Join(projectRoot, ".gitignore")

	existing := make(map[string]bool)
	var lines []string
	if f, err := os.Open(path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			lines = append(lines, line)
			existing[strings.TrimSpace(line)] = true
		}
		f.Close()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read gitignore: %w", err)
	}

	changed := false
	for _, entry := range gitignoreEntries {
		if !existing[entry] {
			lines = append(lines, entry)
			existing[entry] = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// RunSetupScript executes .grove-setup.sh at projectRoot, if present, with
// the environment variables named in spec §6. A non-zero exit is a
// setup-failure (spec §7 kind 3); absence of the script is not an error.
func RunSetupScript(projectRoot, mainWorktree, worktreeBranch, worktreePath string) error {
	scriptPath := filepath.Join(projectRoot, SetupScriptFile)
	if _, err := os.Stat(scriptPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cmd := exec.Command("sh", scriptPath)
	cmd.Dir = worktreePath
	cmd.Env = append(os.Environ(),
		"MAIN_WORKTREE="+mainWorktree,
		"WORKTREE_BRANCH="+worktreeBranch,
		"WORKTREE_PATH="+worktreePath,
	)
	return cmd.Run()
}

// startScriptLockTimeout bounds how long WriteStartScript waits for the
// advisory lock before giving up, rather than blocking a reconcile pass
// forever behind a stuck launcher.
const startScriptLockTimeout = 2 * time.Second

// WriteStartScript writes a self-deleting launcher script used for
// "prompted" agent launches (an initial prompt piped into the agent on
// first start). The script removes itself as its final action so a stale
// launcher never re-fires on a later reconciliation pass.
//
// Creation is guarded by an advisory file lock (gofrs/flock) so a concurrent
// reconcile pass never overwrites a launcher script a tmux pane is mid-way
// through executing and self-deleting.
func WriteStartScript(workspaceRoot, launchCommand string) (string, error) {
	scriptPath := filepath.Join(workspaceRoot, StartScriptFile)
	lockPath := scriptPath + ".lock"

	lock := flock.New(lockPath)
	ctx, cancel := flockContext(startScriptLockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 20*time.Millisecond)
	if err != nil {
		return "", fmt.Errorf("lock launcher script: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("timed out waiting for launcher script lock at %s", lockPath)
	}
	defer lock.Unlock()

	token := uuid.NewString()
	content := fmt.Sprintf("#!/bin/sh\nset -e\n# token=%s\n%s\nrm -f -- \"$0\"\n", token, launchCommand)
	if err := os.WriteFile(scriptPath, []byte(content), 0755); err != nil {
		return "", err
	}
	return scriptPath, nil
}

// sessionNameSanitizer replaces any character outside [A-Za-z0-9_-] with a
// hyphen (spec §6 Multiplexer session naming).
var sessionNameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeSessionComponent replaces characters outside the multiplexer's
// allowed set with "-".
func SanitizeSessionComponent(s string) string {
	return sessionNameSanitizer.ReplaceAllString(s, "-")
}

// SessionName derives the deterministic tmux session name for a workspace:
// grove-ws-{project?-}{workspace}, with all characters outside
// [A-Za-z0-9_-] replaced by "-".
func SessionName(project, workspaceName string) string {
	if project == "" {
		return "grove-ws-" + SanitizeSessionComponent(workspaceName)
	}
	return "grove-ws-" + SanitizeSessionComponent(project) + "-" + SanitizeSessionComponent(workspaceName)
}

// GitPreviewSessionName derives the companion session name used for the
// git-preview pane.
func GitPreviewSessionName(project, workspaceName string) string {
	return SessionName(project, workspaceName) + "-git"
}

// WorkspaceDirName derives the sibling directory name for a workspace:
// {project}-{workspace} (spec §3 identity constraints).
func WorkspaceDirName(project, workspaceName string) string {
	return project + "-" + workspaceName
}

// nameSanitizer restricts a workspace's own name to the slug-safe class the
// data model requires: alphanumerics, hyphens, underscores.
var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// IsValidWorkspaceName reports whether name satisfies the slug-safe
// constraint on Workspace.Name (spec §3 Data Model).
func IsValidWorkspaceName(name string) bool {
	return name != "" && !nameSanitizer.MatchString(name)
}
