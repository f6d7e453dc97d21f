package agentprobe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/grovetools/core/pkg/workspace"
)

func withFakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestProbeClaudeActiveWithinWindow(t *testing.T) {
	home := withFakeHome(t)
	canonical := filepath.Join(home, "project")
	dir := filepath.Join(home, ".claude", "projects", sanitizeClaudeProjectDir(canonical))
	require.NoError(t, os.MkdirAll(dir, 0755))

	sessionFile := filepath.Join(dir, "abc.jsonl")
	require.NoError(t, os.WriteFile(sessionFile, []byte(`{"role":"user"}`+"\n"), 0644))

	probe, ok := ProbeWorkspace(workspace.AgentClaude, canonical)
	require.True(t, ok)
	require.True(t, probe.Active, "freshly written session file is within the active window")
}

func TestProbeClaudeWaitingWhenStaleAndLastSpeakerIsUser(t *testing.T) {
	home := withFakeHome(t)
	canonical := filepath.Join(home, "project")
	dir := filepath.Join(home, ".claude", "projects", sanitizeClaudeProjectDir(canonical))
	require.NoError(t, os.MkdirAll(dir, 0755))

	sessionFile := filepath.Join(dir, "abc.jsonl")
	require.NoError(t, os.WriteFile(sessionFile, []byte(`{"role":"assistant"}`+"\n"+`{"role":"user"}`+"\n"), 0644))

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(sessionFile, stale, stale))

	probe, ok := ProbeWorkspace(workspace.AgentClaude, canonical)
	require.True(t, ok)
	require.False(t, probe.Active, "stale file whose last speaker is the user means Waiting")
}

func TestProbeClaudeActiveWhenStaleButLastSpeakerIsAgent(t *testing.T) {
	home := withFakeHome(t)
	canonical := filepath.Join(home, "project")
	dir := filepath.Join(home, ".claude", "projects", sanitizeClaudeProjectDir(canonical))
	require.NoError(t, os.MkdirAll(dir, 0755))

	sessionFile := filepath.Join(dir, "abc.jsonl")
	require.NoError(t, os.WriteFile(sessionFile, []byte(`{"role":"user"}`+"\n"+`{"role":"assistant"}`+"\n"), 0644))

	stale := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(sessionFile, stale, stale))

	probe, ok := ProbeWorkspace(workspace.AgentClaude, canonical)
	require.True(t, ok)
	require.True(t, probe.Active, "stale file whose last speaker is the agent still means Active")
}

func TestProbeCodexMatchesByCwdHeader(t *testing.T) {
	home := withFakeHome(t)
	canonical := filepath.Join(home, "project")
	dir := filepath.Join(home, ".codex", "sessions", "2026", "01", "01")
	require.NoError(t, os.MkdirAll(dir, 0755))

	sessionFile := filepath.Join(dir, "rollout.jsonl")
	header := `{"cwd":"` + canonical + `","id":"x"}` + "\n"
	require.NoError(t, os.WriteFile(sessionFile, []byte(header+`{"role":"user"}`+"\n"), 0644))

	probe, ok := ProbeWorkspace(workspace.AgentCodex, canonical)
	require.True(t, ok)
	require.True(t, probe.Active)
}

func TestProbeWorkspaceUnsupportedKindReturnsNotOK(t *testing.T) {
	withFakeHome(t)
	_, ok := ProbeWorkspace(workspace.AgentUnsupported, "/tmp/whatever")
	require.False(t, ok)
}

func TestProbeClaudeMissingDirReturnsNotOK(t *testing.T) {
	withFakeHome(t)
	_, ok := ProbeWorkspace(workspace.AgentClaude, "/nonexistent/path")
	require.False(t, ok)
}
