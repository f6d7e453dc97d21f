// Package testutil provides shared test fixtures: a real-git-repo harness
// for worktree tests, and a FakeAdapter standing in for a live tmux server
// so Reconciler/Scheduler/Controller tests never shell out.
package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	groveerrors "github.com/grovetools/core/errors"
	"github.com/grovetools/core/pkg/tmux"
)

func sessionNotFound(session string) error {
	return groveerrors.SessionNotFound(session)
}

// InitGitRepo initializes a git repository in the given directory
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()

	// Initialize git repo
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	// Configure git user
	cmd = exec.Command("git", "config", "user.name", "Test User")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to configure git user.name: %v", err)
	}

	cmd = exec.Command("git", "config", "user.email", "test@example.com")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to configure git user.email: %v", err)
	}

	// Create initial commit
	testFile := filepath.Join(dir, "README.md")
	if err := os.WriteFile(testFile, []byte("# Test Project\n"), 0600); err != nil {
		t.Fatalf("Failed to create README: %v", err)
	}

	cmd = exec.Command("git", "add", ".")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to git add: %v", err)
	}

	cmd = exec.Command("git", "commit", "-m", "Initial commit")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to git commit: %v", err)
	}

	// Ensure we have a main branch (rename from master if needed)
	cmd = exec.Command("git", "branch", "-m", "main")
	cmd.Dir = dir
	_ = cmd.Run() // Ignore error as branch might already be named main
}

// CreateBranch creates and checks out a new git branch
func CreateBranch(t *testing.T, dir, branch string) {
	t.Helper()

	cmd := exec.Command("git", "checkout", "-b", branch)
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to create branch %s: %v", branch, err)
	}
}

// RandomString generates a random string of the specified length
func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}

// RunGitCommand runs a git command in the given directory
func RunGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to run git %v: %v", args, err)
	}
}

// CreateCommit creates a file and commits it
func CreateCommit(t *testing.T, dir, filename, content string) {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create file %s: %v", filename, err)
	}

	RunGitCommand(t, dir, "add", filename)
	RunGitCommand(t, dir, "commit", "-m", "Add "+filename)
}

// FakeAdapter is an in-memory tmux.Adapter double: no tmux binary, no
// subprocesses. Tests seed Sessions/Panes/Captures/Cursors directly and
// assert against SentNamed/SentLiteral/Resized/Killed afterward.
type FakeAdapter struct {
	Sessions map[string]bool
	Panes    map[string]string // session -> pane ID
	Captures map[string][]byte // target -> raw capture bytes
	Cursors  map[string]tmux.CursorInfo

	SentNamed   []FakeSend
	SentLiteral []FakeSend
	Resized     []FakeResize
	Killed      []string

	// FailSessions marks session names whose calls should return
	// groveerrors.SessionNotFound, simulating a dead session.
	FailSessions map[string]bool
}

// FakeSend records one SendNamedKey/SendLiteral call.
type FakeSend struct {
	Session string
	Value   string
}

// FakeResize records one Resize call.
type FakeResize struct {
	Pane       string
	Cols, Rows int
}

// NewFakeAdapter builds an empty FakeAdapter.
func NewFakeAdapter() *FakeAdapter {
	return &FakeAdapter{
		Sessions:     make(map[string]bool),
		Panes:        make(map[string]string),
		Captures:     make(map[string][]byte),
		Cursors:      make(map[string]tmux.CursorInfo),
		FailSessions: make(map[string]bool),
	}
}

var _ tmux.Adapter = (*FakeAdapter)(nil)

func (f *FakeAdapter) CreateSession(ctx context.Context, name, cwd string, historyLimit int) error {
	f.Sessions[name] = true
	return nil
}

func (f *FakeAdapter) ListSessions(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.Sessions))
	for n, live := range f.Sessions {
		if live {
			names = append(names, n)
		}
	}
	return names, nil
}

func (f *FakeAdapter) ListPanes(ctx context.Context, session string) (string, error) {
	if f.FailSessions[session] {
		return "", sessionNotFound(session)
	}
	return f.Panes[session], nil
}

func (f *FakeAdapter) Capture(ctx context.Context, target string, lines int, includeSGR, joinWrapped bool) ([]byte, error) {
	return f.Captures[target], nil
}

func (f *FakeAdapter) CaptureBatch(ctx context.Context, targets []string, joinWrapped bool) (map[string][]byte, error) {
	out := make(map[string][]byte, len(targets))
	for _, t := range targets {
		out[t] = f.Captures[t]
	}
	return out, nil
}

func (f *FakeAdapter) QueryCursor(ctx context.Context, pane string) (tmux.CursorInfo, error) {
	return f.Cursors[pane], nil
}

func (f *FakeAdapter) SendNamedKey(ctx context.Context, session, keyName string) error {
	if f.FailSessions[session] {
		return sessionNotFound(session)
	}
	f.SentNamed = append(f.SentNamed, FakeSend{Session: session, Value: keyName})
	return nil
}

func (f *FakeAdapter) SendLiteral(ctx context.Context, session, text string) error {
	if f.FailSessions[session] {
		return sessionNotFound(session)
	}
	f.SentLiteral = append(f.SentLiteral, FakeSend{Session: session, Value: text})
	return nil
}

func (f *FakeAdapter) Resize(ctx context.Context, pane string, cols, rows int) error {
	f.Resized = append(f.Resized, FakeResize{Pane: pane, Cols: cols, Rows: rows})
	if info, ok := f.Cursors[pane]; ok {
		info.PaneCols, info.PaneRows = cols, rows
		f.Cursors[pane] = info
	}
	return nil
}

func (f *FakeAdapter) KillSession(ctx context.Context, name string) error {
	f.Killed = append(f.Killed, name)
	delete(f.Sessions, name)
	return nil
}
