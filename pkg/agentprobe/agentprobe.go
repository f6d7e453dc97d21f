// Package agentprobe decides Active vs Waiting independently of pane output,
// by inspecting each agent's own session-file state (spec §4.3 Agent
// session-file probes). This is the disjoint half of status detection from
// pkg/capture's pane-output pattern probes: capture owns Thinking/Done/Error,
// this package owns Active/Waiting.
package agentprobe

import (
	"bufio"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hpcloud/tail"

	"github.com/grovetools/core/pkg/workspace"
)

// ActiveWindow is how recently a session file must have been written to for
// the mtime fast path to report Active without inspecting its contents.
const ActiveWindow = 30 * time.Second

// Speaker is the last role found at the tail of a session transcript.
type Speaker int

const (
	SpeakerUnknown Speaker = iota
	SpeakerUser
	SpeakerAgent
)

// Probe reports the live/idle signal for one workspace's agent session file,
// or ok=false when no session file could be found for it (the Reconciler
// then falls back to pane-output signals only).
type Probe struct {
	// Active is true when the fast mtime path or the tail-speaker check
	// indicates the agent is currently working (Status Active); false means
	// the file's last entry is the operator's turn (Status Waiting).
	Active bool
	// MTime is the session file's last-modified time.
	MTime time.Time
}

// ProbeWorkspace resolves and inspects the session-file signal for kind at
// canonicalPath, the workspace's absolute filesystem path.
func ProbeWorkspace(kind workspace.AgentKind, canonicalPath string) (Probe, bool) {
	switch kind {
	case workspace.AgentClaude:
		return probeClaude(canonicalPath)
	case workspace.AgentCodex:
		return probeCodex(canonicalPath)
	default:
		return Probe{}, false
	}
}

// claudeProjectsDir is ~/.claude/projects by convention; each project gets a
// subdirectory named by replacing "/" with "-" in its canonical path.
func claudeProjectsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "projects")
}

// sanitizeClaudeProjectDir mirrors Claude Code's own convention of replacing
// path separators with "-" to derive a per-project state subdirectory name.
func sanitizeClaudeProjectDir(canonicalPath string) string {
	return strings.ReplaceAll(canonicalPath, string(filepath.Separator), "-")
}

func probeClaude(canonicalPath string) (Probe, bool) {
	base := claudeProjectsDir()
	if base == "" {
		return Probe{}, false
	}
	dir := filepath.Join(base, sanitizeClaudeProjectDir(canonicalPath))
	sessionFile, mtime, ok := latestJSONL(dir)
	if !ok {
		return Probe{}, false
	}
	return Probe{Active: resolveActive(sessionFile, mtime, tailSpeakerJSONL)}, true
}

// codexSessionsDir is ~/.codex/sessions, date-partitioned YYYY/MM/DD.
func codexSessionsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codex", "sessions")
}

// codexHeaderCwdPattern extracts the "cwd" field from a session file's
// header record (its first line), a JSON object carrying session metadata.
var codexHeaderCwdPattern = regexp.MustCompile(`"cwd"\s*:\s*"((?:[^"\\]|\\.)*)"`)

func probeCodex(canonicalPath string) (Probe, bool) {
	base := codexSessionsDir()
	if base == "" {
		return Probe{}, false
	}

	var match string
	var matchMTime time.Time
	_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".jsonl") {
			return nil
		}
		cwd, ok := readCodexHeaderCwd(path)
		if !ok || cwd != canonicalPath {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(matchMTime) {
			match = path
			matchMTime = info.ModTime()
		}
		return nil
	})
	if match == "" {
		return Probe{}, false
	}
	return Probe{Active: resolveActive(match, matchMTime, tailSpeakerJSONL)}, true
}

func readCodexHeaderCwd(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return "", false
	}
	m := codexHeaderCwdPattern.FindStringSubmatch(scanner.Text())
	if m == nil {
		return "", false
	}
	var unescaped string
	if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &unescaped); err != nil {
		return m[1], true
	}
	return unescaped, true
}

// resolveActive applies the mtime fast path, falling back to the tail-speaker
// check (spec §4.3: "A mtime within the last 30s is a fast-path signal of
// Active; otherwise the file's tail is parsed for the last speaker role").
func resolveActive(path string, mtime time.Time, tailSpeaker func(string) Speaker) bool {
	if time.Since(mtime) < ActiveWindow {
		return true
	}
	return tailSpeaker(path) == SpeakerAgent
}

// latestJSONL returns the most recently modified *.jsonl file directly under
// dir, which for Claude is one session transcript per conversation.
func latestJSONL(dir string) (path string, mtime time.Time, ok bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", time.Time{}, false
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(mtime) {
			path = filepath.Join(dir, e.Name())
			mtime = info.ModTime()
			ok = true
		}
	}
	return path, mtime, ok
}

// sessionRecord is the minimal shape needed to read a transcript entry's
// speaker role; both Claude and Codex session files are newline-delimited
// JSON with a "role" or "type" field naming the speaker.
type sessionRecord struct {
	Role string `json:"role"`
	Type string `json:"type"`
}

// tailSpeakerJSONL reads path line-by-line via hpcloud/tail (Follow=false,
// matching the teacher's logviewer non-following one-shot read path) and
// returns the last recognisable speaker role.
func tailSpeakerJSONL(path string) Speaker {
	config := tail.Config{
		Follow:   false,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:   log.New(io.Discard, "", 0),
	}
	t, err := tail.TailFile(path, config)
	if err != nil {
		return SpeakerUnknown
	}
	defer t.Stop()

	last := SpeakerUnknown
	for line := range t.Lines {
		if line.Err != nil {
			continue
		}
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		var rec sessionRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			continue
		}
		role := rec.Role
		if role == "" {
			role = rec.Type
		}
		switch strings.ToLower(role) {
		case "user", "human":
			last = SpeakerUser
		case "assistant", "agent", "model":
			last = SpeakerAgent
		}
	}
	return last
}
