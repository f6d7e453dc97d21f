package tmux

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	groveerrors "github.com/grovetools/core/errors"
)

// Default per-call deadlines (spec §4.1 Timeouts).
const (
	SingleCaptureTimeout = 2 * time.Second
	BatchCaptureTimeout  = 3 * time.Second
	DefaultCallTimeout   = 5 * time.Second

	// MaxCaptureBytes truncates capture output; truncation is trimmed back to
	// the nearest preceding line boundary at a UTF-8 safe split point.
	MaxCaptureBytes = 2 * 1024 * 1024
)

// CursorInfo is the result of a query_cursor call.
type CursorInfo struct {
	Row      int
	Col      int
	Visible  bool
	PaneRows int
	PaneCols int
}

// Adapter is the capability set spec §4.1 requires over a terminal
// multiplexer. It never mutates application state; every call returns
// its result (or a classified failure) to the caller.
type Adapter interface {
	CreateSession(ctx context.Context, name, cwd string, historyLimit int) error
	ListSessions(ctx context.Context) ([]string, error)
	ListPanes(ctx context.Context, session string) (string, error)
	Capture(ctx context.Context, target string, lines int, includeSGR, joinWrapped bool) ([]byte, error)
	CaptureBatch(ctx context.Context, targets []string, joinWrapped bool) (map[string][]byte, error)
	QueryCursor(ctx context.Context, pane string) (CursorInfo, error)
	SendNamedKey(ctx context.Context, session, keyName string) error
	SendLiteral(ctx context.Context, session, text string) error
	Resize(ctx context.Context, pane string, cols, rows int) error
	KillSession(ctx context.Context, name string) error
}

// Ensure Client satisfies the Adapter contract used by the rest of the core.
var _ Adapter = (*Client)(nil)

func (c *Client) CreateSession(ctx context.Context, name, cwd string, historyLimit int) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	args := []string{"new-session", "-d", "-s", name}
	if cwd != "" {
		args = append(args, "-c", cwd)
	}
	if _, err := c.run(ctx, args...); err != nil {
		return classifyFailure(err)
	}
	if historyLimit > 0 {
		if _, err := c.run(ctx, "set-option", "-t", "="+name, "history-limit", strconv.Itoa(historyLimit)); err != nil {
			return classifyFailure(err)
		}
	}
	return nil
}

func (c *Client) ListPanes(ctx context.Context, session string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	output, err := c.run(ctx, "list-panes", "-t", "="+session, "-F", "#{pane_id}")
	if err != nil {
		return "", classifyFailure(err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return "", groveerrors.PaneNotFound(session)
	}
	return lines[0], nil
}

// Capture performs a single capture-pane with the flag discipline of §4.1:
// includeSGR maps to "-e" (preserve escape sequences); joinWrapped maps to
// "-J" (join wrapped lines). Interactive-mode callers pass joinWrapped=false
// so native wrap is preserved for cursor alignment.
func (c *Client) Capture(ctx context.Context, target string, lines int, includeSGR, joinWrapped bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, SingleCaptureTimeout)
	defer cancel()

	args := []string{"capture-pane", "-p", "-t", target}
	if includeSGR {
		args = append(args, "-e")
	}
	if joinWrapped {
		args = append(args, "-J")
	}
	if lines > 0 {
		args = append(args, "-S", "-"+strconv.Itoa(lines))
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, classifyFailure(err)
	}
	return truncateToLineBoundary([]byte(output), MaxCaptureBytes), nil
}

// CaptureBatch captures multiple targets with a uniform joinWrapped setting
// so results stay mergeable (§4.1). The underlying tmux binary has no native
// multi-target capture, so each target is captured in its own call; this
// method only guarantees a uniform deadline across the set. Overlapping
// batch requests are not de-duplicated, here or in the Scheduler.
func (c *Client) CaptureBatch(ctx context.Context, targets []string, joinWrapped bool) (map[string][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, BatchCaptureTimeout)
	defer cancel()

	results := make(map[string][]byte, len(targets))
	for _, target := range targets {
		b, err := c.Capture(ctx, target, workspaceFetchLines, true, joinWrapped)
		if err != nil {
			// A single dead target must not lose the rest of the batch; the
			// failure is recorded in results as a nil entry and the caller
			// (Reconciler/Scheduler) treats it as "session death" for that
			// one target only.
			results[target] = nil
			continue
		}
		results[target] = b
	}
	return results, nil
}

// workspaceFetchLines mirrors workspace.OutputBufferFetchLines without an
// import cycle on pkg/workspace.
const workspaceFetchLines = 600

func (c *Client) QueryCursor(ctx context.Context, pane string) (CursorInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	format := "#{cursor_y},#{cursor_x},#{cursor_flag},#{pane_height},#{pane_width}"
	output, err := c.run(ctx, "display-message", "-p", "-t", pane, format)
	if err != nil {
		return CursorInfo{}, classifyFailure(err)
	}

	parts := strings.Split(strings.TrimSpace(output), ",")
	if len(parts) != 5 {
		return CursorInfo{}, fmt.Errorf("unexpected cursor query output: %q", output)
	}

	row, _ := strconv.Atoi(parts[0])
	col, _ := strconv.Atoi(parts[1])
	visible := parts[2] == "1"
	rows, _ := strconv.Atoi(parts[3])
	cols, _ := strconv.Atoi(parts[4])

	return CursorInfo{Row: row, Col: col, Visible: visible, PaneRows: rows, PaneCols: cols}, nil
}

// namedKeys is the set of key names passed by name rather than literal bytes
// (§4.1 Key encoding).
var namedKeys = map[string]bool{
	"Enter": true, "Tab": true, "BSpace": true, "DC": true,
	"Up": true, "Down": true, "Left": true, "Right": true,
	"Home": true, "End": true, "PPage": true, "NPage": true,
	"Escape": true,
}

func init() {
	for i := 1; i <= 12; i++ {
		namedKeys[fmt.Sprintf("F%d", i)] = true
	}
	for r := 'a'; r <= 'z'; r++ {
		namedKeys["C-"+string(r)] = true
	}
}

func (c *Client) SendNamedKey(ctx context.Context, session, keyName string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	_, err := c.run(ctx, "send-keys", "-t", "="+session, keyName)
	if err != nil {
		return classifyFailure(err)
	}
	return nil
}

// SendLiteral sends text through the literal-send path (-l) so tmux performs
// no key-name reinterpretation; this is used for printable characters,
// paste bodies, and explicit CSI byte sequences alike.
func (c *Client) SendLiteral(ctx context.Context, session, text string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	_, err := c.run(ctx, "send-keys", "-t", "="+session, "-l", "--", text)
	if err != nil {
		return classifyFailure(err)
	}
	return nil
}

func (c *Client) Resize(ctx context.Context, pane string, cols, rows int) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	if _, err := c.run(ctx, "set-window-option", "-t", pane, "window-size", "manual"); err != nil {
		return classifyFailure(err)
	}
	_, err := c.run(ctx, "resize-pane", "-t", pane, "-x", strconv.Itoa(cols), "-y", strconv.Itoa(rows))
	if err != nil {
		return classifyFailure(err)
	}
	return nil
}

// classifyFailure recognises the "session not found" / "pane not found"
// error family so the Controller can exit interactive mode deterministically
// (§4.1 Failure semantics); other errors pass through as a generic failure.
func classifyFailure(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "can't find session"), strings.Contains(msg, "no such session"):
		return groveerrors.SessionNotFound(msg)
	case strings.Contains(msg, "can't find pane"), strings.Contains(msg, "no such pane"):
		return groveerrors.PaneNotFound(msg)
	case strings.Contains(msg, "context deadline exceeded"):
		return groveerrors.CommandTimeout(msg)
	default:
		return groveerrors.CommandFailed("tmux", err)
	}
}

// truncateToLineBoundary caps b at limit bytes, then trims back to the
// nearest preceding newline so no line is cut mid-character, and never
// splits a UTF-8 code unit.
func truncateToLineBoundary(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	truncated := b[:limit]
	if idx := strings.LastIndexByte(string(truncated), '\n'); idx >= 0 {
		truncated = truncated[:idx+1]
	}
	// Guard against cutting a multi-byte rune even at the newline boundary
	// (newline is single-byte, but defensive for any future delimiter change).
	for len(truncated) > 0 && !utf8.Valid(truncated) {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated
}
