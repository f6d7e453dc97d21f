// Package interactive implements the Interactive Controller state machine
// (spec §4.5): entering/leaving keystroke-forwarding mode, key translation,
// cursor overlay alignment, the double-Escape exit discriminator, and
// scroll/mouse-fragment guards.
package interactive

import (
	"context"
	"time"

	"github.com/grovetools/core/pkg/scheduler"
	"github.com/grovetools/core/pkg/tmux"
	"github.com/grovetools/core/pkg/workspace"
)

// Mode is the Controller's coarse state (spec §4.5's three-state diagram).
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeEntering
	ModeInteractive
)

// EscapeWindow is the double-Escape discriminator window (spec §4.5 Exit
// arbitration).
const EscapeWindow = 150 * time.Millisecond

// ResizeVerifyRetries is how many times a mismatched post-resize dimension
// query is retried before the Controller gives up and reports degraded
// geometry (spec §4.5 Entering step 3).
const ResizeVerifyRetries = 1

// Session pairs one workspace's InteractiveState with the Controller's
// coarse mode. The Controller is stateless across calls; all per-session
// state lives here so multiple sessions can be driven by one Controller.
type Session struct {
	Mode  Mode
	State *workspace.InteractiveState

	// ResizeDegraded is set when the post-entry resize verify failed after
	// its retry; interactive mode continues, but geometry may be wrong.
	ResizeDegraded bool
}

// Controller drives the state machine described in spec §4.5 over an
// Adapter and a Scheduler shared across all interactive sessions.
type Controller struct {
	Adapter   tmux.Adapter
	Scheduler *scheduler.Scheduler
}

// New builds a Controller.
func New(adapter tmux.Adapter, sched *scheduler.Scheduler) *Controller {
	return &Controller{Adapter: adapter, Scheduler: sched}
}

// Enter runs the five-step Entering sequence from spec §4.5: bump
// generation, resize to the preview area, verify dimensions (one retry),
// request an immediate capture/cursor query, and reset key/escape/paste
// tracking. The returned generation is what the caller must tag its
// immediate capture dispatch with.
func (c *Controller) Enter(ctx context.Context, sess *Session, previewCols, previewRows int, now time.Time) (uint64, error) {
	sess.Mode = ModeEntering
	gen := c.Scheduler.EnterInteractive(sess.State.SessionName, now)
	sess.State.Generation = gen

	if err := c.Adapter.Resize(ctx, sess.State.PaneID, previewCols, previewRows); err != nil {
		return gen, err
	}

	sess.ResizeDegraded = !c.verifyResize(ctx, sess, previewCols, previewRows)

	cursor, err := c.Adapter.QueryCursor(ctx, sess.State.PaneID)
	if err == nil {
		sess.State.CursorRow = cursor.Row
		sess.State.CursorCol = cursor.Col
		sess.State.CursorVisible = cursor.Visible
		sess.State.PaneRows = cursor.PaneRows
		sess.State.PaneCols = cursor.PaneCols
	}

	sess.State.LastKeyAt = now
	sess.State.EscapePending = false
	sess.State.BracketedPasteEnabled = false
	sess.Mode = ModeInteractive
	return gen, nil
}

// verifyResize checks the reported pane dimensions against what was
// requested, retrying the resize once before giving up (spec §4.5 step 3).
func (c *Controller) verifyResize(ctx context.Context, sess *Session, wantCols, wantRows int) bool {
	for attempt := 0; attempt <= ResizeVerifyRetries; attempt++ {
		cursor, err := c.Adapter.QueryCursor(ctx, sess.State.PaneID)
		if err == nil && cursor.PaneCols == wantCols && cursor.PaneRows == wantRows {
			return true
		}
		if attempt < ResizeVerifyRetries {
			_ = c.Adapter.Resize(ctx, sess.State.PaneID, wantCols, wantRows)
		}
	}
	return false
}

// Exit leaves interactive mode without bumping the generation (exit is not
// an identity change; spec §4.4 only lists resize/stop/delete/replace as
// generation-bumping events).
func (c *Controller) Exit(sess *Session, now time.Time) {
	sess.Mode = ModeBrowsing
	sess.State.EscapePending = false
	sess.State.SelectionActive = false
	c.Scheduler.ExitInteractive(sess.State.SessionName, now)
}

// HandleSessionDeath implements spec §4.5's failure semantics for a
// "session not found" error from SendKey: exit interactive mode.
func (c *Controller) HandleSessionDeath(sess *Session, now time.Time) {
	c.Exit(sess, now)
}
