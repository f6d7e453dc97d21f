package interactive

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	groveerrors "github.com/grovetools/core/errors"
)

// copyBinding and pasteBinding use bubbles/key for the Controller's
// distinguished key→action dispatch, matching the teacher's use of the same
// package for keymap matching elsewhere in the TUI layer.
var (
	copyBinding  = key.NewBinding(key.WithKeys("alt+c"))
	pasteBinding = key.NewBinding(key.WithKeys("alt+v"))
)

// ctrlBackslashByte is the raw byte tmux reports for Ctrl-\ when it arrives
// unmodified through the terminal rather than as a recognised tea.KeyMsg.
const ctrlBackslashByte = 0x1C

// Outcome describes what HandleKey decided to do so the caller can act: send
// bytes through the Adapter, exit interactive mode, or do nothing.
type Outcome struct {
	Exited      bool
	Forwarded   bool
	CopyFlash   string
	SessionDead bool
}

// HandleKey is the Controller's per-keystroke entry point while in
// ModeInteractive. It performs exit arbitration first, then translates and
// forwards non-exit keys (spec §4.5 Exit arbitration, Key forwarding).
func (c *Controller) HandleKey(ctx context.Context, sess *Session, msg tea.KeyMsg, now time.Time) (Outcome, error) {
	if sess.Mode != ModeInteractive {
		return Outcome{}, nil
	}

	if isCtrlBackslash(msg) {
		c.Exit(sess, now)
		return Outcome{Exited: true}, nil
	}

	if msg.Type == tea.KeyEsc {
		return c.handleEscape(ctx, sess, now)
	}

	if key.Matches(msg, copyBinding) || key.Matches(msg, pasteBinding) {
		// Copy/paste are handled by Copy/Paste directly; the
		// Controller only recognises them here so ordinary key forwarding
		// below doesn't also send them into the pane.
		return Outcome{}, nil
	}

	if err := c.forward(ctx, sess, msg); err != nil {
		if groveerrors.GetCode(err) == groveerrors.ErrCodeSessionNotFound {
			c.HandleSessionDeath(sess, now)
			return Outcome{Exited: true, SessionDead: true}, nil
		}
		return Outcome{}, err
	}

	sess.State.LastKeyAt = now
	c.Scheduler.RecordKeystroke(sess.State.SessionName, now)
	return Outcome{Forwarded: true}, nil
}

// handleEscape implements the double-Escape discriminator: a lone Escape is
// held pending for EscapeWindow; if a second arrives inside the window, both
// are consumed and interactive mode exits without forwarding either. If the
// window has already elapsed, this press starts a new pending window (the
// stale one should have already been flushed by CheckEscapeDeadline).
func (c *Controller) handleEscape(ctx context.Context, sess *Session, now time.Time) (Outcome, error) {
	if sess.State.EscapePending && !now.After(sess.State.EscapeDeadline) {
		sess.State.EscapePending = false
		c.Exit(sess, now)
		return Outcome{Exited: true}, nil
	}

	sess.State.EscapePending = true
	sess.State.EscapeDeadline = now.Add(EscapeWindow)
	return Outcome{}, nil
}

// CheckEscapeDeadline is polled by the caller's tick loop; when a pending
// Escape's deadline has elapsed with no second press, it is forwarded to the
// agent as a single Escape key (spec §4.5: "A single Escape is forwarded to
// the agent after the window expires").
func (c *Controller) CheckEscapeDeadline(ctx context.Context, sess *Session, now time.Time) (forwarded bool, err error) {
	if sess.Mode != ModeInteractive || !sess.State.EscapePending {
		return false, nil
	}
	if now.Before(sess.State.EscapeDeadline) {
		return false, nil
	}
	sess.State.EscapePending = false
	if err := c.Adapter.SendNamedKey(ctx, sess.State.SessionName, "Escape"); err != nil {
		return false, err
	}
	return true, nil
}

func isCtrlBackslash(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyCtrlBackslash {
		return true
	}
	for _, r := range msg.Runes {
		if r == ctrlBackslashByte {
			return true
		}
	}
	return false
}

// shiftedArrowCSI are the literal CSI sequences tmux expects for
// shift-modified arrows and Shift+Tab, which have no named-key form (spec
// §4.5 Key forwarding).
var shiftedArrowCSI = map[tea.KeyType]string{
	tea.KeyShiftUp:    "\x1b[1;2A",
	tea.KeyShiftDown:  "\x1b[1;2B",
	tea.KeyShiftRight: "\x1b[1;2C",
	tea.KeyShiftLeft:  "\x1b[1;2D",
	tea.KeyShiftTab:   "\x1b[Z",
}

// namedKeyForType maps a tea.KeyType to the multiplexer's named-key form
// (spec §4.1 Key encoding, §4.5 Key forwarding).
var namedKeyForType = map[tea.KeyType]string{
	tea.KeyEnter:  "Enter",
	tea.KeyTab:    "Tab",
	tea.KeyBackspace: "BSpace",
	tea.KeyDelete: "DC",
	tea.KeyUp:     "Up",
	tea.KeyDown:   "Down",
	tea.KeyLeft:   "Left",
	tea.KeyRight:  "Right",
	tea.KeyHome:   "Home",
	tea.KeyEnd:    "End",
	tea.KeyPgUp:   "PPage",
	tea.KeyPgDown: "NPage",
}

// forward translates msg per spec §4.5's ordered rules and dispatches it
// through the Session Adapter.
func (c *Controller) forward(ctx context.Context, sess *Session, msg tea.KeyMsg) error {
	name := sess.State.SessionName

	if csi, ok := shiftedArrowCSI[msg.Type]; ok {
		return c.Adapter.SendLiteral(ctx, name, csi)
	}

	if named, ok := namedKeyForType[msg.Type]; ok {
		return c.Adapter.SendNamedKey(ctx, name, named)
	}

	if msg.Type >= tea.KeyF1 && msg.Type <= tea.KeyF20 {
		return c.Adapter.SendNamedKey(ctx, name, fmt.Sprintf("F%d", int(msg.Type-tea.KeyF1)+1))
	}

	if msg.Alt && len(msg.Runes) == 1 && isCtrlLetter(msg) {
		return c.Adapter.SendNamedKey(ctx, name, "C-"+string(msg.Runes[0]))
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return c.Adapter.SendNamedKey(ctx, name, "C-"+string(letter))
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return c.Adapter.SendLiteral(ctx, name, string(msg.Runes))
	}

	// Unrecognised key type: nothing to forward.
	return nil
}

func isCtrlLetter(msg tea.KeyMsg) bool {
	r := msg.Runes[0]
	return r >= 'a' && r <= 'z'
}
