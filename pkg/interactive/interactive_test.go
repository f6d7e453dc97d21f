package interactive

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/core/pkg/scheduler"
	"github.com/grovetools/core/pkg/tmux"
	"github.com/grovetools/core/pkg/workspace"
	"github.com/grovetools/core/testutil"
)

func newTestSession(name, pane string) *Session {
	return &Session{
		Mode: ModeBrowsing,
		State: &workspace.InteractiveState{
			SessionName: name,
			PaneID:      pane,
		},
	}
}

func newTestController(adapter *testutil.FakeAdapter) *Controller {
	sched := scheduler.New(scheduler.DefaultIntervals)
	sched.AddSession("ws-a", workspace.StatusActive, time.Now())
	return New(adapter, sched)
}

func TestEnterBumpsGenerationAndTransitionsToInteractive(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	adapter.Cursors["pane-1"] = tmux.CursorInfo{Row: 2, Col: 3, Visible: true, PaneCols: 80, PaneRows: 24}
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")

	gen, err := c.Enter(context.Background(), sess, 80, 24, time.Now())
	require.NoError(t, err)
	assert.Equal(t, ModeInteractive, sess.Mode)
	assert.Equal(t, gen, sess.State.Generation)
	assert.False(t, sess.ResizeDegraded)
	assert.Equal(t, 2, sess.State.CursorRow)
	assert.Len(t, adapter.Resized, 1)
}

func TestEnterMarksResizeDegradedWhenDimensionsNeverMatch(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	// No Cursors entry for pane-1: the fake's Resize only updates panes it
	// already knows, so QueryCursor keeps reporting 0x0 after every resize.
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")

	_, err := c.Enter(context.Background(), sess, 80, 24, time.Now())
	require.NoError(t, err)
	assert.True(t, sess.ResizeDegraded)
}

func TestExitDoesNotBumpGenerationAndReturnsToBrowsing(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	adapter.Cursors["pane-1"] = tmux.CursorInfo{PaneCols: 80, PaneRows: 24}
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	now := time.Now()

	gen, err := c.Enter(context.Background(), sess, 80, 24, now)
	require.NoError(t, err)

	c.Exit(sess, now)
	assert.Equal(t, ModeBrowsing, sess.Mode)
	assert.Equal(t, gen, sess.State.Generation, "exit must not bump the generation")
}

func TestHandleKeyDoubleEscapeExitsWithoutForwarding(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive
	now := time.Now()

	outcome, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyEsc}, now)
	require.NoError(t, err)
	assert.False(t, outcome.Exited)
	assert.True(t, sess.State.EscapePending)

	outcome, err = c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyEsc}, now.Add(50*time.Millisecond))
	require.NoError(t, err)
	assert.True(t, outcome.Exited)
	assert.Empty(t, adapter.SentNamed)
}

func TestHandleKeySingleEscapeForwardsAfterDeadline(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive
	now := time.Now()

	_, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyEsc}, now)
	require.NoError(t, err)

	forwarded, err := c.CheckEscapeDeadline(context.Background(), sess, now.Add(EscapeWindow+time.Millisecond))
	require.NoError(t, err)
	assert.True(t, forwarded)
	require.Len(t, adapter.SentNamed, 1)
	assert.Equal(t, "Escape", adapter.SentNamed[0].Value)
}

func TestHandleKeyCtrlBackslashExits(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive

	outcome, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyCtrlBackslash}, time.Now())
	require.NoError(t, err)
	assert.True(t, outcome.Exited)
	assert.Equal(t, ModeBrowsing, sess.Mode)
}

func TestHandleKeyForwardsRunesAsLiteral(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive

	outcome, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, time.Now())
	require.NoError(t, err)
	assert.True(t, outcome.Forwarded)
	require.Len(t, adapter.SentLiteral, 1)
	assert.Equal(t, "hi", adapter.SentLiteral[0].Value)
}

func TestHandleKeyForwardsNamedKeys(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive

	_, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyEnter}, time.Now())
	require.NoError(t, err)
	require.Len(t, adapter.SentNamed, 1)
	assert.Equal(t, "Enter", adapter.SentNamed[0].Value)
}

func TestHandleKeyShiftedArrowUsesLiteralCSI(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive

	_, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyShiftUp}, time.Now())
	require.NoError(t, err)
	require.Len(t, adapter.SentLiteral, 1)
	assert.Equal(t, "\x1b[1;2A", adapter.SentLiteral[0].Value)
}

func TestHandleKeyExitsOnDeadSession(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	adapter.FailSessions["ws-a"] = true
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.Mode = ModeInteractive

	outcome, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, time.Now())
	require.NoError(t, err)
	assert.True(t, outcome.SessionDead)
	assert.True(t, outcome.Exited)
	assert.Equal(t, ModeBrowsing, sess.Mode)
}

func TestHandleKeyIgnoredOutsideInteractiveMode(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")

	outcome, err := c.HandleKey(context.Background(), sess, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, Outcome{}, outcome)
	assert.Empty(t, adapter.SentLiteral)
}

type fakeClipboard struct {
	content string
	readErr error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.content, f.readErr }
func (f *fakeClipboard) WriteAll(text string) error {
	f.content = text
	return nil
}

func TestCopyVisibleLinesWhenNoSelection(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	buffer := []string{"one", "two", "\x1b[31mthree\x1b[0m", "four"}
	cb := &fakeClipboard{}

	flash, err := c.Copy(sess, buffer, 1, 3, cb)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree", cb.content)
	assert.Equal(t, "Copied 2 lines", flash)
}

func TestCopySelectionExtractsVisualColumnRange(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.State.SelectionActive = true
	sess.State.SelectionAnchorRow, sess.State.SelectionAnchorCol = 0, 2
	sess.State.SelectionExtentRow, sess.State.SelectionExtentCol = 0, 5

	buffer := []string{"hello world"}
	cb := &fakeClipboard{}

	flash, err := c.Copy(sess, buffer, 0, 0, cb)
	require.NoError(t, err)
	assert.Equal(t, "llo", cb.content)
	assert.Equal(t, "Copied 1 lines", flash)
	assert.False(t, sess.State.SelectionActive, "copy clears the selection")
}

func TestPasteWrapsInBracketedMarkersWhenEnabled(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	sess.State.BracketedPasteEnabled = true
	cb := &fakeClipboard{content: "paste me"}

	snapped := false
	err := c.Paste(context.Background(), sess, cb, func() { snapped = true })
	require.NoError(t, err)
	require.Len(t, adapter.SentLiteral, 1)
	assert.Equal(t, "\x1b[200~paste me\x1b[201~", adapter.SentLiteral[0].Value)
	assert.True(t, snapped)
}

func TestPasteSendsRawWhenBracketedDisabled(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	cb := &fakeClipboard{content: "plain"}

	err := c.Paste(context.Background(), sess, cb, nil)
	require.NoError(t, err)
	require.Len(t, adapter.SentLiteral, 1)
	assert.Equal(t, "plain", adapter.SentLiteral[0].Value)
}

func TestPasteNoopOnEmptyClipboard(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	cb := &fakeClipboard{content: ""}

	err := c.Paste(context.Background(), sess, cb, nil)
	require.NoError(t, err)
	assert.Empty(t, adapter.SentLiteral)
}

func TestPastePropagatesClipboardReadError(t *testing.T) {
	adapter := testutil.NewFakeAdapter()
	c := newTestController(adapter)
	sess := newTestSession("ws-a", "pane-1")
	cb := &fakeClipboard{readErr: errors.New("clipboard unavailable")}

	err := c.Paste(context.Background(), sess, cb, nil)
	assert.Error(t, err)
}

func TestDetectBracketedPasteTransitions(t *testing.T) {
	assert.True(t, DetectBracketedPaste([]byte("\x1b[?2004h"), false))
	assert.False(t, DetectBracketedPaste([]byte("\x1b[?2004l"), true))
	assert.True(t, DetectBracketedPaste([]byte("no markers here"), true), "absence of either sequence preserves current state")
}

func TestComputeOverlayShiftsForPaneTallerThanPreview(t *testing.T) {
	pos := ComputeOverlay(20, 5, true, 30, 24, 80)
	assert.Equal(t, 14, pos.Row)
	assert.Equal(t, 5, pos.Col)
	assert.True(t, pos.Visible)
}

func TestComputeOverlayClampsIntoVisibleArea(t *testing.T) {
	pos := ComputeOverlay(-5, -1, true, 24, 24, 80)
	assert.Equal(t, 0, pos.Row)
	assert.Equal(t, 0, pos.Col)

	pos = ComputeOverlay(100, 200, true, 24, 24, 80)
	assert.Equal(t, 23, pos.Row)
	assert.Equal(t, 79, pos.Col)
}

func TestHandleScrollThrottlesWithinCooldown(t *testing.T) {
	now := time.Now()
	result, lastAt, burst := HandleScroll(time.Time{}, 0, ScrollUp, 0, now)
	assert.True(t, result.Accepted)
	assert.Equal(t, 1, burst)

	result2, _, _ := HandleScroll(lastAt, burst, ScrollUp, 0, now.Add(10*time.Millisecond))
	assert.False(t, result2.Accepted, "event within the 40ms cooldown is rejected")
}

func TestHandleScrollAppliesLongerCooldownAfterBurst(t *testing.T) {
	now := time.Now()
	lastAt := now
	burst := scrollBurstLen

	result, _, _ := HandleScroll(lastAt, burst, ScrollUp, 0, now.Add(scrollCooldown+time.Millisecond))
	assert.False(t, result.Accepted, "after a burst, the cooldown widens to 120ms")

	result2, _, _ := HandleScroll(lastAt, burst, ScrollUp, 0, now.Add(scrollBurstCooldown+time.Millisecond))
	assert.True(t, result2.Accepted)
}

func TestHandleScrollResumeAutoWhenReachingBottom(t *testing.T) {
	result, _, _ := HandleScroll(time.Time{}, 0, ScrollDown, 1, time.Now())
	assert.True(t, result.Accepted)
	assert.True(t, result.ResumeAuto)
}

func TestShouldDropKeyRejectsMouseFragmentWithinScrollWindow(t *testing.T) {
	now := time.Now()
	lastScroll := now.Add(-10 * time.Millisecond)
	assert.True(t, ShouldDropKey("[<0;10;20M", lastScroll, false, now))
	assert.False(t, ShouldDropKey("[<0;10;20M", now.Add(-time.Second), false, now))
}

func TestShouldDropKeyRejectsBareBracketDuringEscapePending(t *testing.T) {
	assert.True(t, ShouldDropKey("[", time.Time{}, true, time.Now()))
}

func TestIsSnapBackKeyOnlyPrintableOrSemantic(t *testing.T) {
	assert.True(t, IsSnapBackKey("", true))
	assert.True(t, IsSnapBackKey("Enter", false))
	assert.False(t, IsSnapBackKey("Escape", false))
}
