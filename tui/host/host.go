// Package host wires the Reconciler, Scheduler, Capture Processor, and
// Interactive Controller into a running bubbletea program: the Browsing/
// Interactive surface described in spec §4 as a whole.
package host

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/core/git"
	"github.com/grovetools/core/logging"
	"github.com/grovetools/core/pkg/capture"
	"github.com/grovetools/core/pkg/interactive"
	"github.com/grovetools/core/pkg/reconcile"
	"github.com/grovetools/core/pkg/scheduler"
	"github.com/grovetools/core/pkg/tmux"
	"github.com/grovetools/core/pkg/workspace"
	"github.com/grovetools/core/state"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/core/tui/utils/scrollbar"
)

// lastSelectedStateKey is the state.yml key the Model persists the cursor's
// workspace name under, so the next `grove tui` invocation in this worktree
// restores the previous selection instead of always opening on Main.
const lastSelectedStateKey = "tui.last_selected_workspace"

// tickMsg drives the single-ticker scheduling loop (spec §4.4).
type tickMsg time.Time

// reconcileMsg carries a fresh reconciliation result back onto the
// bubbletea event loop.
type reconcileMsg struct {
	result reconcile.Result
	err    error
}

// captureMsg carries one session's capture result, tagged with the
// generation it was dispatched at so stale results are dropped (spec §4.4).
type captureMsg struct {
	session    string
	generation uint64
	raw        []byte
	err        error
}

// watchMsg signals that fsnotify observed a marker or ignore-file change,
// waking an immediate reconcile instead of waiting for the next tick.
type watchMsg struct{}

const reconcileInterval = 3 * time.Second

// Model is the top-level bubbletea program state.
type Model struct {
	repoPath string
	project  string

	adapter     tmux.Adapter
	worktrees   git.WorktreeProvider
	reconciler  *reconcile.Reconciler
	scheduler   *scheduler.Scheduler
	controller  *interactive.Controller
	watcher     *reconcile.Watcher

	workspaces []*workspace.Workspace
	orphaned   []reconcile.OrphanedSession
	cursor     int

	captureStates map[string]*capture.State
	captureHistory map[string]*capture.History
	interactiveSessions map[string]*interactive.Session

	mode       interactive.Mode
	flash      string
	width      int
	height     int
	lastReconcile time.Time

	restoredSelection bool

	log *logrus.Entry
}

// New builds a Model rooted at repoPath, using the given project name (used
// for the "grove-ws-<project>-<name>" session-naming convention).
func New(repoPath, project string) Model {
	adapter, _ := tmux.NewClient()
	worktrees := git.NewWorktreeManager()
	sched := scheduler.New(scheduler.DefaultIntervals)
	watcher, _ := reconcile.NewWatcher()
	return Model{
		repoPath:            repoPath,
		project:             project,
		adapter:             adapter,
		worktrees:           worktrees,
		reconciler:          reconcile.New(worktrees, adapter, project),
		scheduler:           sched,
		controller:          interactive.New(adapter, sched),
		watcher:             watcher,
		captureStates:       make(map[string]*capture.State),
		captureHistory:      make(map[string]*capture.History),
		interactiveSessions: make(map[string]*interactive.Session),
		mode:                interactive.ModeBrowsing,
		log:                 logging.NewLogger("tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reconcileCmd(), tickCmd(), m.watchCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// watchCmd blocks on the fsnotify Watcher's coalesced change channel, so one
// external marker edit wakes exactly one extra reconcile instead of waiting
// out the 3s poll interval.
func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		<-m.watcher.Events
		return watchMsg{}
	}
}

func (m Model) reconcileCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.reconciler.Reconcile(context.Background(), m.repoPath)
		return reconcileMsg{result: result, err: err}
	}
}

func (m Model) captureCmd(sess *workspace.Workspace, gen uint64) tea.Cmd {
	return func() tea.Msg {
		target := sess.Session.PaneID
		raw, err := m.adapter.Capture(context.Background(), target, workspace.OutputBufferFetchLines, false, true)
		return captureMsg{session: sess.Name, generation: gen, raw: raw, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case reconcileMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("reconcile failed")
		}
		if msg.err == nil {
			m.syncScheduler(msg.result)
			m.workspaces = msg.result.Workspaces
			m.orphaned = msg.result.Orphaned
			if !m.restoredSelection {
				m.restoredSelection = true
				if name, err := state.GetString(lastSelectedStateKey); err == nil && name != "" {
					if idx := m.indexOfWorkspace(name); idx >= 0 {
						m.cursor = idx
					}
				}
			}
			if m.cursor >= len(m.workspaces) {
				m.cursor = len(m.workspaces) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			if m.watcher != nil {
				dirs := make([]string, 0, len(m.workspaces))
				for _, ws := range m.workspaces {
					dirs = append(dirs, ws.Path)
				}
				m.watcher.SetDirs(dirs)
			}
		}
		m.lastReconcile = time.Now()
		return m, nil

	case watchMsg:
		return m, tea.Batch(m.reconcileCmd(), m.watchCmd())

	case captureMsg:
		return m.handleCapture(msg)

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		now := time.Time(msg)
		if now.Sub(m.lastReconcile) >= reconcileInterval {
			cmds = append(cmds, m.reconcileCmd())
		}
		for _, due := range m.scheduler.Tick(now) {
			if ws := m.findWorkspace(due.Session); ws != nil && ws.Session != nil {
				cmds = append(cmds, m.captureCmd(ws, due.Generation))
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse applies the scroll-wheel backscroll described in spec §4.5:
// only meaningful in Interactive mode, throttled through interactive.
// HandleScroll's burst-rate cooldown.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != interactive.ModeInteractive || m.cursor >= len(m.workspaces) {
		return m, nil
	}
	var dir interactive.ScrollDirection
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		dir = interactive.ScrollUp
	case tea.MouseButtonWheelDown:
		dir = interactive.ScrollDown
	default:
		return m, nil
	}

	ws := m.workspaces[m.cursor]
	sess, ok := m.interactiveSessions[ws.Name]
	if !ok {
		return m, nil
	}

	now := time.Now()
	result, lastScrollAt, burst := interactive.HandleScroll(sess.State.LastScrollAt, sess.State.ScrollBurstCount, dir, sess.State.ScrollOffset, now)
	sess.State.LastScrollAt = lastScrollAt
	sess.State.ScrollBurstCount = burst
	if !result.Accepted {
		return m, nil
	}
	sess.State.ScrollOffset += result.OffsetDiff
	if sess.State.ScrollOffset < 0 || result.ResumeAuto {
		sess.State.ScrollOffset = 0
	}
	return m, nil
}

func (m *Model) syncScheduler(result reconcile.Result) {
	seen := make(map[string]bool, len(result.Workspaces))
	for _, ws := range result.Workspaces {
		seen[ws.Name] = true
		if m.scheduler.Generation(ws.Name) == 0 {
			m.scheduler.AddSession(ws.Name, ws.Status, time.Now())
		} else {
			m.scheduler.SetStatus(ws.Name, ws.Status, time.Now())
		}
	}
	for name := range m.interactiveSessions {
		if !seen[name] {
			delete(m.interactiveSessions, name)
			delete(m.captureStates, name)
			delete(m.captureHistory, name)
		}
	}
}

func (m Model) findWorkspace(name string) *workspace.Workspace {
	for _, ws := range m.workspaces {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

func (m Model) indexOfWorkspace(name string) int {
	for i, ws := range m.workspaces {
		if ws.Name == name {
			return i
		}
	}
	return -1
}

// persistSelection best-effort saves the currently selected workspace name so
// the next `grove tui` launch in this worktree can restore it.
func (m Model) persistSelection() {
	if m.cursor < 0 || m.cursor >= len(m.workspaces) {
		return
	}
	if err := state.Set(lastSelectedStateKey, m.workspaces[m.cursor].Name); err != nil {
		m.log.WithError(err).Debug("persist selected workspace failed")
	}
}

func (m Model) handleCapture(msg captureMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.WithError(msg.err).WithField("session", msg.session).Debug("capture failed")
	}
	if !m.scheduler.IsCurrent(msg.session, msg.generation) || msg.err != nil {
		return m, nil
	}
	ws := m.findWorkspace(msg.session)
	if ws == nil || ws.Session == nil {
		return m, nil
	}

	st, ok := m.captureStates[msg.session]
	if !ok {
		st = &capture.State{}
		m.captureStates[msg.session] = st
	}
	result := capture.Process(st, msg.raw)
	ws.Session.OutputBuffer = result.Lines
	ws.Session.LastOutputAt = time.Now()

	hist, ok := m.captureHistory[msg.session]
	if !ok {
		hist = capture.NewHistory()
		m.captureHistory[msg.session] = hist
	}
	cursorRow, cursorCol, cursorVisible := 0, 0, false
	if sess, ok := m.interactiveSessions[ws.Name]; ok {
		cursorRow, cursorCol, cursorVisible = sess.State.CursorRow, sess.State.CursorCol, sess.State.CursorVisible
	}
	hist.Record(result, cursorRow, cursorCol, cursorVisible, time.Now())

	if result.ChangedCleaned {
		probe := capture.ProbeStatus(result.Lines)
		ws.Status = reconcile.ApplyProbe(ws.Status, probe)
		m.scheduler.SetStatus(ws.Name, ws.Status, time.Now())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == interactive.ModeInteractive {
		return m.handleInteractiveKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.persistSelection()
		}
	case "down", "j":
		if m.cursor < len(m.workspaces)-1 {
			m.cursor++
			m.persistSelection()
		}
	case "enter":
		return m.enterInteractive()
	}
	return m, nil
}

func (m Model) enterInteractive() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.workspaces) {
		return m, nil
	}
	ws := m.workspaces[m.cursor]
	if ws.Session == nil {
		m.flash = "no live session for " + ws.Name
		return m, nil
	}

	sess, ok := m.interactiveSessions[ws.Name]
	if !ok {
		sess = &interactive.Session{State: &workspace.InteractiveState{
			SessionName: ws.Session.SessionName,
			PaneID:      ws.Session.PaneID,
		}}
		m.interactiveSessions[ws.Name] = sess
	}

	cols, rows := m.previewDims()
	gen, err := m.controller.Enter(context.Background(), sess, cols, rows, time.Now())
	if err != nil {
		m.log.WithError(err).WithField("session", ws.Name).Warn("enter interactive failed")
		m.flash = fmt.Sprintf("enter failed: %v", err)
		return m, nil
	}
	m.mode = interactive.ModeInteractive
	return m, m.captureCmd(ws, gen)
}

func (m Model) previewDims() (cols, rows int) {
	cols = m.width - 2
	rows = m.height - 4
	if cols < 10 {
		cols = 80
	}
	if rows < 5 {
		rows = 24
	}
	return
}

func (m Model) handleInteractiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.workspaces) {
		m.mode = interactive.ModeBrowsing
		return m, nil
	}
	ws := m.workspaces[m.cursor]
	sess, ok := m.interactiveSessions[ws.Name]
	if !ok {
		m.mode = interactive.ModeBrowsing
		return m, nil
	}

	now := time.Now()
	if sess.State.ScrollOffset > 0 && interactive.IsSnapBackKey(snapBackName(msg), msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
		sess.State.ScrollOffset = 0
	}

	outcome, err := m.controller.HandleKey(context.Background(), sess, msg, now)
	if err != nil {
		m.log.WithError(err).WithField("session", ws.Name).Warn("key forward failed")
		m.flash = err.Error()
	}
	if outcome.Exited {
		m.mode = interactive.ModeBrowsing
	}
	return m, nil
}

// snapBackName maps the subset of key types interactive.IsSnapBackKey
// recognises by name to their spec-named form; every other key type maps to
// "" (treated as non-semantic, never snapping the preview back).
func snapBackName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyBackspace:
		return "BSpace"
	case tea.KeyUp:
		return "Up"
	case tea.KeyDown:
		return "Down"
	case tea.KeyLeft:
		return "Left"
	case tea.KeyRight:
		return "Right"
	default:
		return ""
	}
}

// View renders the current screen: the workspace list in Browsing mode, or
// the pane preview in Interactive mode. The preview shows the cleaned lane;
// captures are taken without escape sequences, so no SGR colour is shown.
func (m Model) View() string {
	if m.mode == interactive.ModeInteractive && m.cursor < len(m.workspaces) {
		return m.renderInteractive(m.workspaces[m.cursor])
	}
	return m.renderList()
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(theme.RenderHeader(fmt.Sprintf("Grove — %s", m.project)))
	b.WriteString("\n")

	for i, ws := range m.workspaces {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		badge := statusBadge(ws.Status)
		orphanFlag := " "
		if ws.IsOrphanedWorktree {
			orphanFlag = "o"
		}
		line := fmt.Sprintf("%s%s %-20s %-10s %s", cursor, orphanFlag, ws.Name, ws.Branch, badge)
		if i == m.cursor {
			line = theme.DefaultTheme.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	for _, o := range m.orphaned {
		b.WriteString(theme.DefaultTheme.Muted.Render(fmt.Sprintf("  ! %s (orphaned session)\n", o.SessionName)))
	}

	if m.flash != "" {
		b.WriteString("\n" + theme.DefaultTheme.Warning.Render(m.flash))
	}
	b.WriteString("\n" + theme.DefaultTheme.Faint.Render("↑/↓ select · enter interact · q quit"))
	return b.String()
}

// renderInteractive renders the pane's cleaned-lane output (OutputBuffer,
// without SGR), backscrolled by the session's ScrollOffset (spec §4.5 Scroll
// handling), with a scrollbar indicator down the right edge. No cursor
// overlay is drawn.
func (m Model) renderInteractive(ws *workspace.Workspace) string {
	var lines []string
	if ws.Session != nil {
		lines = ws.Session.OutputBuffer
	}

	cols, rows := m.previewDims()
	vp := viewport.New(cols-1, rows)
	vp.SetContent(strings.Join(lines, "\n"))
	offset := 0
	if sess, ok := m.interactiveSessions[ws.Name]; ok {
		offset = sess.State.ScrollOffset
	}
	maxOffset := len(lines) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	vp.YOffset = maxOffset - offset
	if vp.YOffset < 0 {
		vp.YOffset = 0
	}

	body := scrollbar.Overlay(&vp)
	footer := theme.DefaultTheme.Faint.Render(fmt.Sprintf("interactive: %s · Esc Esc to exit", ws.Name))
	if offset > 0 {
		footer += theme.DefaultTheme.Faint.Render(fmt.Sprintf(" · scrolled back %d", offset))
	}
	return body + "\n" + footer
}

func statusBadge(status workspace.Status) string {
	style := lipgloss.NewStyle()
	switch status {
	case workspace.StatusActive:
		style = style.Foreground(theme.Green)
	case workspace.StatusThinking:
		style = style.Foreground(theme.Cyan)
	case workspace.StatusWaiting:
		style = style.Foreground(theme.Yellow)
	case workspace.StatusDone:
		style = style.Foreground(theme.Violet)
	case workspace.StatusError:
		style = style.Foreground(theme.Red)
	default:
		style = style.Foreground(theme.MutedText)
	}
	return style.Render(string(status))
}

// Run starts the TUI at repoPath; project defaults to the repo's base name.
func Run(repoPath string) error {
	project := filepath.Base(repoPath)
	m := New(repoPath, project)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
