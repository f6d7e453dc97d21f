// Package reconcile reconstructs the authoritative workspace list from three
// independent sources — worktree inventory, filesystem markers, and live
// multiplexer sessions — and classifies each workspace's lifecycle state
// (spec §4.3).
package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/core/git"
	"github.com/grovetools/core/logging"
	"github.com/grovetools/core/pkg/agentprobe"
	"github.com/grovetools/core/pkg/capture"
	"github.com/grovetools/core/pkg/tmux"
	"github.com/grovetools/core/pkg/workspace"
	"github.com/grovetools/core/util/pathutil"
)

// Reconciler joins git worktree listings, filesystem markers, and live
// multiplexer sessions into a classified []*workspace.Workspace.
type Reconciler struct {
	worktrees git.WorktreeProvider
	sessions  tmux.Adapter
	project   string // project slug used to derive session names
	log       *logrus.Entry
}

// New builds a Reconciler over the given worktree provider and session
// adapter. project is the slug used to derive deterministic session names
// (workspace.SessionName); pass "" when only one project is ever active.
func New(worktrees git.WorktreeProvider, sessions tmux.Adapter, project string) *Reconciler {
	return &Reconciler{worktrees: worktrees, sessions: sessions, project: project, log: logging.NewLogger("reconcile")}
}

// OrphanedSession describes a live multiplexer session with no backing
// worktree directory — a cleanup candidate, not shown in the main list
// (spec §4.3 classification rule 5).
type OrphanedSession struct {
	SessionName string
}

// Result is one reconciliation pass's output.
type Result struct {
	Workspaces []*workspace.Workspace
	Orphaned   []OrphanedSession
}

// Reconcile performs one full reconciliation pass rooted at repoPath, the
// primary worktree's repository root.
func (r *Reconciler) Reconcile(ctx context.Context, repoPath string) (Result, error) {
	worktrees, err := r.worktrees.ListWorktrees(ctx, repoPath)
	if err != nil {
		return Result{}, err
	}

	liveSessions, err := r.sessions.ListSessions(ctx)
	if err != nil {
		// A dead multiplexer daemon must not abort reconciliation entirely;
		// every session is then treated as not-live.
		r.log.WithError(err).Warn("tmux session listing failed, treating all sessions as not-live")
		liveSessions = nil
	}
	liveSet := make(map[string]bool, len(liveSessions))
	prefix := sessionPrefix(r.project)
	for _, name := range liveSessions {
		if strings.HasPrefix(name, prefix) {
			liveSet[name] = true
		}
	}
	matchedSessions := make(map[string]bool, len(liveSet))

	var result Result
	for _, wt := range worktrees {
		ws, matched := r.classify(wt, liveSet)
		if matched != "" {
			matchedSessions[matched] = true
		}
		if ws != nil {
			result.Workspaces = append(result.Workspaces, ws)
		}
	}

	for name := range liveSet {
		if !matchedSessions[name] {
			result.Orphaned = append(result.Orphaned, OrphanedSession{SessionName: name})
		}
	}

	sortWorkspaces(result.Workspaces)
	return result, nil
}

// classify applies the ordered classification rule from spec §4.3 to one
// worktree. matchedSession is non-empty when a live session was attributed
// to this workspace, so the caller can exclude it from the orphaned-session
// set.
func (r *Reconciler) classify(wt git.WorktreeInfo, liveSet map[string]bool) (ws *workspace.Workspace, matchedSession string) {
	name := filepath.Base(wt.Path)

	if _, err := os.Stat(wt.Path); err != nil {
		if os.IsNotExist(err) {
			// MissingCwd: surfaced for prune only if its branch also no
			// longer exists, which the caller determines from `git branch
			// list`; at the Reconciler layer we simply don't include a
			// fully-gone worktree directory in the list.
			return nil, ""
		}
	}

	if len(wt.Branch) == 0 && wt.Bare {
		return nil, ""
	}

	isMain := false
	// The main worktree is the first entry of `git worktree list`, as
	// returned by GetWorktreeRoot; this worktree is main when its path
	// matches that one.
	if mainPath, err := r.worktrees.GetWorktreeRoot(context.Background(), wt.Path); err == nil {
		isMain = samePath(mainPath, wt.Path)
	}

	ws = &workspace.Workspace{
		Name:   name,
		Path:   wt.Path,
		Branch: wt.Branch,
		IsMain: isMain,
	}

	if isMain {
		ws.Status = workspace.StatusMain
		ws.LastActivity = markerModTime(wt.Path)
		return ws, ""
	}

	baseBranch, _ := workspace.ReadBaseMarker(wt.Path)
	ws.BaseBranch = baseBranch

	kind, hasMarker, err := workspace.ReadAgentMarker(wt.Path)
	if err != nil {
		r.log.WithError(err).WithField("workspace", name).Warn("agent marker read failed")
		ws.LastError = err
		ws.Status = workspace.StatusError
		ws.LastActivity = markerModTime(wt.Path)
		return ws, ""
	}
	ws.AgentKind = kind

	if !hasMarker {
		// Not Grove-managed; still reported so the operator can adopt it,
		// but it carries no agent_kind and rejects lifecycle operations.
		ws.AgentKind = workspace.AgentUnsupported
		ws.Status = workspace.StatusUnsupported
		ws.LastActivity = markerModTime(wt.Path)
		return ws, ""
	}
	if kind == workspace.AgentUnsupported {
		ws.Status = workspace.StatusUnsupported
		ws.LastActivity = markerModTime(wt.Path)
		return ws, ""
	}

	sessionName := workspace.SessionName(r.project, name)
	if liveSet[sessionName] {
		ws.Session = &workspace.AgentSession{SessionName: sessionName}
		ws.Status = r.deriveStartingStatus(kind, wt.Path)
		ws.LastActivity = time.Now()
		return ws, sessionName
	}

	ws.IsOrphanedWorktree = true
	ws.Status = workspace.StatusIdle
	ws.LastActivity = markerModTime(wt.Path)
	return ws, ""
}

// deriveStartingStatus applies the resolution rule: session-file probes are
// authoritative for Active/Waiting when available; capture-side pattern
// probes own Thinking/Done/Error and run on the next poll, not here.
func (r *Reconciler) deriveStartingStatus(kind workspace.AgentKind, canonicalPath string) workspace.Status {
	probe, ok := agentprobe.ProbeWorkspace(kind, canonicalPath)
	if !ok {
		return workspace.StatusActive
	}
	if probe.Active {
		return workspace.StatusActive
	}
	return workspace.StatusWaiting
}

// ApplyProbe folds a Capture Processor pattern probe into a workspace's
// status, honouring the resolution rule: pane-output patterns only ever move
// status to Thinking/Done/Error, never Active/Waiting (spec §4.2, §4.3).
func ApplyProbe(current workspace.Status, probe capture.ProbeResult) workspace.Status {
	switch {
	case probe.Error:
		return workspace.StatusError
	case probe.Done:
		return workspace.StatusDone
	case probe.Thinking:
		return workspace.StatusThinking
	default:
		return current
	}
}

func sessionPrefix(project string) string {
	if project == "" {
		return "grove-ws-"
	}
	return "grove-ws-" + workspace.SanitizeSessionComponent(project) + "-"
}

func markerModTime(workspaceRoot string) time.Time {
	info, err := os.Stat(filepath.Join(workspaceRoot, workspace.AgentMarkerFile))
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// samePath compares two worktree paths via pathutil's canonical-lookup form
// (absolute, symlink-resolved, case-folded on case-insensitive filesystems),
// since tmux/git can report either the worktree's real path or a path
// traversed through a symlinked checkout.
func samePath(a, b string) bool {
	aa, errA := pathutil.NormalizeForLookup(a)
	bb, errB := pathutil.NormalizeForLookup(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return aa == bb
}

// sortWorkspaces pins Main first, then sorts the rest by last-activity
// descending, then name (spec §8 scenario 1).
func sortWorkspaces(ws []*workspace.Workspace) {
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].IsMain != ws[j].IsMain {
			return ws[i].IsMain
		}
		if !ws[i].LastActivity.Equal(ws[j].LastActivity) {
			return ws[i].LastActivity.After(ws[j].LastActivity)
		}
		return ws[i].Name < ws[j].Name
	})
}
