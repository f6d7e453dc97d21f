package workspace

import "time"

// AgentKind identifies which coding agent a workspace is configured to run.
type AgentKind string

const (
	AgentClaude      AgentKind = "claude"
	AgentCodex       AgentKind = "codex"
	AgentUnsupported AgentKind = "unsupported"
)

// ParseAgentKind maps a marker-file value to a known AgentKind, falling back to
// AgentUnsupported for anything grove doesn't know how to launch.
func ParseAgentKind(marker string) AgentKind {
	switch marker {
	case string(AgentClaude):
		return AgentClaude
	case string(AgentCodex):
		return AgentCodex
	default:
		return AgentUnsupported
	}
}

// Status is the sum type describing a workspace's current lifecycle state.
// Main workspaces never transition to Active/Thinking/Waiting; Unsupported
// workspaces reject all lifecycle operations.
type Status string

const (
	StatusMain        Status = "Main"
	StatusIdle        Status = "Idle"
	StatusActive      Status = "Active"
	StatusThinking    Status = "Thinking"
	StatusWaiting     Status = "Waiting"
	StatusDone        Status = "Done"
	StatusError       Status = "Error"
	StatusUnsupported Status = "Unsupported"
)

// Workspace is an isolated working tree belonging to a project, reconciled
// from git worktree metadata, filesystem markers, and live tmux sessions.
type Workspace struct {
	Name               string
	Path               string
	Branch             string
	BaseBranch         string
	AgentKind          AgentKind
	Status             Status
	IsMain             bool
	IsOrphanedWorktree bool

	// Session is non-nil exactly when a live multiplexer session backs this
	// workspace.
	Session *AgentSession

	// LastActivity drives the fresh-start sort order (main pinned first,
	// others by last-activity then name). Falls back to marker mtime when no
	// session has ever produced output.
	LastActivity time.Time

	// LastError surfaces a per-workspace reconciliation failure without
	// failing the whole refresh (see Reconciler partial-failure policy).
	LastError error
}

// CanRunAgent reports whether lifecycle operations (start/stop/enter
// interactive) are permitted on this workspace.
func (w *Workspace) CanRunAgent() bool {
	return !w.IsMain && w.AgentKind != AgentUnsupported
}

// AgentSession is one-to-one with a non-main Workspace that has a live
// multiplexer session.
type AgentSession struct {
	SessionName string
	PaneID      string

	// OutputBuffer holds up to OutputBufferCapacity rendered lines; captures
	// fetch OutputBufferFetchLines to provide trim margin.
	OutputBuffer []string

	LastOutputAt time.Time

	// WaitingPrompt holds the text of the approval prompt when Status is
	// Waiting.
	WaitingPrompt string

	// Generation is the current PollGeneration for this session's identity.
	Generation uint64
}

const (
	// OutputBufferCapacity is the maximum number of rendered lines retained
	// per AgentSession.
	OutputBufferCapacity = 500

	// OutputBufferFetchLines is how many lines a capture requests, providing
	// trim margin above OutputBufferCapacity.
	OutputBufferFetchLines = 600
)

// CaptureRecord is an immutable snapshot of one poll result.
type CaptureRecord struct {
	// ID uniquely identifies this record within its session's ring buffer;
	// collision-free across concurrent pollers (google/uuid).
	ID string

	Timestamp time.Time

	Raw     []byte
	Cleaned []byte
	Render  []byte

	RawHash     uint64
	CleanedHash uint64

	ChangedRaw     bool
	ChangedCleaned bool

	CursorRow     int
	CursorCol     int
	CursorVisible bool
}

// CaptureHistoryCapacity bounds the per-session ring buffer of CaptureRecords
// retained for diagnosis.
const CaptureHistoryCapacity = 10

// InteractiveState is present exactly when the operator has entered
// keystroke-forwarding mode on a selected workspace.
type InteractiveState struct {
	SessionName string
	PaneID      string

	PaneRows int
	PaneCols int

	CursorRow     int
	CursorCol     int
	CursorVisible bool

	LastKeyAt time.Time

	LastScrollAt     time.Time
	ScrollBurstCount int
	ScrollOffset     int

	EscapePending  bool
	EscapeDeadline time.Time

	BracketedPasteEnabled bool

	// SelectionAnchorRow/Col and SelectionExtentRow/Col describe an optional
	// copy selection; SelectionActive is false when no selection exists.
	SelectionActive    bool
	SelectionAnchorRow int
	SelectionAnchorCol int
	SelectionExtentRow int
	SelectionExtentCol int

	Generation uint64
}
