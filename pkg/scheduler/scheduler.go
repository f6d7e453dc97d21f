// Package scheduler implements the earliest-deadline poll planner described
// in spec §4.4: a single-ticker design with per-session next-poll deadlines,
// adaptive intervals keyed on status/selection/interactivity, a 20ms
// keystroke debounce with an anti-starvation guarantee, and a batch-capture
// flag for sessions polled recently. Batch capture results are not shared
// or de-duplicated across callers.
package scheduler

import (
	"time"

	"github.com/grovetools/core/pkg/workspace"
)

// Intervals is the adaptive-interval matrix from spec §4.4, overridable from
// config.SchedulerConfig.
type Intervals struct {
	InteractiveFast   time.Duration // <2s since last key
	InteractiveMedium time.Duration // 2-10s since last key
	InteractiveSlow   time.Duration // >10s since last key
	SelectedActive    time.Duration // selected, status Active/Thinking
	SelectedWaiting   time.Duration // selected, status Waiting
	BackgroundLive    time.Duration // background, live session
	Terminal          time.Duration // status Done/Error
	Debounce          time.Duration // post-keystroke debounce
}

// DefaultIntervals is the built-in matrix from spec §4.4's table.
var DefaultIntervals = Intervals{
	InteractiveFast:   50 * time.Millisecond,
	InteractiveMedium: 200 * time.Millisecond,
	InteractiveSlow:   500 * time.Millisecond,
	SelectedActive:    200 * time.Millisecond,
	SelectedWaiting:   2 * time.Second,
	BackgroundLive:    10 * time.Second,
	Terminal:          20 * time.Second,
	Debounce:          20 * time.Millisecond,
}

// tickInterval drives the single-ticker scheduling loop.
const tickInterval = 50 * time.Millisecond

// batchWindow is how long a session stays in the active-session registry
// after being polled, making it eligible for batch capture (spec §4.4).
const batchWindow = 30 * time.Second

// singleflightTTL is the 300ms window returned by SingleflightTTL. No code
// uses it to share batch capture results across overlapping requests.
const singleflightTTL = 300 * time.Millisecond

type sessionState struct {
	generation uint64

	status      workspace.Status
	selected    bool
	interactive bool

	lastKeyAt   time.Time
	lastPolled  time.Time
	nextPollAt  time.Time
	debounceAt  time.Time // zero when no debounce is pending
}

// Scheduler owns per-session poll deadlines and generation counters. It is
// not safe for concurrent use — per spec §5, the core is single-threaded
// cooperative; callers serialise access through their own event loop.
type Scheduler struct {
	intervals Intervals
	sessions  map[string]*sessionState
}

// New builds a Scheduler with the given interval matrix.
func New(intervals Intervals) *Scheduler {
	return &Scheduler{intervals: intervals, sessions: make(map[string]*sessionState)}
}

// AddSession registers a session with the given status; callers update
// status as the Reconciler/Scheduler learns more. now is the current time,
// used to seed the initial deadline.
func (s *Scheduler) AddSession(name string, status workspace.Status, now time.Time) {
	st := &sessionState{status: status, generation: 1}
	st.nextPollAt = now.Add(s.intervalFor(st, now))
	s.sessions[name] = st
}

// RemoveSession bumps the session's generation (so any in-flight capture for
// it is discarded) and removes it from scheduling.
func (s *Scheduler) RemoveSession(name string) {
	if st, ok := s.sessions[name]; ok {
		st.generation++
	}
	delete(s.sessions, name)
}

// Generation returns the current generation for name, or 0 if unknown.
func (s *Scheduler) Generation(name string) uint64 {
	if st, ok := s.sessions[name]; ok {
		return st.generation
	}
	return 0
}

// IsCurrent reports whether gen matches name's current generation — the
// gate every capture result must pass before it is allowed to mutate state
// (spec §4.4 Generation invariants).
func (s *Scheduler) IsCurrent(name string, gen uint64) bool {
	st, ok := s.sessions[name]
	return ok && st.generation == gen
}

// EnterInteractive bumps the generation and marks the session interactive,
// per the Controller's Entering sequence (spec §4.5 step 1).
func (s *Scheduler) EnterInteractive(name string, now time.Time) uint64 {
	st, ok := s.sessions[name]
	if !ok {
		return 0
	}
	st.generation++
	st.interactive = true
	st.lastKeyAt = now
	s.rescheduleNow(st, name, now)
	return st.generation
}

// ExitInteractive returns the session to background/selected scheduling
// without bumping the generation (exit is not a resize or identity change).
func (s *Scheduler) ExitInteractive(name string, now time.Time) {
	st, ok := s.sessions[name]
	if !ok {
		return
	}
	st.interactive = false
	st.debounceAt = time.Time{}
	s.rescheduleNow(st, name, now)
}

// BumpOnResize bumps the generation after an applied pane resize (spec
// §4.4, §4.5 Entering step 2-3).
func (s *Scheduler) BumpOnResize(name string) uint64 {
	st, ok := s.sessions[name]
	if !ok {
		return 0
	}
	st.generation++
	return st.generation
}

// ReplaceSession bumps the generation for orphan recovery, where a new
// session identity takes over the same workspace name (spec §4.4, §8
// scenario 6: the new generation is not a continuation of the old).
func (s *Scheduler) ReplaceSession(name string, now time.Time) uint64 {
	st, ok := s.sessions[name]
	if !ok {
		s.AddSession(name, workspace.StatusActive, now)
		return s.sessions[name].generation
	}
	st.generation++
	st.lastKeyAt = time.Time{}
	st.debounceAt = time.Time{}
	s.rescheduleNow(st, name, now)
	return st.generation
}

// SetSelected marks whether name is the operator's currently selected
// workspace, affecting its adaptive interval.
func (s *Scheduler) SetSelected(name string, selected bool, now time.Time) {
	st, ok := s.sessions[name]
	if !ok {
		return
	}
	st.selected = selected
	s.rescheduleNow(st, name, now)
}

// SetStatus updates a session's status, affecting its adaptive interval.
func (s *Scheduler) SetStatus(name string, status workspace.Status, now time.Time) {
	st, ok := s.sessions[name]
	if !ok {
		return
	}
	st.status = status
	s.rescheduleNow(st, name, now)
}

// RecordKeystroke schedules a debounced poll at now+20ms. Per the
// anti-starvation invariant (spec §4.4), this never postpones a tick already
// pending at an earlier instant — it can only move the deadline earlier.
func (s *Scheduler) RecordKeystroke(name string, now time.Time) {
	st, ok := s.sessions[name]
	if !ok {
		return
	}
	st.lastKeyAt = now
	st.interactive = true

	debounce := now.Add(s.intervals.Debounce)
	st.debounceAt = debounce
	if st.nextPollAt.IsZero() || debounce.Before(st.nextPollAt) {
		st.nextPollAt = debounce
	}
}

// rescheduleNow recomputes the adaptive deadline and combines it with any
// pending debounce deadline, per the "earliest of the two" rule — but never
// postpones a deadline already pending earlier.
func (s *Scheduler) rescheduleNow(st *sessionState, name string, now time.Time) {
	adaptive := now.Add(s.intervalFor(st, now))
	candidate := adaptive
	if !st.debounceAt.IsZero() && st.debounceAt.Before(candidate) {
		candidate = st.debounceAt
	}
	if st.nextPollAt.IsZero() || candidate.Before(st.nextPollAt) {
		st.nextPollAt = candidate
	}
}

// intervalFor derives the adaptive interval for st's current context,
// applying the precedence order of spec §4.4's table: interactive intervals
// take priority over selected/background/terminal ones, since interactive
// mode is the most demanding context.
func (s *Scheduler) intervalFor(st *sessionState, now time.Time) time.Duration {
	if st.status == workspace.StatusMain || st.status == workspace.StatusIdle {
		// No poll; callers should not include these in the due set, but a
		// long interval is returned defensively rather than zero (which
		// would busy-loop the tick).
		return s.intervals.Terminal
	}

	if st.interactive {
		since := now.Sub(st.lastKeyAt)
		switch {
		case since < 2*time.Second:
			return s.intervals.InteractiveFast
		case since < 10*time.Second:
			return s.intervals.InteractiveMedium
		default:
			return s.intervals.InteractiveSlow
		}
	}

	switch st.status {
	case workspace.StatusDone, workspace.StatusError:
		return s.intervals.Terminal
	case workspace.StatusWaiting:
		if st.selected {
			return s.intervals.SelectedWaiting
		}
		return s.intervals.BackgroundLive
	default: // Active, Thinking, Unsupported (never polled but defensive)
		if st.selected {
			return s.intervals.SelectedActive
		}
		return s.intervals.BackgroundLive
	}
}

// Due is one session whose deadline has passed, along with the context the
// caller needs to dispatch its capture at the right generation and mode.
type Due struct {
	Session     string
	Generation  uint64
	Interactive bool
	Selected    bool
	// Batch is true when two or more sessions came due in the same tick,
	// signalling the caller should use a singleflight batch capture rather
	// than individual calls (spec §4.4 Batch capture).
	Batch bool
}

// Tick advances the scheduling clock to now and returns every session whose
// deadline has passed, clearing the consumed debounce deadline and
// reassigning each due session's next deadline from its (possibly just
// updated) context.
func (s *Scheduler) Tick(now time.Time) []Due {
	var due []Due
	for name, st := range s.sessions {
		if st.status == workspace.StatusMain || st.status == workspace.StatusIdle {
			continue
		}
		if st.nextPollAt.IsZero() || st.nextPollAt.After(now) {
			continue
		}
		due = append(due, Due{
			Session:     name,
			Generation:  st.generation,
			Interactive: st.interactive,
			Selected:    st.selected,
		})
	}

	batch := len(due) > 1
	for i := range due {
		due[i].Batch = batch
		st := s.sessions[due[i].Session]
		st.debounceAt = time.Time{}
		st.lastPolled = now
		st.nextPollAt = now.Add(s.intervalFor(st, now))
	}
	return due
}

// ActiveSessions returns the names of sessions polled within the last 30s —
// the batch-eligible registry (spec §4.4).
func (s *Scheduler) ActiveSessions(now time.Time) []string {
	var names []string
	for name, st := range s.sessions {
		if !st.lastPolled.IsZero() && now.Sub(st.lastPolled) < batchWindow {
			names = append(names, name)
		}
	}
	return names
}

// TickInterval is the fixed cadence of the single-ticker design.
func TickInterval() time.Duration { return tickInterval }

// SingleflightTTL is the batch-capture de-duplication window.
func SingleflightTTL() time.Duration { return singleflightTTL }
