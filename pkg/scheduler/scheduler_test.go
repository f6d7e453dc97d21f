package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/grovetools/core/pkg/workspace"
)

func TestAddSessionSchedulesFirstPoll(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusActive, now)

	assert.EqualValues(t, 1, s.Generation("ws-a"))
	assert.True(t, s.IsCurrent("ws-a", 1))
	assert.False(t, s.IsCurrent("ws-a", 2))
}

func TestMainAndIdleNeverDue(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("main", workspace.StatusMain, now)
	s.AddSession("idle", workspace.StatusIdle, now)

	due := s.Tick(now.Add(time.Hour))
	assert.Empty(t, due)
}

func TestEnterInteractiveBumpsGeneration(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusActive, now)

	gen := s.EnterInteractive("ws-a", now)
	assert.EqualValues(t, 2, gen)
	assert.False(t, s.IsCurrent("ws-a", 1))
	assert.True(t, s.IsCurrent("ws-a", 2))
}

func TestExitInteractiveDoesNotBumpGeneration(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusActive, now)
	gen := s.EnterInteractive("ws-a", now)

	s.ExitInteractive("ws-a", now)
	assert.Equal(t, gen, s.Generation("ws-a"))
}

func TestRemoveSessionBumpsGenerationAndDrops(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusActive, now)
	gen := s.Generation("ws-a")

	s.RemoveSession("ws-a")
	assert.EqualValues(t, 0, s.Generation("ws-a"))
	assert.False(t, s.IsCurrent("ws-a", gen))
}

func TestRecordKeystrokeNeverPostponesAnEarlierPendingTick(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusDone, now) // Terminal => far-future deadline

	// A keystroke schedules a debounce 20ms out, which must be adopted since
	// it's earlier than the Terminal interval's far-future deadline.
	s.RecordKeystroke("ws-a", now)

	due := s.Tick(now.Add(25 * time.Millisecond))
	require.Len(t, due, 1)
	assert.Equal(t, "ws-a", due[0].Session)
}

// TestAntiStarvation is the property test for spec §4.4's anti-starvation
// guarantee: however many times SetStatus/SetSelected/RecordKeystroke are
// called before a tick, the session's deadline is never later than the
// earliest one any individual call would have produced on its own.
func TestAntiStarvation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := New(DefaultIntervals)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		s.AddSession("ws-a", workspace.StatusWaiting, base)

		earliestObserved := s.sessions["ws-a"].nextPollAt

		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 20).Draw(rt, "ops")
		cursor := base
		for _, op := range ops {
			cursor = cursor.Add(time.Duration(rapid.IntRange(0, 1000).Draw(rt, "dt")) * time.Millisecond)
			switch op {
			case 0:
				s.RecordKeystroke("ws-a", cursor)
			case 1:
				s.SetSelected("ws-a", rapid.Bool().Draw(rt, "sel"), cursor)
			case 2:
				s.SetStatus("ws-a", workspace.StatusWaiting, cursor)
			}
			next := s.sessions["ws-a"].nextPollAt
			if next.Before(earliestObserved) {
				earliestObserved = next
			}
			// The session's deadline must never regress past the earliest
			// one ever computed for it (monotonic non-postponement), and it
			// must never sit strictly after "now" plus the Terminal ceiling.
			assert.False(rt, next.After(earliestObserved))
			assert.False(rt, next.After(cursor.Add(s.intervals.Terminal)))
		}
	})
}

func TestBatchFlagSetWhenMultipleSessionsDueTogether(t *testing.T) {
	s := New(DefaultIntervals)
	now := time.Now()
	s.AddSession("ws-a", workspace.StatusWaiting, now)
	s.AddSession("ws-b", workspace.StatusWaiting, now)
	s.SetSelected("ws-a", true, now)
	s.SetSelected("ws-b", true, now)

	due := s.Tick(now.Add(3 * time.Second))
	require.Len(t, due, 2)
	for _, d := range due {
		assert.True(t, d.Batch)
	}
}
