package capture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/core/pkg/workspace"
)

func TestProcessFastPathSkipsReSplitWhenRawUnchanged(t *testing.T) {
	st := &State{}
	first := Process(st, []byte("hello\n"))
	require.True(t, first.ChangedRaw)
	require.True(t, first.ChangedCleaned)

	second := Process(st, []byte("hello\n"))
	assert.False(t, second.ChangedRaw)
	assert.False(t, second.ChangedCleaned)
	assert.Equal(t, first.Lines, second.Lines)
}

func TestProcessRawChangedButCleanedSameKeepsLines(t *testing.T) {
	st := &State{}
	first := Process(st, []byte("hello\x1b[6n\n"))
	require.True(t, first.ChangedCleaned)

	// A different raw stream (an extra cursor-position-report sequence) whose
	// cleaned text is identical must not trigger a re-split.
	second := Process(st, []byte("hello\x1b[7n\n"))
	assert.True(t, second.ChangedRaw)
	assert.False(t, second.ChangedCleaned)
	assert.Equal(t, first.Lines, second.Lines)
}

func TestProcessStripsMouseFragments(t *testing.T) {
	st := &State{}
	raw := []byte("a\x1b[<0;10;20Mb\n")
	result := Process(st, raw)
	assert.NotContains(t, string(result.Raw), "[<0;10;20M")
}

func TestProcessRenderLanePreservesSGRButStripsOtherEscapes(t *testing.T) {
	st := &State{}
	raw := []byte("\x1b[31mred\x1b[0m\x1b[2J\n")
	result := Process(st, raw)
	assert.Contains(t, string(result.Render), "\x1b[31m")
	assert.Contains(t, string(result.Render), "\x1b[0m")
	assert.NotContains(t, string(result.Render), "\x1b[2J")
}

func TestProcessCleanedLaneStripsAllEscapes(t *testing.T) {
	st := &State{}
	raw := []byte("\x1b[31mred\x1b[0m\n")
	result := Process(st, raw)
	assert.NotContains(t, string(result.Cleaned), "\x1b")
	assert.Contains(t, string(result.Cleaned), "red")
}

func TestProcessLinesCappedAtCapacity(t *testing.T) {
	st := &State{}
	var raw []byte
	for i := 0; i < Capacity+50; i++ {
		raw = append(raw, []byte("line\n")...)
	}
	result := Process(st, raw)
	assert.Len(t, result.Lines, Capacity)
}

func TestProbeStatusDetectsWaitingThinkingDoneError(t *testing.T) {
	assert.True(t, ProbeStatus([]string{"Allow edit? [y/n]"}).Waiting)
	assert.True(t, ProbeStatus([]string{"<thinking>"}).Thinking)
	assert.True(t, ProbeStatus([]string{"Task completed"}).Done)
	assert.True(t, ProbeStatus([]string{"Error: something broke"}).Error)
}

func TestProbeStatusOnlyScansTail(t *testing.T) {
	lines := make([]string, 0, probeTailLines+10)
	lines = append(lines, "error: old and irrelevant")
	for i := 0; i < probeTailLines+5; i++ {
		lines = append(lines, "plain output")
	}
	result := ProbeStatus(lines)
	assert.False(t, result.Error, "the error substring scrolled out of the scanned tail window")
}

func TestProbeStatusNoMatchesIsAllFalse(t *testing.T) {
	result := ProbeStatus([]string{"just some normal output"})
	assert.Equal(t, ProbeResult{}, result)
}

func TestHistoryRecordsInChronologicalOrderWhenNotFull(t *testing.T) {
	h := NewHistory()
	st := &State{}
	now := time.Now()

	for i := 0; i < 3; i++ {
		result := Process(st, []byte("frame"))
		h.Record(result, 0, 0, false, now.Add(time.Duration(i)*time.Second))
	}

	records := h.Records()
	require.Len(t, records, 3)
	assert.True(t, records[0].Timestamp.Before(records[1].Timestamp))
	assert.True(t, records[1].Timestamp.Before(records[2].Timestamp))
}

func TestHistoryWrapsAtCapacity(t *testing.T) {
	h := NewHistory()
	st := &State{}
	now := time.Now()

	total := workspace.CaptureHistoryCapacity + 4
	for i := 0; i < total; i++ {
		result := Process(st, []byte("frame"))
		h.Record(result, 0, 0, false, now.Add(time.Duration(i)*time.Second))
	}

	records := h.Records()
	require.Len(t, records, workspace.CaptureHistoryCapacity)
	// Oldest surviving record is the 5th write (index 4), since the first 4
	// were evicted by the wraparound.
	assert.Equal(t, now.Add(4*time.Second), records[0].Timestamp)
	assert.Equal(t, now.Add(time.Duration(total-1)*time.Second), records[len(records)-1].Timestamp)
}

func TestHistoryRecordAssignsUniqueIDs(t *testing.T) {
	h := NewHistory()
	st := &State{}
	now := time.Now()
	a := h.Record(Process(st, []byte("one")), 0, 0, false, now)
	b := h.Record(Process(st, []byte("two")), 0, 0, false, now)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.ID)
}
