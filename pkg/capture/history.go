package capture

import (
	"time"

	"github.com/google/uuid"

	"github.com/grovetools/core/pkg/workspace"
)

// History is a per-session ring buffer retaining the last
// workspace.CaptureHistoryCapacity CaptureRecords for diagnosis (spec §3
// CaptureRecord, §6 debug surfaces).
type History struct {
	records []workspace.CaptureRecord
	next    int
	full    bool
}

// NewHistory builds an empty History.
func NewHistory() *History {
	return &History{records: make([]workspace.CaptureRecord, workspace.CaptureHistoryCapacity)}
}

// Record builds an immutable CaptureRecord from a processed Result and
// cursor snapshot, appends it to the ring buffer, and returns it.
func (h *History) Record(result Result, cursorRow, cursorCol int, cursorVisible bool, now time.Time) workspace.CaptureRecord {
	rec := workspace.CaptureRecord{
		ID:             uuid.NewString(),
		Timestamp:      now,
		Raw:            result.Raw,
		Cleaned:        result.Cleaned,
		Render:         result.Render,
		RawHash:        result.RawHash,
		CleanedHash:    result.CleanedHash,
		ChangedRaw:     result.ChangedRaw,
		ChangedCleaned: result.ChangedCleaned,
		CursorRow:      cursorRow,
		CursorCol:      cursorCol,
		CursorVisible:  cursorVisible,
	}

	h.records[h.next] = rec
	h.next = (h.next + 1) % len(h.records)
	if h.next == 0 {
		h.full = true
	}
	return rec
}

// Records returns the retained records in chronological order (oldest
// first).
func (h *History) Records() []workspace.CaptureRecord {
	if !h.full {
		return append([]workspace.CaptureRecord(nil), h.records[:h.next]...)
	}
	out := make([]workspace.CaptureRecord, 0, len(h.records))
	out = append(out, h.records[h.next:]...)
	out = append(out, h.records[:h.next]...)
	return out
}
