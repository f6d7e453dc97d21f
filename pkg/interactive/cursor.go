package interactive

import (
	"regexp"
	"time"
)

// OverlayPosition is the cursor's row/col within the rendered preview, after
// adjusting for any difference between the tmux pane height and the
// rendered preview height and clamping into the visible area (spec §4.5
// Cursor overlay).
type OverlayPosition struct {
	Row     int
	Col     int
	Visible bool
}

// ComputeOverlay adjusts a captured cursor position for the preview/pane
// height delta (pane taller than preview ⇒ shift up; pane shorter ⇒ shift
// down) and clamps into [0, previewRows) x [0, previewCols).
func ComputeOverlay(cursorRow, cursorCol int, cursorVisible bool, paneRows, previewRows, previewCols int) OverlayPosition {
	row := cursorRow - (paneRows - previewRows)
	col := cursorCol

	if row < 0 {
		row = 0
	}
	if previewRows > 0 && row >= previewRows {
		row = previewRows - 1
	}
	if col < 0 {
		col = 0
	}
	if previewCols > 0 && col >= previewCols {
		col = previewCols - 1
	}

	return OverlayPosition{Row: row, Col: col, Visible: cursorVisible}
}

// scrollCooldown is the cooldown applied after a single scroll event;
// scrollBurstCooldown is the longer cooldown applied once scrollBurstLen
// (four) consecutive events have been seen within the burst window (spec §4.5 Scroll handling: "~25Hz
// ... 40ms cooldown; 120ms after four consecutive hits").
const (
	scrollCooldown      = 40 * time.Millisecond
	scrollBurstCooldown = 120 * time.Millisecond
	scrollBurstLen      = 4
)

// ScrollDirection is the wheel direction of one scroll event.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

// ScrollResult is what one scroll event should do to the preview's offset
// and auto-scroll state.
type ScrollResult struct {
	Accepted   bool
	OffsetDiff int  // +1 to pause/increment, -1 to decrement
	ResumeAuto bool // true once offset would reach zero on a down-scroll
}

// HandleScroll applies the burst-rate throttle before accepting a scroll
// event, then returns how the preview offset should change.
func HandleScroll(lastScrollAt time.Time, burstCount int, dir ScrollDirection, currentOffset int, now time.Time) (ScrollResult, time.Time, int) {
	cooldown := scrollCooldown
	if burstCount >= scrollBurstLen {
		cooldown = scrollBurstCooldown
	}

	if !lastScrollAt.IsZero() && now.Sub(lastScrollAt) < cooldown {
		return ScrollResult{Accepted: false}, lastScrollAt, burstCount
	}

	newBurst := burstCount + 1
	if lastScrollAt.IsZero() || now.Sub(lastScrollAt) > scrollBurstCooldown*2 {
		newBurst = 1
	}

	if dir == ScrollUp {
		return ScrollResult{Accepted: true, OffsetDiff: 1}, now, newBurst
	}

	resume := currentOffset-1 <= 0
	return ScrollResult{Accepted: true, OffsetDiff: -1, ResumeAuto: resume}, now, newBurst
}

// mouseFragmentCSI matches the mouse-report byte pattern from spec §4.5/§8:
// "[" "<" digits ";" digits ";" digits ("M"|"m").
var mouseFragmentCSI = regexp.MustCompile(`^\[<[0-9]+;[0-9]+;[0-9]+[Mm]`)

// postScrollWindow is how long after a scroll event a key matching the
// mouse-fragment pattern is rejected (spec §4.5 Input hygiene rule 1).
const postScrollWindow = 40 * time.Millisecond

// ShouldDropKey implements two of the input-hygiene filters from spec §4.5:
// mouse-fragment rejection within the post-scroll window, and a bare "["
// dropped inside the post-scroll/post-escape window. The snap-back rule
// (non-semantic keys never snap the preview back) is IsSnapBackKey.
func ShouldDropKey(raw string, lastScrollAt time.Time, escapePending bool, now time.Time) bool {
	withinScrollWindow := !lastScrollAt.IsZero() && now.Sub(lastScrollAt) < postScrollWindow

	if withinScrollWindow && mouseFragmentCSI.MatchString(raw) {
		return true
	}
	if (withinScrollWindow || escapePending) && raw == "[" {
		return true
	}
	return false
}

// IsSnapBackKey reports whether a key should snap a scrolled-up preview back
// to the bottom: only printable runes or semantic editing keys do (spec
// §4.5 Input hygiene rule 3). Escape, mouse fragments, and partial
// multi-rune sequences never snap.
func IsSnapBackKey(named string, isPrintable bool) bool {
	if isPrintable {
		return true
	}
	switch named {
	case "Enter", "BSpace", "Up", "Down", "Left", "Right":
		return true
	default:
		return false
	}
}
