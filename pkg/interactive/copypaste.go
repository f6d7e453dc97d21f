package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/grovetools/core/pkg/workspace"
)

// Clipboard is the narrow capability Copy/Paste need, so tests can substitute
// an in-memory fake instead of touching the real system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard delegates to atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)    { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error  { return clipboard.WriteAll(text) }

// SystemClipboard is the production Clipboard implementation.
var SystemClipboard Clipboard = systemClipboard{}

// Copy implements spec §4.5's Alt+C: extract the selection from buffer using
// visual column ranges (tab expansion, wide-character snap), or the visible
// lines when no selection is active; strip residual SGR before writing to
// the clipboard.
func (c *Controller) Copy(sess *Session, buffer []string, visibleStart, visibleEnd int, cb Clipboard) (flash string, err error) {
	var lines []string

	if sess.State.SelectionActive {
		lines = extractSelection(buffer, *sess.State)
	} else {
		start, end := visibleStart, visibleEnd
		if start < 0 {
			start = 0
		}
		if end > len(buffer) {
			end = len(buffer)
		}
		if start < end {
			lines = append(lines, buffer[start:end]...)
		}
	}

	clean := make([]string, len(lines))
	for i, l := range lines {
		clean[i] = ansi.Strip(l)
	}
	text := strings.Join(clean, "\n")

	if err := cb.WriteAll(text); err != nil {
		return "", err
	}

	sess.State.SelectionActive = false
	return fmt.Sprintf("Copied %d lines", len(clean)), nil
}

// extractSelection pulls the selected visual-column range out of buffer,
// normalising anchor/extent order and snapping wide-character boundaries
// with go-runewidth so a selection never splits a double-width rune.
func extractSelection(buffer []string, sel workspace.InteractiveState) []string {
	startRow, startCol, endRow, endCol := sel.SelectionAnchorRow, sel.SelectionAnchorCol, sel.SelectionExtentRow, sel.SelectionExtentCol
	if startRow > endRow || (startRow == endRow && startCol > endCol) {
		startRow, endRow = endRow, startRow
		startCol, endCol = endCol, startCol
	}

	var out []string
	for row := startRow; row <= endRow && row < len(buffer); row++ {
		if row < 0 {
			continue
		}
		line := expandTabs(buffer[row])
		from, to := 0, runewidth.StringWidth(line)
		if row == startRow {
			from = startCol
		}
		if row == endRow {
			to = endCol
		}
		out = append(out, sliceVisualColumns(line, from, to))
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next 8-column stop, so
// visual-column arithmetic matches what the terminal rendered.
func expandTabs(line string) string {
	const tabWidth = 8
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// sliceVisualColumns returns the substring of line spanning visual columns
// [from, to), snapping to the nearest full-rune boundary so a wide character
// straddling the cut is never split in half.
func sliceVisualColumns(line string, from, to int) string {
	if from < 0 {
		from = 0
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if col >= to {
			break
		}
		if col >= from {
			b.WriteRune(r)
		}
		col += w
	}
	return b.String()
}

// bracketedPasteStart/End wrap a paste body when the pane has bracketed
// paste mode enabled (spec §4.5 Paste).
const (
	bracketedPasteStart = "\x1b[200~"
	bracketedPasteEnd   = "\x1b[201~"
)

// Paste implements spec §4.5's Alt+V: read the system clipboard, wrap in
// bracketed-paste markers when the pane has enabled that mode, otherwise
// send via the multiplexer's paste-buffer path, and snap the preview to the
// bottom if it was scrolled up.
func (c *Controller) Paste(ctx context.Context, sess *Session, cb Clipboard, snapToBottom func()) error {
	text, err := cb.ReadAll()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	if snapToBottom != nil {
		snapToBottom()
	}

	if sess.State.BracketedPasteEnabled {
		return c.Adapter.SendLiteral(ctx, sess.State.SessionName, bracketedPasteStart+text+bracketedPasteEnd)
	}
	return c.Adapter.SendLiteral(ctx, sess.State.SessionName, text)
}

// DetectBracketedPaste inspects a render-lane capture for the mode
// enable/disable sequences (spec §4.5 Paste: "detected by observing
// ESC[?2004h ... disabled by ESC[?2004l").
func DetectBracketedPaste(render []byte, current bool) bool {
	s := string(render)
	if strings.Contains(s, "\x1b[?2004l") {
		return false
	}
	if strings.Contains(s, "\x1b[?2004h") {
		return true
	}
	return current
}
