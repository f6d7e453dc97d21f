// Package capture implements the dual-lane sanitisation and change-detection
// pipeline described in spec §4.2: one lane preserves SGR colour for
// rendering, the other strips all control bytes for diffing and status
// detection.
package capture

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/grovetools/core/pkg/workspace"
)

// Capacity is the configured line-count ceiling for the cleaned stream
// (workspace.OutputBufferCapacity).
const Capacity = workspace.OutputBufferCapacity

// mouseFragment matches SGR-mode mouse reports (ESC[<d;d;dM/m) and
// enable/disable sequences, including fragments missing their leading ESC —
// these change on every pointer move and would otherwise invalidate change
// detection on every frame (§4.2 Mouse-fragment stripping).
var mouseFragment = regexp.MustCompile(
	"\x1b?\\[<[0-9]+;[0-9]+;[0-9]+[Mm]" +
		"|\x1b\\[\\?1000[0-9]?[hl]" +
		"|\x1b\\[\\?100[0-9][hl]",
)

// legacyMouseReport matches the 3-byte legacy mouse encoding (ESC [ M Cb Cx Cy).
var legacyMouseReport = regexp.MustCompile("\x1b\\[M...")

// State is the Processor's per-session memory: the previous capture's
// hashes and line storage, used for the fast-path change detection in §4.2.
type State struct {
	rawHash     uint64
	rawLen      int
	cleanedHash uint64
	lines       []string
}

// Result is what a single Process call returns: the three byte variants, two
// hashes, and the changed flags required by CaptureRecord.
type Result struct {
	Raw     []byte
	Cleaned []byte
	Render  []byte

	RawHash     uint64
	CleanedHash uint64

	ChangedRaw     bool
	ChangedCleaned bool

	// Lines is the split, capacity-bounded cleaned stream; equal to the
	// prior call's Lines when the capture was unchanged, per invariant (d).
	Lines []string
}

// Process runs the dual-lane sanitiser and change-detection fast path over
// one capture's raw bytes, updating st in place.
//
// Fast path: hash raw and compare to the prior (rawHash, rawLen). If equal,
// nothing else runs — not even a cleaned-stream rebuild. Otherwise compute
// cleaned and its hash; if the cleaned hash is unchanged, adopt the new raw
// hash but leave line storage untouched and report ChangedCleaned=false.
// Only a cleaned-hash change triggers a full re-split (§4.2 invariant d).
func Process(st *State, raw []byte) Result {
	stripped := stripMouseFragments(raw)

	rawHash := xxhash.Sum64(stripped)
	if st.rawLen == len(stripped) && st.rawHash == rawHash {
		return Result{
			Raw:         stripped,
			RawHash:     rawHash,
			CleanedHash: st.cleanedHash,
			Lines:       st.lines,
		}
	}

	render := renderLane(stripped)
	cleaned := cleanedLane(stripped)
	cleanedHash := xxhash.Sum64(cleaned)

	result := Result{
		Raw:         stripped,
		Render:      render,
		Cleaned:     cleaned,
		RawHash:     rawHash,
		CleanedHash: cleanedHash,
		ChangedRaw:  true,
	}

	st.rawHash = rawHash
	st.rawLen = len(stripped)

	if cleanedHash == st.cleanedHash {
		// Raw bytes changed (e.g. a cursor blink that survived stripping)
		// but the content didn't: report unchanged and keep the existing
		// line storage (invariant d).
		result.Lines = st.lines
		return result
	}

	st.cleanedHash = cleanedHash
	result.ChangedCleaned = true
	lines := splitTrimmed(cleaned)
	if len(lines) > Capacity {
		lines = lines[len(lines)-Capacity:]
	}
	st.lines = lines
	result.Lines = lines
	return result
}

// stripMouseFragments removes mouse reports before anything else is hashed
// or derived, per §4.2.
func stripMouseFragments(b []byte) []byte {
	out := mouseFragment.ReplaceAll(b, nil)
	out = legacyMouseReport.ReplaceAll(out, nil)
	return out
}

const (
	esc = 0x1b
)

// scanEscape returns the length in bytes of the escape sequence starting at
// b[0] (which must be ESC), or 1 if b does not form a recognised sequence
// (treated as a lone control byte to drop).
func scanEscape(b []byte) (n int, isCSI bool, finalByte byte) {
	if len(b) < 2 {
		return len(b), false, 0
	}
	switch b[1] {
	case '[': // CSI: ESC [ params... final
		i := 2
		for i < len(b) && (b[i] >= 0x30 && b[i] <= 0x3f) {
			i++
		}
		for i < len(b) && (b[i] >= 0x20 && b[i] <= 0x2f) {
			i++
		}
		if i < len(b) {
			return i + 1, true, b[i]
		}
		return len(b), true, 0
	case ']': // OSC: ESC ] ... BEL or ESC \
		i := 2
		for i < len(b) {
			if b[i] == 0x07 {
				return i + 1, false, 0
			}
			if b[i] == esc && i+1 < len(b) && b[i+1] == '\\' {
				return i + 2, false, 0
			}
			i++
		}
		return len(b), false, 0
	default:
		// Two-byte escape (e.g. ESC =, ESC >).
		return 2, false, 0
	}
}

// renderLane preserves SGR colour/attribute escapes but strips all other
// C0/C1 control bytes and any remaining non-SGR escape (invariant a).
func renderLane(b []byte) []byte {
	out := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c == esc:
			n, isCSI, final := scanEscape(b[i:])
			if isCSI && final == 'm' {
				out = append(out, b[i:i+n]...)
			}
			i += n
		case c == '\n' || c == '\t':
			out = append(out, c)
			i++
		case c < 0x20 || c == 0x7f:
			i++ // drop other C0 control bytes
		default:
			out = append(out, c)
			i++
		}
	}
	return out
}

// cleanedLane additionally strips all escape sequences, yielding plain text
// for diffing, status pattern matching, and copying (invariant b: no ESC
// byte survives). Delegates to ansi.Strip for defence-in-depth against any
// sequence shape renderLane's hand-rolled scanner might miss.
func cleanedLane(b []byte) []byte {
	out := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c == esc:
			n, _, _ := scanEscape(b[i:])
			i += n
		case c == '\n' || c == '\t':
			out = append(out, c)
			i++
		case c < 0x20 || c == 0x7f:
			i++
		default:
			out = append(out, c)
			i++
		}
	}
	return []byte(ansi.Strip(string(out)))
}

// probeTailLines is how many trailing cleaned lines the status probes scan.
const probeTailLines = 20

// waitingSubstrings identify an approval prompt in the tail output. Status
// Waiting itself is authoritative from agent session files (§4.3); these
// only feed ProbeResult.Waiting for callers without session-file access.
var waitingSubstrings = []string{
	"[y/n]", "(y/n)", "allow edit", "allow bash", "approve", "confirm",
}

var thinkingSubstrings = []string{
	"<thinking>", "thinking...",
}

var doneSubstrings = []string{
	"task completed", "finished", "exited with code 0",
}

var errorSubstrings = []string{
	"error:", "failed", "panic:", "traceback",
}

// ProbeResult reports which canonical substrings were found in the cleaned
// stream's tail (§4.2 Output-pattern status probes). Thinking/Done/Error are
// authoritative from these probes; Active/Waiting are authoritative from the
// agent's own session files and are not decided here.
type ProbeResult struct {
	Waiting  bool
	Thinking bool
	Done     bool
	Error    bool
}

// ProbeStatus scans the last probeTailLines of lines for the canonical
// substrings that inform Thinking/Done/Error.
func ProbeStatus(lines []string) ProbeResult {
	start := 0
	if len(lines) > probeTailLines {
		start = len(lines) - probeTailLines
	}
	tail := strings.ToLower(strings.Join(lines[start:], "\n"))

	var r ProbeResult
	r.Waiting = containsAny(tail, waitingSubstrings)
	r.Thinking = containsAny(tail, thinkingSubstrings)
	r.Done = containsAny(tail, doneSubstrings)
	r.Error = containsAny(tail, errorSubstrings)
	return r
}

func containsAny(haystack string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(haystack, s) {
			return true
		}
	}
	return false
}

// splitTrimmed trims a single trailing newline, then splits into lines.
func splitTrimmed(b []byte) []string {
	s := string(b)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if s == "" {
		return nil
	}
	return regexp.MustCompile("\r?\n").Split(s, -1)
}
