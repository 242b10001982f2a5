package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const sectionWidth = 61 // inner width between │ and line end

// Section renders a box-drawing framed output section.
type Section struct {
	w     io.Writer
	name  string
	color bool
}

// NewSection creates a section and writes its header.
// If elapsed is non-zero, it appears right-aligned in the header.
func NewSection(w io.Writer, name string, elapsed time.Duration, color bool) *Section {
	s := &Section{w: w, name: name, color: color}
	s.writeHeader(elapsed)
	return s
}

// Row writes a content line inside the section frame.
func (s *Section) Row(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.w, "    │ %s\n", line)
}

// Separator writes a mid-section divider.
func (s *Section) Separator() {
	fmt.Fprintf(s.w, "    ├%s\n", strings.Repeat("─", sectionWidth))
}

// Close writes the section footer.
func (s *Section) Close() {
	fmt.Fprintf(s.w, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// writeHeader renders: ── Name ──────────────────── elapsed ──
func (s *Section) writeHeader(elapsed time.Duration) {
	label := fmt.Sprintf("── %s ", s.name)

	var suffix string
	if elapsed > 0 {
		suffix = fmt.Sprintf(" %s ──", formatElapsed(elapsed))
	} else {
		suffix = "──"
	}

	fill := sectionWidth + 4 - runewidth.StringWidth(label) - runewidth.StringWidth(suffix)
	if fill < 1 {
		fill = 1
	}

	header := label + strings.Repeat("─", fill) + suffix
	fmt.Fprintf(s.w, "\n    %s\n", paint(headerStyle, header, s.color))
}

// StatusIcon returns a status icon, colored when color is set.
func StatusIcon(status string, color bool) string {
	switch status {
	case "success":
		return paint(successStyle, "✓", color)
	case "failed":
		return paint(failedStyle, "✗", color)
	default:
		return paint(skippedStyle, "⊘", color)
	}
}

// KV is one labelled value in a context block.
type KV struct {
	Key   string
	Value string
}

// ContextBlock prints kv two pairs per line above a section. Keys and values
// are padded to the widest entry by display width, so labels holding wide
// runes stay aligned. Values must not carry color codes.
func ContextBlock(w io.Writer, kv []KV) {
	if len(kv) == 0 {
		return
	}
	keyW, valW := 0, 0
	for _, p := range kv {
		keyW = max(keyW, runewidth.StringWidth(p.Key))
		valW = max(valW, runewidth.StringWidth(p.Value))
	}
	keyW += 2
	valW += 3

	fmt.Fprintln(w)
	for i := 0; i < len(kv); i += 2 {
		line := runewidth.FillRight(kv[i].Key, keyW) + kv[i].Value
		if i+1 < len(kv) {
			line = runewidth.FillRight(line, keyW+valW) +
				runewidth.FillRight(kv[i+1].Key, keyW) + kv[i+1].Value
		}
		fmt.Fprintf(w, "    %s\n", line)
	}
}

// formatElapsed formats a duration for display in section headers.
func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// SummaryRow writes a summary line with status icon.
func SummaryRow(w io.Writer, name, status, detail string, color bool) {
	icon := StatusIcon(status, color)
	fmt.Fprintf(w, "    │ %s%s  %s\n", runewidth.FillRight(name, 14), icon, detail)
}

// SummaryTotal writes the final total line.
func SummaryTotal(w io.Writer, elapsed time.Duration, status string, color bool) {
	icon := StatusIcon(status, color)
	fmt.Fprintf(w, "    │ %-14s%40s   %s\n", "total", formatElapsed(elapsed), icon)
}
