package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"quillpad/internal/tui/state"
)

var (
	delLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint    = lipgloss.NewStyle().Faint(true)
	hdrStyle = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the unsaved changes: saved is the on-disk content, current the
// buffer. Unified prefixes lines with +/- markers and highlights changed
// characters; SideBySide aligns two columns with a separator.
func (DiffView) View(s state.UIState, saved, current string) string {
	if saved == current {
		return "No unsaved changes\n"
	}
	if s.Layout == state.SideBySide {
		return sideBySide(s, saved, current)
	}
	return unified(saved, current)
}

func unified(saved, current string) string {
	var b strings.Builder
	b.WriteString(hdrStyle.Render("SAVED vs BUFFER (Unified)") + "\n")
	sLines := strings.Split(saved, "\n")
	cLines := strings.Split(current, "\n")
	if len(sLines) == len(cLines) {
		// Same line count: per-line char highlights.
		for i := range sLines {
			sl, cl := sLines[i], cLines[i]
			if sl == cl {
				if strings.TrimSpace(sl) == "" {
					continue
				}
				b.WriteString("  " + faint.Render(sl) + "\n")
				continue
			}
			writeCharDiff(&b, sl, cl)
		}
		return b.String()
	}
	// Line counts differ: raw blocks.
	for _, l := range sLines {
		b.WriteString(delLine.Render("- ") + l + "\n")
	}
	b.WriteString("\n")
	for _, l := range cLines {
		b.WriteString(addLine.Render("+ ") + l + "\n")
	}
	return b.String()
}

func writeCharDiff(b *strings.Builder, before, after string) {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)

	b.WriteString(delLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			b.WriteString(delChar.Render(df.Text))
		case dmp.DiffEqual:
			b.WriteString(delLine.Render(df.Text))
		}
	}
	b.WriteString("\n")

	b.WriteString(addLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			b.WriteString(addChar.Render(df.Text))
		case dmp.DiffEqual:
			b.WriteString(addLine.Render(df.Text))
		}
	}
	b.WriteString("\n")
}

func sideBySide(s state.UIState, saved, current string) string {
	const sep = " │ "
	var b strings.Builder
	b.WriteString("SAVED │ BUFFER\n")
	left := strings.Split(saved, "\n")
	right := strings.Split(current, "\n")
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - len([]rune(sep))) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		marker := " "
		if l != r {
			marker = "~"
		}
		fmt.Fprintf(&b, "%s%s%s%s\n", marker, pad(clip(l, colWidth), colWidth), sep, clip(r, colWidth))
	}
	return b.String()
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func pad(s string, width int) string {
	if w := len([]rune(s)); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
