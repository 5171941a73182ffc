package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quillpad/internal/textbuf"
	"quillpad/internal/tui/state"
)

var (
	selStyle   = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "153", Dark: "24"})
	caretStyle = lipgloss.NewStyle().Reverse(true)
)

// span classes while walking a line; caret wins over selection.
const (
	classNormal = iota
	classSelected
	classCaret
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the window of buffer lines starting at s.ScrollV, at most
// maxRows lines. The caret is drawn as a reversed cell, the selection with a
// background highlight, and the whole text in italic when the buffer font is
// italic. Without wrap, lines are clipped cell-accurately to s.Width.
func (Editor) View(s state.UIState, buf *textbuf.Buffer, tabWidth, maxRows int) string {
	lines := buf.Lines()
	selStart, selEnd := buf.SelectionRange()
	caret := buf.CaretPosition()
	italic := buf.Font() == textbuf.Italic

	first := s.ScrollV
	if first > len(lines)-1 {
		first = len(lines) - 1
	}
	if first < 0 {
		first = 0
	}
	last := first + maxRows
	if last > len(lines) {
		last = len(lines)
	}

	// Rune index of the first visible line's start.
	idx := 0
	for i := 0; i < first; i++ {
		idx += len([]rune(lines[i])) + 1 // +1 for the newline
	}

	var b strings.Builder
	for i := first; i < last; i++ {
		b.WriteString(renderLine(s, []rune(lines[i]), idx, selStart, selEnd, caret, italic, tabWidth))
		b.WriteString("\n")
		idx += len([]rune(lines[i])) + 1
	}
	return b.String()
}

func renderLine(s state.UIState, line []rune, lineStart, selStart, selEnd, caret int, italic bool, tabWidth int) string {
	clip := !s.Wrap && s.Width > 0

	var b strings.Builder
	curClass := -1
	var curText strings.Builder
	flush := func() {
		if curText.Len() == 0 {
			return
		}
		b.WriteString(styleFor(curClass, italic).Render(curText.String()))
		curText.Reset()
	}

	cells := 0
	for i, r := range line {
		pos := lineStart + i
		class := classNormal
		if pos >= selStart && pos < selEnd {
			class = classSelected
		}
		if pos == caret {
			class = classCaret
		}

		text := string(r)
		w := runewidth.RuneWidth(r)
		if r == '\t' {
			text = strings.Repeat(" ", tabWidth)
			w = tabWidth
		}
		if clip && cells+w > s.Width {
			break
		}
		cells += w

		if class != curClass {
			flush()
			curClass = class
		}
		curText.WriteString(text)
	}
	flush()

	// Caret sitting on the line's newline (or at EOF) renders as a reversed
	// trailing cell.
	if caret == lineStart+len(line) && (!clip || cells < s.Width) {
		b.WriteString(caretStyle.Render(" "))
	}
	return b.String()
}

func styleFor(class int, italic bool) lipgloss.Style {
	var st lipgloss.Style
	switch class {
	case classSelected:
		st = selStyle
	case classCaret:
		st = caretStyle
	default:
		st = lipgloss.NewStyle()
	}
	if italic {
		st = st.Italic(true)
	}
	return st
}
