package statusbar

import (
	"fmt"
	"strings"

	"quillpad/internal/textbuf"
	"quillpad/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting buffer and UI state.
func (StatusBar) View(s state.UIState, buf *textbuf.Buffer, undoDepth int) string {
	mode := "[EDIT]"
	if s.Mode == state.SELECT {
		mode = "[SELECT]"
	}
	line, col := buf.LineCol(buf.CaretPosition())
	pos := fmt.Sprintf("Ln %d, Col %d", line+1, col+1)
	font := "Plain"
	if buf.Font() == textbuf.Italic {
		font = "Italic"
	}
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}

	parts := []string{mode, pos, font, wrap, fmt.Sprintf("Undo: %d", undoDepth)}
	if selStart, selEnd := buf.SelectionRange(); selEnd > selStart {
		parts = append(parts, fmt.Sprintf("Sel: %d", selEnd-selStart))
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
