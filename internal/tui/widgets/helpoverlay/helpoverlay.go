package helpoverlay

import (
	"fmt"
	"strings"

	"quillpad/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState) string {
	mode := "EDIT"
	if s.Mode == state.SELECT {
		mode = "SELECT"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"Editing", []string{"type to insert", "backspace/delete: remove", "enter: newline"}},
		{"Selection", []string{"shift+arrows: extend", "ctrl+a: select all", "esc: collapse"}},
		{"Commands", []string{"ctrl+x: cut", "ctrl+c: copy", "ctrl+v: paste", "ctrl+t: italic", "ctrl+z: undo"}},
		{"File", []string{"ctrl+s: save", "ctrl+d: unsaved changes", "ctrl+r: reload from disk"}},
		{"View", []string{"ctrl+w: wrap on/off", "u: unified/side-by-side (in diff)", "ctrl+g: this help", "ctrl+q: quit"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
