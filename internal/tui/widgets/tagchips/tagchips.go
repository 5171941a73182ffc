package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quillpad/internal/tui/state"
	"quillpad/internal/tui/util"
)

// View renders document status tags in a stable order using colored chips
// when possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODIFIED:
		return "Modified"
	case state.ITALIC:
		return "Italic"
	case state.SEL_LEN:
		return fmt.Sprintf("Sel %d", t.Value)
	case state.UNDO_DEPTH:
		return fmt.Sprintf("Undo %d", t.Value)
	case state.LEN:
		return fmt.Sprintf("Len %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	pal := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch t.Kind {
	case state.MODIFIED:
		return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
	case state.ITALIC:
		return base.Background(pal.Primary).Foreground(lipgloss.Color("#FFFFFF")).Italic(true)
	case state.SEL_LEN:
		return base.Background(pal.Success).Foreground(lipgloss.Color("#FFFFFF"))
	case state.UNDO_DEPTH:
		return base.Background(pal.Muted).Foreground(lipgloss.Color("#FFFFFF"))
	case state.LEN:
		return base.Background(pal.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
	default:
		return base
	}
}
