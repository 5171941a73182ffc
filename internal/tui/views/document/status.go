package document

import (
	"quillpad/internal/tui/state"
	chips "quillpad/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for the document
// status line.
func RenderTags(tags []state.Tag, noColor bool) string {
	return chips.View(tags, noColor)
}
