package util

import "quillpad/internal/tui/state"

// ComputeTags calculates the set of status tags for the open document given
// the last-saved text, the current buffer text, the selection length in
// runes, the undo depth, and whether the buffer font is italic.
//
// The returned slice preserves a stable order:
//
//	Modified, Italic, Sel, Undo, Len
//
// Rules:
// - Modified compares current against saved exactly; styling does not count.
// - Sel and Undo only appear when non-zero (no noise for the common case).
// - Len is always included (counter).
func ComputeTags(saved, current string, selLen, undoDepth int, italic bool) []state.Tag {
	tags := make([]state.Tag, 0, 5)

	if current != saved {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	if italic {
		tags = append(tags, state.Tag{Kind: state.ITALIC})
	}
	if selLen > 0 {
		tags = append(tags, state.Tag{Kind: state.SEL_LEN, Value: selLen})
	}
	if undoDepth > 0 {
		tags = append(tags, state.Tag{Kind: state.UNDO_DEPTH, Value: undoDepth})
	}
	tags = append(tags, state.Tag{Kind: state.LEN, Value: runeLen(current)})

	return tags
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
