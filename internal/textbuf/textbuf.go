// Package textbuf holds the shared editable text buffer that commands and the
// TUI operate on: a rune sequence plus a selection range, a caret, and a
// buffer-wide font style.
package textbuf

import "strings"

// FontStyle is the buffer-wide display style. The buffer carries exactly one
// style flag; there is no per-range styling.
type FontStyle int

const (
	Plain FontStyle = iota
	Italic
)

func (f FontStyle) String() string {
	if f == Italic {
		return "italic"
	}
	return "plain"
}

// Buffer is a mutable text buffer. All indices are rune indices. Selection is
// kept normalized (start <= end) and clamped to the text; start == end means
// no selection.
type Buffer struct {
	runes    []rune
	selStart int
	selEnd   int
	caret    int
	font     FontStyle
}

// New returns a buffer initialized with text, caret at 0, no selection.
func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

func (b *Buffer) String() string { return string(b.runes) }

// Len returns the buffer length in runes.
func (b *Buffer) Len() int { return len(b.runes) }

func (b *Buffer) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.runes) {
		return len(b.runes)
	}
	return i
}

// CaretPosition returns the caret as a rune index.
func (b *Buffer) CaretPosition() int { return b.caret }

// SetCaret moves the caret, clamping to the buffer bounds.
func (b *Buffer) SetCaret(pos int) { b.caret = b.clamp(pos) }

// Select sets the selection to [start, end), normalizing and clamping. The
// caret moves to the selection end.
func (b *Buffer) Select(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		start, end = end, start
	}
	b.selStart, b.selEnd = start, end
	b.caret = end
}

// ClearSelection collapses the selection, leaving the caret in place.
func (b *Buffer) ClearSelection() { b.selStart, b.selEnd = 0, 0 }

// SelectionRange returns the selection bounds [start, end).
func (b *Buffer) SelectionRange() (start, end int) { return b.selStart, b.selEnd }

// HasSelection reports whether a non-empty selection exists.
func (b *Buffer) HasSelection() bool { return b.selEnd > b.selStart }

// SelectedText returns the selected text, "" when there is no selection.
func (b *Buffer) SelectedText() string {
	if !b.HasSelection() {
		return ""
	}
	return string(b.runes[b.selStart:b.selEnd])
}

// Insert inserts text at the rune index at (clamped). The caret lands after
// the inserted text; selection bounds at or past the insertion point shift.
func (b *Buffer) Insert(text string, at int) {
	if text == "" {
		b.caret = b.clamp(at)
		return
	}
	at = b.clamp(at)
	ins := []rune(text)
	b.runes = append(b.runes[:at], append(append([]rune(nil), ins...), b.runes[at:]...)...)
	n := len(ins)
	if b.selStart >= at {
		b.selStart += n
	}
	if b.selEnd >= at {
		b.selEnd += n
	}
	b.caret = at + n
}

// ReplaceRange replaces [start, end) with text. Deleting (text == "") clears
// any selection overlapping the range and moves the caret to start; otherwise
// the caret lands after the replacement.
func (b *Buffer) ReplaceRange(start, end int, text string) {
	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		start, end = end, start
	}
	ins := []rune(text)
	b.runes = append(b.runes[:start], append(append([]rune(nil), ins...), b.runes[end:]...)...)
	b.selStart, b.selEnd = 0, 0
	b.caret = start + len(ins)
}

// Font returns the buffer-wide display style.
func (b *Buffer) Font() FontStyle { return b.font }

// SetFont sets the buffer-wide display style.
func (b *Buffer) SetFont(f FontStyle) { b.font = f }

// Lines splits the buffer content into display lines.
func (b *Buffer) Lines() []string { return strings.Split(string(b.runes), "\n") }

// LineCol converts a rune index into a 0-based line/column pair.
func (b *Buffer) LineCol(pos int) (line, col int) {
	pos = b.clamp(pos)
	for i := 0; i < pos; i++ {
		if b.runes[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
