// Package command implements the editor's reversible operations and the
// invoker that records them for undo. Every UI trigger constructs a fresh
// command value, executes it once through the invoker, and may later undo it
// exactly once; commands are never reused across executions.
package command

import (
	"quillpad/internal/clipboard"
	"quillpad/internal/log"
	"quillpad/internal/textbuf"
)

// Command is a reversible editor action. Execute performs the action against
// the buffer/clipboard and captures whatever backup state is needed to
// reverse it; Undo reverses that single prior execution. Side effects only.
type Command interface {
	Execute()
	Undo()
}

// Cut removes the selection into the clipboard.
type Cut struct {
	buf  *textbuf.Buffer
	clip clipboard.Clipboard

	backup   string
	selStart int
	selEnd   int
}

func NewCut(buf *textbuf.Buffer, clip clipboard.Clipboard) *Cut {
	return &Cut{buf: buf, clip: clip}
}

func (c *Cut) Execute() {
	c.selStart, c.selEnd = c.buf.SelectionRange()
	c.backup = c.buf.SelectedText()
	if err := c.clip.WriteText(c.backup); err != nil {
		log.ErrorErr(log.CatClipboard, "cut: clipboard write failed", err)
	}
	c.buf.ReplaceRange(c.selStart, c.selEnd, "")
}

// Undo re-inserts the cut text at the original selection start and restores
// the selection over it. Cutting an empty selection undoes to a no-op insert.
func (c *Cut) Undo() {
	c.buf.Insert(c.backup, c.selStart)
	c.buf.Select(c.selStart, c.selEnd)
}

// Copy writes the selection to the clipboard. It never mutates the buffer.
type Copy struct {
	buf  *textbuf.Buffer
	clip clipboard.Clipboard
}

func NewCopy(buf *textbuf.Buffer, clip clipboard.Clipboard) *Copy {
	return &Copy{buf: buf, clip: clip}
}

func (c *Copy) Execute() {
	selected := c.buf.SelectedText()
	if selected == "" {
		return
	}
	if err := c.clip.WriteText(selected); err != nil {
		log.ErrorErr(log.CatClipboard, "copy: clipboard write failed", err)
	}
}

// Undo is a no-op by contract: copying is not a buffer mutation.
func (*Copy) Undo() {}

// Paste inserts the clipboard text at the caret.
type Paste struct {
	buf  *textbuf.Buffer
	clip clipboard.Clipboard

	backup string
	caret  int
	pasted bool
}

func NewPaste(buf *textbuf.Buffer, clip clipboard.Clipboard) *Paste {
	return &Paste{buf: buf, clip: clip}
}

// Execute reads the clipboard and inserts its contents at the caret. A
// clipboard read failure is logged and the command completes with no
// mutation; it does not propagate.
func (p *Paste) Execute() {
	text, err := p.clip.ReadText()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "paste: clipboard read failed", err)
		return
	}
	p.backup = text
	p.caret = p.buf.CaretPosition()
	p.buf.Insert(p.backup, p.caret)
	p.pasted = true
}

func (p *Paste) Undo() {
	if !p.pasted {
		return
	}
	p.buf.ReplaceRange(p.caret, p.caret+len([]rune(p.backup)), "")
}

// ToggleItalic switches the buffer's display font to italic. The style is
// buffer-wide: the buffer carries a single font flag, not per-range styling.
type ToggleItalic struct {
	buf  *textbuf.Buffer
	warn func(string)

	prev    textbuf.FontStyle
	applied bool
}

// NewToggleItalic builds the command. warn surfaces the no-selection warning
// to the user (a status notice in the TUI); nil disables the warning.
func NewToggleItalic(buf *textbuf.Buffer, warn func(string)) *ToggleItalic {
	return &ToggleItalic{buf: buf, warn: warn}
}

func (t *ToggleItalic) Execute() {
	start, end := t.buf.SelectionRange()
	if start == end {
		if t.warn != nil {
			t.warn("No text selected")
		}
		return
	}
	t.prev = t.buf.Font()
	t.buf.SetFont(textbuf.Italic)
	t.applied = true
}

// Undo restores the font captured before Execute rather than resetting to
// plain, so a full undo chain returns the buffer to its original state.
func (t *ToggleItalic) Undo() {
	if !t.applied {
		return
	}
	t.buf.SetFont(t.prev)
}
