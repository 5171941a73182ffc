package command

import (
	"testing"

	"quillpad/internal/clipboard"
	"quillpad/internal/textbuf"
)

func TestUndoOnEmptyHistory(t *testing.T) {
	inv := NewInvoker()
	inv.UndoLast() // must not panic
	if inv.Depth() != 0 {
		t.Fatalf("depth = %d", inv.Depth())
	}
}

func TestStoreAndExecutePushesNoOps(t *testing.T) {
	buf := textbuf.New("Hello")
	clip := clipboard.NewMemory()
	inv := NewInvoker()

	// Copy with no selection does nothing observable but is still recorded.
	inv.StoreAndExecute(NewCopy(buf, clip))
	if inv.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", inv.Depth())
	}
	inv.UndoLast()
	if buf.String() != "Hello" || inv.Depth() != 0 {
		t.Fatalf("undo of no-op copy misbehaved: %q depth=%d", buf.String(), inv.Depth())
	}
}

func TestLIFOOrder(t *testing.T) {
	buf := textbuf.New("")
	clip := clipboard.NewMemory()
	inv := NewInvoker()

	_ = clip.WriteText("A")
	inv.StoreAndExecute(NewPaste(buf, clip))
	_ = clip.WriteText("B")
	inv.StoreAndExecute(NewPaste(buf, clip))
	if buf.String() != "AB" {
		t.Fatalf("after pastes: %q", buf.String())
	}

	inv.UndoLast()
	if buf.String() != "A" {
		t.Fatalf("undo must pop most recent first: %q", buf.String())
	}
	inv.UndoLast()
	if buf.String() != "" {
		t.Fatalf("after second undo: %q", buf.String())
	}
}

func TestNExecutesNUndosRestoreBuffer(t *testing.T) {
	buf := textbuf.New("Hello World")
	clip := clipboard.NewMemory()
	inv := NewInvoker()

	buf.Select(0, 5)
	inv.StoreAndExecute(NewToggleItalic(buf, nil))
	buf.Select(6, 11)
	inv.StoreAndExecute(NewCut(buf, clip))
	buf.SetCaret(0)
	inv.StoreAndExecute(NewPaste(buf, clip))
	inv.StoreAndExecute(NewCopy(buf, clip))

	for inv.Depth() > 0 {
		inv.UndoLast()
	}
	if buf.String() != "Hello World" {
		t.Fatalf("buffer not restored: %q", buf.String())
	}
	if buf.Font() != textbuf.Plain {
		t.Fatalf("font not restored: %v", buf.Font())
	}
}

func TestUndoneCommandIsDiscarded(t *testing.T) {
	buf := textbuf.New("")
	clip := clipboard.NewMemory()
	inv := NewInvoker()

	_ = clip.WriteText("x")
	inv.StoreAndExecute(NewPaste(buf, clip))
	inv.UndoLast()
	inv.UndoLast() // no redo: second undo finds empty history
	if buf.String() != "" || inv.Depth() != 0 {
		t.Fatalf("got %q depth=%d", buf.String(), inv.Depth())
	}
}
