package textbuf

import "testing"

func TestInsertMovesCaret(t *testing.T) {
	b := New("")
	b.Insert("Hi", 0)
	if b.String() != "Hi" || b.CaretPosition() != 2 {
		t.Fatalf("got %q caret=%d", b.String(), b.CaretPosition())
	}
}

func TestInsertClampsIndex(t *testing.T) {
	b := New("ab")
	b.Insert("X", 99)
	if b.String() != "abX" {
		t.Fatalf("expected clamped append, got %q", b.String())
	}
	b.Insert("Y", -5)
	if b.String() != "YabX" {
		t.Fatalf("expected clamped prepend, got %q", b.String())
	}
}

func TestSelectNormalizes(t *testing.T) {
	b := New("Hello World")
	b.Select(11, 6)
	s, e := b.SelectionRange()
	if s != 6 || e != 11 {
		t.Fatalf("expected normalized [6,11), got [%d,%d)", s, e)
	}
	if b.SelectedText() != "World" {
		t.Fatalf("got %q", b.SelectedText())
	}
}

func TestReplaceRangeDelete(t *testing.T) {
	b := New("Hello World")
	b.Select(6, 11)
	b.ReplaceRange(6, 11, "")
	if b.String() != "Hello " {
		t.Fatalf("got %q", b.String())
	}
	if b.HasSelection() {
		t.Fatalf("selection should be cleared after delete")
	}
	if b.CaretPosition() != 6 {
		t.Fatalf("caret should sit at deletion start, got %d", b.CaretPosition())
	}
}

func TestInsertShiftsSelection(t *testing.T) {
	b := New("Hello World")
	b.Select(6, 11)
	b.Insert(">> ", 0)
	s, e := b.SelectionRange()
	if s != 9 || e != 14 {
		t.Fatalf("selection should shift with insert, got [%d,%d)", s, e)
	}
}

func TestSelectedTextEmptyWithoutSelection(t *testing.T) {
	b := New("abc")
	if b.SelectedText() != "" {
		t.Fatalf("expected empty selected text")
	}
}

func TestFontToggle(t *testing.T) {
	b := New("x")
	if b.Font() != Plain {
		t.Fatalf("new buffers are plain")
	}
	b.SetFont(Italic)
	if b.Font() != Italic {
		t.Fatalf("expected italic")
	}
}

func TestLineCol(t *testing.T) {
	b := New("ab\ncd")
	line, col := b.LineCol(4)
	if line != 1 || col != 1 {
		t.Fatalf("got line=%d col=%d", line, col)
	}
}

func TestUnicodeRuneIndices(t *testing.T) {
	b := New("héllo")
	b.Select(1, 2)
	if b.SelectedText() != "é" {
		t.Fatalf("rune indexing broken: %q", b.SelectedText())
	}
	b.ReplaceRange(1, 2, "e")
	if b.String() != "hello" {
		t.Fatalf("got %q", b.String())
	}
}
