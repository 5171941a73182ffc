package state

import "testing"

func TestToggleWrap(t *testing.T) {
	s := UIState{Wrap: false}
	s = ToggleWrap(s)
	if !s.Wrap || s.Notice == "" {
		t.Fatalf("expected Wrap true with notice")
	}
}

func TestToggleModeSetsNotice(t *testing.T) {
	s := UIState{Mode: EDIT}
	s = ToggleMode(s)
	if s.Mode != SELECT || s.Notice == "" {
		t.Fatalf("expected SELECT mode and notice")
	}
	s = ToggleMode(s)
	if s.Mode != EDIT || s.Notice == "" {
		t.Fatalf("expected EDIT mode and notice")
	}
}

func TestShowViewResetsScroll(t *testing.T) {
	s := UIState{View: EditorView, ScrollV: 7}
	s = ShowView(s, DiffView)
	if s.View != DiffView || s.ScrollV != 0 {
		t.Fatalf("expected DiffView with scroll reset, got %+v", s)
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{Layout: SideBySide, MinCol: 20}
	s = Resize(s, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
	if s.Layout != Unified {
		t.Fatalf("expected Unified after resize fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
}

func TestScrolls(t *testing.T) {
	s := UIState{}
	s = ScrollDown(s, true)
	if s.ScrollV == 0 {
		t.Fatalf("expected scroll to increase")
	}
	s = ScrollUp(s, true)
	if s.ScrollV != 0 {
		t.Fatalf("expected scroll to return to 0")
	}
	s = ScrollUp(s, false)
	if s.ScrollV != 0 {
		t.Fatalf("scroll must clamp at 0")
	}
}

func TestToggleHelp(t *testing.T) {
	s := UIState{}
	s = ToggleHelp(s)
	if !s.ShowHelp {
		t.Fatalf("expected ShowHelp true")
	}
}
