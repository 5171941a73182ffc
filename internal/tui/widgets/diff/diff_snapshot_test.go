package diff

import (
	"strings"
	"testing"

	"quillpad/internal/tui/state"
)

func TestNoChanges(t *testing.T) {
	v := NewDiffView()
	out := v.View(state.UIState{}, "same", "same")
	if !strings.Contains(out, "No unsaved changes") {
		t.Fatalf("expected no-changes message, got %q", out)
	}
}

func TestUnifiedSnapshot(t *testing.T) {
	v := NewDiffView()
	s := state.UIState{Layout: state.Unified}
	out := v.View(s, "a\nb", "a\nc")
	if !strings.Contains(out, "SAVED vs BUFFER (Unified)") {
		t.Fatalf("missing unified header")
	}
	if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
		t.Fatalf("expected +/- lines in unified output")
	}
}

func TestSideBySideSnapshot(t *testing.T) {
	v := NewDiffView()
	s := state.UIState{Layout: state.SideBySide, Width: 60}
	out := v.View(s, "left", "right")
	if !strings.HasPrefix(out, "SAVED │ BUFFER\n") {
		t.Fatalf("missing sbs header")
	}
	if !strings.Contains(out, " │ ") {
		t.Fatalf("missing separator")
	}
	if !strings.Contains(out, "~") {
		t.Fatalf("changed rows should carry the ~ marker")
	}
}
