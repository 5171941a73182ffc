package session

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingGivesEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))
	if len(st.Recent) != 0 || st.Caret("/x") != 0 {
		t.Fatalf("expected empty state, got %+v", st)
	}
}

func TestTouchOrdersAndDedupes(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))
	st.Touch("/a", 1)
	st.Touch("/b", 2)
	st.Touch("/a", 3)
	if len(st.Recent) != 2 || st.Recent[0] != "/a" || st.Recent[1] != "/b" {
		t.Fatalf("recent = %v", st.Recent)
	}
	if st.Caret("/a") != 3 {
		t.Fatalf("caret = %d", st.Caret("/a"))
	}
}

func TestTouchCapsRecent(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))
	for i := 0; i < maxRecent+5; i++ {
		st.Touch(filepath.Join("/f", string(rune('a'+i))), i)
	}
	if len(st.Recent) != maxRecent {
		t.Fatalf("recent length = %d", len(st.Recent))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "state.json")
	st := Load(path)
	st.Touch("/notes.txt", 42)
	if err := Save(path, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := Load(path)
	if got.Caret("/notes.txt") != 42 || len(got.Recent) != 1 {
		t.Fatalf("round trip lost state: %+v", got)
	}
}
