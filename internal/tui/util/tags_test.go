package util

import (
	"testing"

	"quillpad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestModifiedOnlyWhenTextDiffers(t *testing.T) {
	tags := ComputeTags("same", "same", 0, 0, false)
	if _, ok := findKind(tags, state.MODIFIED); ok {
		t.Fatalf("did not expect MODIFIED for identical text")
	}
	tags = ComputeTags("same", "changed", 0, 0, false)
	if _, ok := findKind(tags, state.MODIFIED); !ok {
		t.Fatalf("expected MODIFIED tag present")
	}
}

func TestZeroCountersOmitted(t *testing.T) {
	tags := ComputeTags("", "", 0, 0, false)
	if _, ok := findKind(tags, state.SEL_LEN); ok {
		t.Fatalf("did not expect SEL tag for empty selection")
	}
	if _, ok := findKind(tags, state.UNDO_DEPTH); ok {
		t.Fatalf("did not expect UNDO tag for empty history")
	}
	if idx, ok := findKind(tags, state.LEN); !ok || tags[idx].Value != 0 {
		t.Fatalf("expected LEN counter always present")
	}
}

func TestLenCountsRunes(t *testing.T) {
	tags := ComputeTags("", "héllo", 0, 0, false)
	if idx, ok := findKind(tags, state.LEN); !ok || tags[idx].Value != 5 {
		t.Fatalf("expected rune length 5")
	}
}

func TestStableOrder(t *testing.T) {
	tags := ComputeTags("a", "héllo", 3, 2, true)
	order := []state.TagKind{state.MODIFIED, state.ITALIC, state.SEL_LEN, state.UNDO_DEPTH, state.LEN}
	pos := map[state.TagKind]int{}
	for i, tg := range tags {
		pos[tg.Kind] = i
	}
	prev := -1
	for _, k := range order {
		if idx, ok := pos[k]; ok {
			if idx < prev {
				t.Fatalf("tag %v appears before previous; order unstable", k)
			}
			prev = idx
		}
	}
}
