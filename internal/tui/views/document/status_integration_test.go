package document

import (
	"strings"
	"testing"

	utiltags "quillpad/internal/tui/util"
)

func TestRenderTagsIntegration(t *testing.T) {
	tags := utiltags.ComputeTags("old", "new text", 4, 2, true)
	out := RenderTags(tags, true) // noColor

	wants := []string{"[Modified]", "[Italic]", "[Sel 4]", "[Undo 2]", "[Len "}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}
