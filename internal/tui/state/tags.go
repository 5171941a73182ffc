package state

// TagKind enumerates the document status chips shown above the status bar.
type TagKind int

const (
	// Stable ordering for display: Modified, Italic, Sel, Undo, Len
	MODIFIED TagKind = iota
	ITALIC
	SEL_LEN
	UNDO_DEPTH
	LEN
)

// Tag represents a single status chip. Value is used for numeric counters
// (selection length, undo depth, buffer length). Non-numeric tags use 0.
type Tag struct {
	Kind  TagKind
	Value int
}
