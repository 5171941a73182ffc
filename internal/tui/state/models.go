package state

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
	EDIT   EditorMode = iota // typing inserts at the caret
	SELECT                   // arrows extend the selection
)

// View selects the main content area.
type View int

const (
	EditorView View = iota
	DiffView        // unsaved changes vs the on-disk file
	MenuView        // action list
)

// DiffLayout controls how the diff is rendered.
type DiffLayout int

const (
	Unified DiffLayout = iota
	SideBySide
)

// UIState holds cross-widget UI state used by the editor, status bar, and
// diff views.
type UIState struct {
	// Mode & view
	Mode     EditorMode
	View     View
	Layout   DiffLayout
	Wrap     bool
	ShowHelp bool

	// Layout & scrolling
	Width   int
	Height  int
	ScrollV int
	MinCol  int

	// Ephemeral status-bar message
	Notice string
}
