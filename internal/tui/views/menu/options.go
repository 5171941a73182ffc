package menu

// Action identifies a menu entry.
type Action int

const (
	Save Action = iota
	Reload
	ShowDiff
	ToggleWrap
	Quit
)

// Options returns the action-menu entries in display order.
func Options() []Action {
	return []Action{Save, Reload, ShowDiff, ToggleWrap, Quit}
}

// Label returns the display name for an action.
func Label(a Action) string {
	switch a {
	case Save:
		return "Save"
	case Reload:
		return "Reload from disk"
	case ShowDiff:
		return "Show unsaved changes"
	case ToggleWrap:
		return "Toggle wrap"
	case Quit:
		return "Quit"
	default:
		return "?"
	}
}
