package state

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	if s.Wrap {
		s.Notice = "Wrap: on"
	} else {
		s.Notice = "Wrap: off"
	}
	return s
}

// ToggleMode switches between EDIT and SELECT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
	if s.Mode == EDIT {
		s.Mode = SELECT
		s.Notice = "[SELECT]"
	} else {
		s.Mode = EDIT
		s.Notice = "[EDIT]"
	}
	return s
}

// EditMode forces EDIT mode (used when a command collapses the selection).
func EditMode(s UIState) UIState {
	s.Mode = EDIT
	return s
}

// ShowView switches the main content area and resets vertical scroll when
// leaving the editor.
func ShowView(s UIState, v View) UIState {
	if s.View != v && v != EditorView {
		s.ScrollV = 0
	}
	s.View = v
	return s
}

// ToggleDiffLayout switches between Unified and SideBySide diff layouts.
func ToggleDiffLayout(s UIState) UIState {
	if s.Layout == Unified {
		s.Layout = SideBySide
	} else {
		s.Layout = Unified
	}
	return s
}

// Resize updates dimensions and falls back to a unified diff when the window
// is too narrow for two columns. Threshold heuristic: 2*MinCol plus 3 chars
// for the separator.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	threshold := 2*s.MinCol + 3
	if s.Layout == SideBySide && s.Width < threshold {
		s.Layout = Unified
		s.Notice = "Narrow width: using unified diff"
	}
	return s
}

// ScrollUp moves the viewport up; fast scrolls by a page-ish step.
func ScrollUp(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	if s.ScrollV >= delta {
		s.ScrollV -= delta
	} else {
		s.ScrollV = 0
	}
	return s
}

// ScrollDown moves the viewport down; clamping against content length is the
// widget's job since only it knows the line count.
func ScrollDown(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	s.ScrollV += delta
	return s
}

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Notify sets the ephemeral status-bar message.
func Notify(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// ClearNotice drops the ephemeral message.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}
