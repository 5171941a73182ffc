package tui

import "github.com/charmbracelet/bubbles/key"

// keymap defines the command and shell key bindings. Editing keys (runes,
// arrows, backspace) are handled directly in Update.
type keymap struct {
	Cut    key.Binding
	Copy   key.Binding
	Paste  key.Binding
	Italic key.Binding
	Undo   key.Binding

	SelectAll key.Binding
	Save      key.Binding
	Reload    key.Binding
	Diff      key.Binding
	Wrap      key.Binding
	Help      key.Binding
	Menu      key.Binding
	Quit      key.Binding
	Back      key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Cut:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Italic: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "italic")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reload:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Diff:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "changes")),
		Wrap:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "wrap")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		Menu:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "menu")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
