// Package tui is the editor shell: it owns the text buffer, wires key
// triggers to commands through the invoker, and renders the widgets.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quillpad/internal/clipboard"
	"quillpad/internal/command"
	"quillpad/internal/textbuf"
	"quillpad/internal/tui/state"
	"quillpad/internal/tui/util"
	"quillpad/internal/tui/views/document"
	"quillpad/internal/tui/views/menu"
	"quillpad/internal/tui/widgets/diff"
	"quillpad/internal/tui/widgets/editor"
	"quillpad/internal/tui/widgets/helpoverlay"
	"quillpad/internal/tui/widgets/statusbar"
)

// Options configure a Run.
type Options struct {
	Path     string // display name; empty for a scratch buffer
	Initial  string // buffer content at open
	Caret    int    // restored caret position
	Wrap     bool
	TabWidth int

	Clip clipboard.Clipboard

	// SaveFunc persists the buffer; nil disables saving.
	SaveFunc func(text string) error
	// LoadFunc re-reads the file for ctrl+r; nil disables reload.
	LoadFunc func() (string, error)
	// Changes delivers external-modification notifications; may be nil.
	Changes <-chan struct{}
}

// Result carries what the shell needs after the TUI exits.
type Result struct {
	Caret int
	Saved bool // the buffer was saved at least once
	Dirty bool // unsaved changes remained at quit
}

// Run opens the editor and blocks until the user quits.
func Run(opts Options) (Result, error) {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	final := out.(model)
	return Result{
		Caret: final.buf.CaretPosition(),
		Saved: final.savedOnce,
		Dirty: final.buf.String() != final.saved,
	}, nil
}

// ===== Model =====

type fileChangedMsg struct{}

func waitChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

type model struct {
	opts Options
	keys keymap

	buf *textbuf.Buffer
	inv *command.Invoker

	ui        state.UIState
	saved     string // content as of open / last save
	savedOnce bool

	selAnchor int // selection anchor while in SELECT mode
	selCursor int // moving end of the selection

	menuCursor int
	vp         viewport.Model
	vpReady    bool

	ed   editor.Editor
	bar  statusbar.StatusBar
	help helpoverlay.HelpOverlay
	dv   diff.DiffView
}

func newModel(opts Options) model {
	buf := textbuf.New(opts.Initial)
	buf.SetCaret(opts.Caret)
	return model{
		opts:  opts,
		keys:  defaultKeymap(),
		buf:   buf,
		inv:   command.NewInvoker(),
		saved: opts.Initial,
		ui: state.UIState{
			Mode:   state.EDIT,
			View:   state.EditorView,
			Wrap:   opts.Wrap,
			MinCol: 20,
		},
		ed:   editor.NewEditor(),
		bar:  statusbar.NewStatusBar(),
		help: helpoverlay.NewHelpOverlay(),
		dv:   diff.NewDiffView(),
	}
}

func (m model) Init() tea.Cmd { return waitChange(m.opts.Changes) }

// Update handles all editor interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		if !m.vpReady {
			m.vp = viewport.New(msg.Width, maxInt(msg.Height-3, 1))
			m.vpReady = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = maxInt(msg.Height-3, 1)
		}
		return m, nil

	case fileChangedMsg:
		m.ui = state.Notify(m.ui, "File changed on disk (ctrl+r to reload)")
		return m, waitChange(m.opts.Changes)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	}
	if m.ui.ShowHelp {
		if key.Matches(msg, m.keys.Back) {
			m.ui = state.ToggleHelp(m.ui)
		}
		return m, nil
	}

	switch m.ui.View {
	case state.EditorView:
		return m.handleEditorKey(msg)
	case state.DiffView:
		return m.handleDiffKey(msg)
	case state.MenuView:
		return m.handleMenuKey(msg)
	}
	return m, nil
}

func (m model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cut):
		m.inv.StoreAndExecute(command.NewCut(m.buf, m.opts.Clip))
		m.ui = state.EditMode(state.Notify(m.ui, "Cut"))
		return m.followCaret(), nil

	case key.Matches(msg, m.keys.Copy):
		m.inv.StoreAndExecute(command.NewCopy(m.buf, m.opts.Clip))
		m.ui = state.Notify(m.ui, "Copied")
		return m, nil

	case key.Matches(msg, m.keys.Paste):
		before := m.buf.String()
		m.inv.StoreAndExecute(command.NewPaste(m.buf, m.opts.Clip))
		if m.buf.String() == before {
			m.ui = state.Notify(m.ui, "Nothing to paste")
		} else {
			m.ui = state.Notify(m.ui, "Pasted")
		}
		return m.followCaret(), nil

	case key.Matches(msg, m.keys.Italic):
		var warned string
		m.inv.StoreAndExecute(command.NewToggleItalic(m.buf, func(s string) { warned = s }))
		if warned != "" {
			m.ui = state.Notify(m.ui, warned)
		} else {
			m.ui = state.Notify(m.ui, "Italic")
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.inv.Depth() == 0 {
			m.ui = state.Notify(m.ui, "Nothing to undo")
		} else {
			m.inv.UndoLast()
			m.ui = state.Notify(m.ui, "Undone")
		}
		return m.followCaret(), nil

	case key.Matches(msg, m.keys.SelectAll):
		m.buf.Select(0, m.buf.Len())
		m.selAnchor, m.selCursor = 0, m.buf.Len()
		if m.ui.Mode == state.EDIT {
			m.ui = state.ToggleMode(m.ui)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save(), nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload(), nil

	case key.Matches(msg, m.keys.Diff):
		m.ui = state.ShowView(m.ui, state.DiffView)
		m.syncDiff()
		return m, nil

	case key.Matches(msg, m.keys.Wrap):
		m.ui = state.ToggleWrap(m.ui)
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.menuCursor = 0
		m.ui = state.ShowView(m.ui, state.MenuView)
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.ui.Mode == state.SELECT {
			m.buf.ClearSelection()
			m.ui = state.EditMode(m.ui)
		}
		return m, nil
	}

	// In select mode "y" is a copy alias for terminals that swallow ctrl+c.
	if m.ui.Mode == state.SELECT && msg.String() == "y" {
		m.inv.StoreAndExecute(command.NewCopy(m.buf, m.opts.Clip))
		m.ui = state.Notify(m.ui, "Copied")
		return m, nil
	}

	switch msg.String() {
	case "up", "down", "left", "right":
		m.moveCaret(msg.String())
		m.buf.ClearSelection()
		m.ui = state.EditMode(state.ClearNotice(m.ui))
		return m.followCaret(), nil

	case "shift+up", "shift+down", "shift+left", "shift+right":
		return m.extendSelection(strings.TrimPrefix(msg.String(), "shift+")), nil

	case "backspace":
		if m.buf.HasSelection() {
			s, e := m.buf.SelectionRange()
			m.buf.ReplaceRange(s, e, "")
		} else if c := m.buf.CaretPosition(); c > 0 {
			m.buf.ReplaceRange(c-1, c, "")
		}
		m.ui = state.EditMode(state.ClearNotice(m.ui))
		return m.followCaret(), nil

	case "delete":
		if m.buf.HasSelection() {
			s, e := m.buf.SelectionRange()
			m.buf.ReplaceRange(s, e, "")
		} else if c := m.buf.CaretPosition(); c < m.buf.Len() {
			m.buf.ReplaceRange(c, c+1, "")
		}
		m.ui = state.EditMode(state.ClearNotice(m.ui))
		return m.followCaret(), nil

	case "pgup":
		m.ui = state.ScrollUp(m.ui, true)
		return m, nil

	case "pgdown":
		m.ui = state.ScrollDown(m.ui, true)
		return m, nil

	case "enter":
		m.insert("\n")
		return m.followCaret(), nil

	case "tab":
		m.insert("\t")
		return m.followCaret(), nil
	}

	if msg.Type == tea.KeyRunes {
		m.insert(string(msg.Runes))
		return m.followCaret(), nil
	}
	if msg.Type == tea.KeySpace {
		m.insert(" ")
		return m.followCaret(), nil
	}
	return m, nil
}

func (m model) handleDiffKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Diff):
		m.ui = state.ShowView(m.ui, state.EditorView)
		return m, nil
	}
	if msg.String() == "u" {
		m.ui = state.ToggleDiffLayout(m.ui)
		m.syncDiff()
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := menu.Options()
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(opts)-1 {
			m.menuCursor++
		}
	case "enter":
		return m.runMenuAction(opts[m.menuCursor])
	case "esc", "b":
		m.ui = state.ShowView(m.ui, state.EditorView)
	}
	return m, nil
}

func (m model) runMenuAction(a menu.Action) (tea.Model, tea.Cmd) {
	m.ui = state.ShowView(m.ui, state.EditorView)
	switch a {
	case menu.Save:
		return m.save(), nil
	case menu.Reload:
		return m.reload(), nil
	case menu.ShowDiff:
		m.ui = state.ShowView(m.ui, state.DiffView)
		m.syncDiff()
		return m, nil
	case menu.ToggleWrap:
		m.ui = state.ToggleWrap(m.ui)
		return m, nil
	case menu.Quit:
		return m, tea.Quit
	}
	return m, nil
}

// ===== editing helpers =====

func (m *model) insert(text string) {
	if m.buf.HasSelection() {
		s, e := m.buf.SelectionRange()
		m.buf.ReplaceRange(s, e, text)
	} else {
		m.buf.Insert(text, m.buf.CaretPosition())
	}
	m.ui = state.EditMode(state.ClearNotice(m.ui))
}

func (m *model) moveCaret(dir string) {
	c := m.buf.CaretPosition()
	switch dir {
	case "left":
		m.buf.SetCaret(c - 1)
	case "right":
		m.buf.SetCaret(c + 1)
	case "up":
		m.buf.SetCaret(m.vertMove(c, -1))
	case "down":
		m.buf.SetCaret(m.vertMove(c, +1))
	}
}

func (m model) extendSelection(dir string) model {
	if m.ui.Mode != state.SELECT {
		m.selAnchor = m.buf.CaretPosition()
		m.selCursor = m.selAnchor
		m.ui = state.ToggleMode(m.ui)
	}
	switch dir {
	case "left":
		m.selCursor--
	case "right":
		m.selCursor++
	case "up":
		m.selCursor = m.vertMove(m.selCursor, -1)
	case "down":
		m.selCursor = m.vertMove(m.selCursor, +1)
	}
	if m.selCursor < 0 {
		m.selCursor = 0
	}
	if m.selCursor > m.buf.Len() {
		m.selCursor = m.buf.Len()
	}
	m.buf.Select(m.selAnchor, m.selCursor)
	m.buf.SetCaret(m.selCursor)
	return m.followCaret()
}

// vertMove returns the rune index one line up or down from pos, keeping the
// column where possible.
func (m model) vertMove(pos, delta int) int {
	lines := m.buf.Lines()
	line, col := m.buf.LineCol(pos)
	target := line + delta
	if target < 0 || target >= len(lines) {
		return pos
	}
	idx := 0
	for i := 0; i < target; i++ {
		idx += len([]rune(lines[i])) + 1
	}
	n := len([]rune(lines[target]))
	if col > n {
		col = n
	}
	return idx + col
}

func (m model) followCaret() model {
	rows := m.bodyRows()
	line, _ := m.buf.LineCol(m.buf.CaretPosition())
	if line < m.ui.ScrollV {
		m.ui.ScrollV = line
	}
	if line >= m.ui.ScrollV+rows {
		m.ui.ScrollV = line - rows + 1
	}
	return m
}

func (m model) bodyRows() int {
	h := m.ui.Height
	if h <= 0 {
		h = 24
	}
	// title + tags + status + footer
	if h -= 4; h < 1 {
		h = 1
	}
	return h
}

func (m model) save() model {
	if m.opts.SaveFunc == nil {
		m.ui = state.Notify(m.ui, "No file to save to")
		return m
	}
	if err := m.opts.SaveFunc(m.buf.String()); err != nil {
		m.ui = state.Notify(m.ui, fmt.Sprintf("Save failed: %v", err))
		return m
	}
	m.saved = m.buf.String()
	m.savedOnce = true
	m.ui = state.Notify(m.ui, "Saved")
	return m
}

func (m model) reload() model {
	if m.opts.LoadFunc == nil {
		m.ui = state.Notify(m.ui, "Nothing to reload")
		return m
	}
	text, err := m.opts.LoadFunc()
	if err != nil {
		m.ui = state.Notify(m.ui, fmt.Sprintf("Reload failed: %v", err))
		return m
	}
	m.buf = textbuf.New(text)
	m.inv = command.NewInvoker() // stale backups must not survive a reload
	m.saved = text
	m.ui = state.EditMode(state.Notify(m.ui, "Reloaded (undo history cleared)"))
	return m.followCaret()
}

func (m *model) syncDiff() {
	if m.vpReady {
		m.vp.SetContent(m.dv.View(m.ui, m.saved, m.buf.String()))
		m.vp.GotoTop()
	}
}

// ===== Views =====

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	selItem     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.ui.ShowHelp {
		return m.help.View(m.ui) + "\n" + footerStyle.Render("ctrl+g/esc: close help")
	}
	switch m.ui.View {
	case state.DiffView:
		return m.viewDiff()
	case state.MenuView:
		return m.viewMenu()
	default:
		return m.viewEditor()
	}
}

func (m model) viewEditor() string {
	title := m.opts.Path
	if title == "" {
		title = "(scratch)"
	}
	noColor := util.NoColor(false)
	tags := document.RenderTags(m.documentTags(), noColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(m.ed.View(m.ui, m.buf, m.opts.TabWidth, m.bodyRows()))
	b.WriteString(tags + "\n")
	b.WriteString(m.bar.View(m.ui, m.buf, m.inv.Depth()) + "\n")
	b.WriteString(footerStyle.Render("ctrl+x cut  ctrl+c copy  ctrl+v paste  ctrl+t italic  ctrl+z undo  ctrl+s save  ctrl+g help  ctrl+q quit"))
	return b.String()
}

func (m model) viewDiff() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Unsaved changes") + "\n")
	if m.vpReady {
		b.WriteString(m.vp.View() + "\n")
	} else {
		b.WriteString(m.dv.View(m.ui, m.saved, m.buf.String()))
	}
	b.WriteString(footerStyle.Render("u: unified/side-by-side  ↑/↓: scroll  esc: back  ctrl+q: quit"))
	return b.String()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Menu") + "\n\n")
	for i, a := range menu.Options() {
		line := "  " + menu.Label(a)
		if i == m.menuCursor {
			line = selItem.Render("> " + menu.Label(a))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + footerStyle.Render("enter: select  esc: back  ctrl+q: quit"))
	return b.String()
}

func (m model) documentTags() []state.Tag {
	selStart, selEnd := m.buf.SelectionRange()
	return util.ComputeTags(
		m.saved,
		m.buf.String(),
		selEnd-selStart,
		m.inv.Depth(),
		m.buf.Font() == textbuf.Italic,
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
