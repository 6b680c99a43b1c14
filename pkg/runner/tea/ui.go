package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/logging"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/view"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

var (
	todayStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	bannerStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	celebrateStyle = bannerStyle.Foreground(lipgloss.Color("2"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// messages
type changedMsg struct{ ev store.Event }
type watchClosedMsg struct{}

// Model is the popup: a date header, an input line, the rows and the
// completion banner.
type Model struct {
	ctx context.Context
	mgr *tasklist.Manager
	doc *view.Model

	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focus
	cursor int

	status string
	err    error

	width  int
	height int

	watch <-chan store.Event
}

// New opens today's list through svc.
func New(ctx context.Context, svc *app.Service) (Model, error) {
	doc := view.New()
	mgr, err := svc.Open(ctx, doc)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "What needs doing today?"
	ti.CharLimit = 256
	ti.Prompt = "› "
	ti.Focus()

	return Model{
		ctx:   ctx,
		mgr:   mgr,
		doc:   doc,
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
		focus: focusInput,
	}, nil
}

// Init starts the cursor blink and the store watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return changedMsg{ev: ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case changedMsg:
		if msg.ev.Err != nil {
			logging.From(m.ctx).Error(msg.ev.Err, "watch")
		}
		changed, err := m.mgr.Reload(m.ctx)
		switch {
		case err != nil:
			m.setErr(err)
		case changed:
			m.status = "Reloaded"
			m.clampCursor()
		}
		return m, m.waitForChange()

	case watchClosedMsg:
		m.watch = nil
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		m.err = nil
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		m.input.Reset()
		before := m.doc.Len()
		if err := m.mgr.Dispatch(m.ctx, tasklist.Event{Action: tasklist.ActionAdd, Text: text}); err != nil {
			m.setErr(err)
		} else if m.doc.Len() > before {
			m.status = "Added"
		}
		return m, nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.doc.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.dispatchAtCursor(tasklist.ActionToggle, "Toggled")
	case key.Matches(msg, m.keys.Delete):
		m.dispatchAtCursor(tasklist.ActionDelete, "Deleted")
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) dispatchAtCursor(action tasklist.Action, done string) {
	row, ok := m.doc.Row(m.cursor)
	if !ok {
		return
	}
	if err := m.mgr.Dispatch(m.ctx, tasklist.Event{Action: action, ID: row.ID}); err != nil {
		m.setErr(err)
	} else {
		m.status = done
	}
	m.clampCursor()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := m.doc.Len(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) setErr(err error) {
	m.err = err
	logging.From(m.ctx).Error(err, "action failed")
}

// View renders the popup.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(todayStyle.Render(m.doc.Today()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	rows := m.doc.Rows()
	if len(rows) == 0 {
		b.WriteString(statusStyle.Render("  nothing yet"))
		b.WriteString("\n")
	}
	wrap := m.width - 6
	for i, r := range rows {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("→ ")
		}
		text := r.Text
		if wrap > 10 {
			text = wordwrap.String(text, wrap)
		}
		if r.Struck {
			text = doneStyle.Render(text)
		}
		text = strings.ReplaceAll(text, "\n", "\n     ")
		fmt.Fprintf(&b, "%s%s %s\n", marker, r.Glyph(), text)
	}

	banner := m.doc.Banner()
	style := bannerStyle
	if banner.Style == tasklist.StyleCelebrate {
		style = celebrateStyle
	}
	b.WriteString(style.Render(banner.Text))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("ERR: " + m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

var errNoRow = errors.New("ui: no row selected")

// Selected returns the row under the cursor.
func (m Model) Selected() (view.Row, error) {
	if row, ok := m.doc.Row(m.cursor); ok {
		return row, nil
	}
	return view.Row{}, errNoRow
}
