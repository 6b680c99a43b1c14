package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/task"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/timeutil"
)

func newTestModel(t *testing.T, p store.Persistence) Model {
	t.Helper()
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	svc := &app.Service{
		Persistence: p,
		Locale:      locale.Must("en-US"),
		Clock: timeutil.ClockFunc(func() time.Time {
			now = now.Add(time.Second)
			return now
		}),
		Location: time.UTC,
	}
	m, err := New(context.Background(), svc)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.width = 80
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func typeText(text string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func keyRune(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func texts(m Model) []string {
	var out []string
	for _, tk := range m.mgr.Tasks() {
		out = append(out, tk.Text)
	}
	return out
}

func TestAddToggleDeleteThroughKeys(t *testing.T) {
	m := newTestModel(t, store.NewMemory())

	m = send(t, m, typeText("buy milk"), enter, typeText("walk dog"), enter)
	if got := texts(m); len(got) != 2 || got[0] != "buy milk" || got[1] != "walk dog" {
		t.Fatalf("unexpected tasks %v", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.input.Value())
	}

	// Toggle the first row: it moves below the active one.
	m = send(t, m, tab, space)
	if got := texts(m); got[0] != "walk dog" || got[1] != "buy milk" {
		t.Fatalf("expected completed task last, got %v", got)
	}
	if s := m.mgr.Summary(); s.Completed != 1 || s.Rate != 50 {
		t.Fatalf("unexpected summary %+v", s)
	}

	// Cursor stays on row 0, which is now "walk dog".
	sel, err := m.Selected()
	if err != nil || sel.Text != "walk dog" {
		t.Fatalf("expected cursor on walk dog, got %+v %v", sel, err)
	}
	m = send(t, m, keyRune('d'))
	if got := texts(m); len(got) != 1 || got[0] != "buy milk" {
		t.Fatalf("expected only buy milk left, got %v", got)
	}
	if m.mgr.Banner().Style != tasklist.StyleCelebrate {
		t.Fatalf("expected celebratory banner")
	}
	if !strings.Contains(m.View(), "Well done") {
		t.Fatalf("expected celebration in view:\n%s", m.View())
	}
}

func TestBlankInputIsIgnored(t *testing.T) {
	m := newTestModel(t, store.NewMemory())
	m = send(t, m, typeText("   "), enter)
	if len(m.mgr.Tasks()) != 0 {
		t.Fatalf("expected no tasks, got %v", texts(m))
	}
	if m.status != "" {
		t.Fatalf("expected no status, got %q", m.status)
	}
}

func TestListKeysDoNotTypeIntoInput(t *testing.T) {
	m := newTestModel(t, store.NewMemory())
	m = send(t, m, typeText("a"), enter, typeText("b"), enter, tab, down, keyRune('x'))
	if m.input.Value() != "" {
		t.Fatalf("list keys leaked into input: %q", m.input.Value())
	}
	tasks := m.mgr.Tasks()
	if tasks[1].Text != "b" || !tasks[1].Completed {
		t.Fatalf("expected b toggled, got %+v", tasks)
	}

	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
	_ = next
}

func TestViewShowsBanners(t *testing.T) {
	m := newTestModel(t, store.NewMemory())
	view := m.View()
	for _, want := range []string{"Monday, October 19, 2026", "Completion: 0/0 (0%)", "nothing yet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestChangedMsgReloads(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	m := newTestModel(t, p)

	if err := p.Save(ctx, &store.Record{
		Date:  "2026-10-19",
		Tasks: []task.Task{{ID: 1, Text: "from the cli"}},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	m = send(t, m, changedMsg{ev: store.Event{Type: store.EventRecordChanged}})
	if got := texts(m); len(got) != 1 || got[0] != "from the cli" {
		t.Fatalf("expected reload, got %v", got)
	}
	if m.status != "Reloaded" {
		t.Fatalf("expected reload status, got %q", m.status)
	}
}
