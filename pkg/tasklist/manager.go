// Package tasklist owns the daily list: it orders tasks, keeps the store in
// step with memory and drives a presentation surface.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/task"
	"tableflip.dev/daily/pkg/timeutil"
)

// ErrNotFound is returned when an event names a task that is not on the list.
var ErrNotFound = errors.New("tasklist: task not found")

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for ids, the date-tag and the today banner.
func WithClock(c timeutil.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithLocale sets the banner language.
func WithLocale(l locale.Locale) Option {
	return func(m *Manager) { m.locale = l }
}

// WithLocation sets the zone the today banner is rendered in.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) { m.location = loc }
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(m *Manager) { m.log = l }
}

type handler func(ctx context.Context, ev Event) error

// Manager is the task list. It is not safe for concurrent use; drive it from
// one goroutine.
type Manager struct {
	persistence store.Persistence
	surface     Surface
	clock       timeutil.Clock
	locale      locale.Locale
	location    *time.Location
	log         logr.Logger

	tasks    []task.Task
	date     string
	banner   Banner
	handlers map[Action]handler
}

// New returns a Manager over p drawing into s. Call Init before use.
func New(p store.Persistence, s Surface, opts ...Option) *Manager {
	m := &Manager{
		persistence: p,
		surface:     s,
		clock:       timeutil.System,
		locale:      locale.Must(locale.Default),
		location:    time.Local,
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.handlers = map[Action]handler{
		ActionAdd: func(ctx context.Context, ev Event) error {
			_, _, err := m.Add(ctx, ev.Text)
			return err
		},
		ActionToggle: func(ctx context.Context, ev Event) error {
			return m.Toggle(ctx, ev.ID)
		},
		ActionDelete: func(ctx context.Context, ev Event) error {
			return m.Delete(ctx, ev.ID)
		},
	}
	return m
}

// Init loads today's list, or resets the store when the saved list belongs
// to another day, then draws both banners. A failed reset write is returned
// but the manager is still usable.
func (m *Manager) Init(ctx context.Context) error {
	now := m.clock.Now()
	today := timeutil.DateTag(now)
	m.clearRows()

	r, err := m.persistence.Load(ctx)
	if err != nil {
		m.log.Error(err, "discarding unreadable record")
		r = nil
	}

	var saveErr error
	if r != nil && r.Date == today {
		for _, t := range m.sanitize(r.Tasks) {
			m.insert(t)
		}
		m.date = today
		m.log.V(1).Info("loaded list", "date", today, "tasks", len(m.tasks))
	} else {
		previous := ""
		if r != nil {
			previous = r.Date
		}
		m.log.V(1).Info("starting a new day", "date", today, "previous", previous)
		saveErr = m.save(ctx)
	}

	m.surface.SetToday(m.locale.Today(now.In(m.location)))
	m.updateBanner()
	return saveErr
}

// Add appends an active task with the current time as id. Blank text is
// ignored: added is false and no error is returned.
func (m *Manager) Add(ctx context.Context, text string) (task.Task, bool, error) {
	t, ok := task.New(text, m.clock.Now())
	if !ok {
		return task.Task{}, false, nil
	}
	// Two adds inside one clock tick would share an id.
	if len(m.tasks) > 0 {
		if last := m.maxID(); t.ID <= last {
			t.ID = last + 1
		}
	}
	m.insert(t)
	m.updateBanner()
	m.log.V(1).Info("added task", "id", t.ID)
	return t, true, m.save(ctx)
}

// Toggle flips the completed state of the task with id.
func (m *Manager) Toggle(ctx context.Context, id int64) error {
	i := task.Find(m.tasks, id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	m.tasks[i].Toggle()
	m.surface.SetStrike(id, m.tasks[i].Completed)
	m.reorder()
	err := m.save(ctx)
	m.updateBanner()
	m.log.V(1).Info("toggled task", "id", id, "state", m.stateOf(id))
	return err
}

// Delete removes the task with id. There is no undo.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	i := task.Find(m.tasks, id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	m.surface.RemoveRow(id)
	err := m.save(ctx)
	m.updateBanner()
	m.log.V(1).Info("deleted task", "id", id)
	return err
}

// Dispatch routes a surface event to its handler.
func (m *Manager) Dispatch(ctx context.Context, ev Event) error {
	h, ok := m.handlers[ev.Action]
	if !ok {
		return fmt.Errorf("tasklist: unknown action %d", ev.Action)
	}
	return h(ctx, ev)
}

// Reload rereads the store after an outside write and redraws when the
// stored list differs from memory. It never writes.
func (m *Manager) Reload(ctx context.Context) (changed bool, err error) {
	r, err := m.persistence.Load(ctx)
	if err != nil {
		return false, err
	}
	today := timeutil.DateTag(m.clock.Now())
	var stored []task.Task
	if r != nil && r.Date == today {
		stored = m.sanitize(r.Tasks)
	}
	task.Sort(stored)
	if equal(stored, m.tasks) {
		return false, nil
	}

	m.clearRows()
	for _, t := range stored {
		m.insert(t)
	}
	m.date = today
	m.updateBanner()
	m.log.V(1).Info("reloaded list", "tasks", len(m.tasks))
	return true, nil
}

// Tasks returns the list in display order.
func (m *Manager) Tasks() []task.Task {
	return append([]task.Task(nil), m.tasks...)
}

// Summary counts the current list.
func (m *Manager) Summary() Summary {
	return Summarize(m.tasks)
}

// Banner is the completion banner last drawn.
func (m *Manager) Banner() Banner {
	return m.banner
}

// Date is the date-tag the list was last loaded or saved under.
func (m *Manager) Date() string {
	return m.date
}

// insert appends t, draws its row and re-sorts. It does not save.
func (m *Manager) insert(t task.Task) {
	if !t.Valid() {
		return
	}
	m.tasks = append(m.tasks, t)
	m.surface.RenderRow(t)
	m.reorder()
}

func (m *Manager) reorder() {
	task.Sort(m.tasks)
	m.surface.Reorder(task.IDs(m.tasks))
}

func (m *Manager) clearRows() {
	for _, t := range m.tasks {
		m.surface.RemoveRow(t.ID)
	}
	m.tasks = nil
}

func (m *Manager) updateBanner() {
	m.banner = NewBanner(Summarize(m.tasks), m.locale)
	m.surface.SetBanner(m.banner)
}

// save writes the whole list under today's tag. A failure is logged and
// returned; memory is not rolled back.
func (m *Manager) save(ctx context.Context) error {
	today := timeutil.DateTag(m.clock.Now())
	r := &store.Record{
		Tasks: append([]task.Task{}, m.tasks...),
		Date:  today,
	}
	m.date = today
	if err := m.persistence.Save(ctx, r); err != nil {
		m.log.Error(err, "save failed", "tasks", len(r.Tasks))
		return fmt.Errorf("tasklist: save: %w", err)
	}
	return nil
}

// sanitize drops blank tasks and repeated ids from a stored list.
func (m *Manager) sanitize(in []task.Task) []task.Task {
	out := make([]task.Task, 0, len(in))
	for _, t := range in {
		if !t.Valid() {
			m.log.Info("skipping blank task", "id", t.ID)
			continue
		}
		if task.Find(out, t.ID) >= 0 {
			m.log.Info("skipping duplicate task id", "id", t.ID)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m *Manager) maxID() int64 {
	var highest int64
	for _, t := range m.tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

func (m *Manager) stateOf(id int64) task.State {
	if i := task.Find(m.tasks, id); i >= 0 {
		return m.tasks[i].State()
	}
	return task.StateDeleted
}

func equal(a, b []task.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
