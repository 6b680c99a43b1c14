// Package view is an in-memory presentation document for the task list. It
// implements tasklist.Surface, and printers and the terminal UI render from
// it.
package view

import (
	"sync"

	"tableflip.dev/daily/pkg/glyph"
	"tableflip.dev/daily/pkg/task"
	"tableflip.dev/daily/pkg/tasklist"
)

// Row is one drawn task.
type Row struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Struck bool   `json:"completed"`
}

// Glyph is the check box for the row.
func (r Row) Glyph() glyph.Glyph {
	if r.Struck {
		return glyph.Done
	}
	return glyph.Open
}

// Model holds rows in display order plus the two banners.
type Model struct {
	mu     sync.RWMutex
	rows   map[int64]*Row
	order  []int64
	today  string
	banner tasklist.Banner
}

var _ tasklist.Surface = (*Model)(nil)

// New returns an empty document.
func New() *Model {
	return &Model{rows: make(map[int64]*Row)}
}

func (m *Model) RenderRow(t task.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[t.ID]; !ok {
		m.order = append(m.order, t.ID)
	}
	m.rows[t.ID] = &Row{ID: t.ID, Text: t.Text, Struck: t.Completed}
}

func (m *Model) RemoveRow(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// Reorder arranges rows to follow ids. Rows not named keep their relative
// order after the named ones.
func (m *Model) Reorder(ids []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[int64]struct{}, len(ids))
	order := make([]int64, 0, len(m.order))
	for _, id := range ids {
		if _, ok := m.rows[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}
	for _, id := range m.order {
		if _, ok := seen[id]; !ok {
			order = append(order, id)
		}
	}
	m.order = order
}

func (m *Model) SetStrike(id int64, completed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok {
		r.Struck = completed
	}
}

func (m *Model) SetToday(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.today = text
}

func (m *Model) SetBanner(b tasklist.Banner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banner = b
}

// Rows returns a copy of the rows in display order.
func (m *Model) Rows() []Row {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Row, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.rows[id])
	}
	return out
}

// Row returns the row at the 0-based display position.
func (m *Model) Row(i int) (Row, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.order) {
		return Row{}, false
	}
	return *m.rows[m.order[i]], true
}

// Len is the number of rows.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Today is the date banner text.
func (m *Model) Today() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.today
}

// Banner is the completion banner.
func (m *Model) Banner() tasklist.Banner {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.banner
}

// Snapshot is the document in a form suitable for JSON output.
type Snapshot struct {
	Today  string          `json:"today"`
	Tasks  []Row           `json:"tasks"`
	Banner tasklist.Banner `json:"banner"`
}

// Snapshot copies the document.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Today: m.Today(), Tasks: m.Rows(), Banner: m.Banner()}
}
