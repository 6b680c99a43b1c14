// Package task defines the daily to-do item and its display ordering.
package task

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/daily/pkg/glyph"
)

// Task is one to-do item on the daily list.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// New returns an active task with an id derived from now. It returns false
// when text is empty after trimming.
func New(text string, now time.Time) (Task, bool) {
	if strings.TrimSpace(text) == "" {
		return Task{}, false
	}
	return Task{ID: IDFor(now), Text: text}, true
}

// IDFor derives a task id from the wall clock, in Unix milliseconds.
func IDFor(now time.Time) int64 {
	return now.UnixMilli()
}

// Valid reports whether the task can be shown.
func (t Task) Valid() bool {
	return strings.TrimSpace(t.Text) != ""
}

// Toggle flips the completed state.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// State names where the task sits in its lifecycle.
func (t Task) State() State {
	if t.Completed {
		return StateCompleted
	}
	return StateActive
}

// Glyph is the check box shown in front of the text.
func (t Task) Glyph() glyph.Glyph {
	if t.Completed {
		return glyph.Done
	}
	return glyph.Open
}

func (t Task) String() string {
	return fmt.Sprintf("%s %s", t.Glyph(), t.Text)
}

// UnmarshalJSON accepts records written with the older "task" field for the
// text.
func (t *Task) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID        int64   `json:"id"`
		Text      *string `json:"text"`
		Legacy    *string `json:"task"`
		Completed bool    `json:"completed"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.ID = raw.ID
	t.Completed = raw.Completed
	t.Text = ""
	switch {
	case raw.Text != nil:
		t.Text = *raw.Text
	case raw.Legacy != nil:
		t.Text = *raw.Legacy
	}
	return nil
}

// State is a task lifecycle state.
type State int

const (
	StateActive State = iota
	StateCompleted
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	case StateDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Less orders incomplete tasks before completed ones, then by ascending id.
func Less(a, b Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	return a.ID < b.ID
}

// Sort puts tasks into display order in place.
func Sort(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j])
	})
}

// IDs returns the ids of tasks in their current order.
func IDs(tasks []Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// Find returns the index of the task with id, or -1.
func Find(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
