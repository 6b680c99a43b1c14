package tasklist

import "tableflip.dev/daily/pkg/task"

// Surface is the presentation the manager draws into. Rows are keyed by
// task id.
type Surface interface {
	// RenderRow appends a row for t.
	RenderRow(t task.Task)
	// RemoveRow drops the row for id.
	RemoveRow(id int64)
	// Reorder arranges rows to match ids.
	Reorder(ids []int64)
	// SetStrike marks the row done (struck through) or not.
	SetStrike(id int64, completed bool)
	// SetToday sets the read-only date banner.
	SetToday(text string)
	// SetBanner sets the completion banner.
	SetBanner(b Banner)
}

// Action is something a surface asks the manager to do.
type Action int

const (
	ActionAdd Action = iota
	ActionToggle
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionToggle:
		return "toggle"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is a user interaction routed through Manager.Dispatch. ID names the
// row for toggle and delete; Text carries the input for add.
type Event struct {
	Action Action
	ID     int64
	Text   string
}
