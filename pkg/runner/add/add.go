// Package add provides the runner logic for adding a task.
package add

import (
	"context"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/logging"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/view"
)

// Add appends a task to today's list.
type Add struct {
	Message string
	Service *app.Service
	Output  printers.Options
}

// Do adds the task and prints the list. Blank messages are ignored.
func (n *Add) Do(ctx context.Context) error {
	doc := view.New()
	m, err := n.Service.Open(ctx, doc)
	if err != nil {
		return err
	}
	t, added, err := m.Add(ctx, n.Message)
	if err != nil {
		return err
	}
	if added {
		logging.From(ctx).V(1).Info("add", "id", t.ID)
	}
	return n.Output.Print(doc)
}
