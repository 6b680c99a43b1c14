// Package complete provides the runner logic for toggling a task done.
package complete

import (
	"context"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/view"
)

// Complete flips the completed state of one task.
type Complete struct {
	Target  app.Target
	Service *app.Service
	Output  printers.Options
}

// Do toggles the targeted task and prints the list.
func (n *Complete) Do(ctx context.Context) error {
	doc := view.New()
	m, err := n.Service.Open(ctx, doc)
	if err != nil {
		return err
	}
	id, err := n.Target.Resolve(doc)
	if err != nil {
		return err
	}
	if err := m.Dispatch(ctx, tasklist.Event{Action: tasklist.ActionToggle, ID: id}); err != nil {
		return err
	}
	return n.Output.Print(doc)
}
