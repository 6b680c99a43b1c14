// Package remove provides the runner logic for deleting a task.
package remove

import (
	"context"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/view"
)

// Remove deletes one task. There is no confirmation.
type Remove struct {
	Target  app.Target
	Service *app.Service
	Output  printers.Options
}

func (n *Remove) Do(ctx context.Context) error {
	doc := view.New()
	m, err := n.Service.Open(ctx, doc)
	if err != nil {
		return err
	}
	id, err := n.Target.Resolve(doc)
	if err != nil {
		return err
	}
	if err := m.Dispatch(ctx, tasklist.Event{Action: tasklist.ActionDelete, ID: id}); err != nil {
		return err
	}
	return n.Output.Print(doc)
}
