// Package list prints today's task list.
package list

import (
	"context"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/view"
)

// List shows the list, resetting it first when the day has turned over.
type List struct {
	Service *app.Service
	Output  printers.Options
}

func (n *List) Do(ctx context.Context) error {
	doc := view.New()
	if _, err := n.Service.Open(ctx, doc); err != nil {
		return err
	}
	return n.Output.Print(doc)
}
