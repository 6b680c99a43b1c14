// Package teaui is the interactive daily list, drawn with Bubble Tea.
package teaui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/logging"
)

// UI runs the interactive list until the user quits.
type UI struct {
	Service *app.Service
}

// Do opens the list, watches the store for outside writes and runs the
// program.
func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil || u.Service.Persistence == nil {
		return errors.New("ui: no persistence")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := New(ctx, u.Service)
	if err != nil {
		return err
	}
	if ch, err := u.Service.Persistence.Watch(ctx); err != nil {
		logging.From(ctx).Error(err, "watch disabled")
	} else {
		m.watch = ch
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
