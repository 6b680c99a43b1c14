// Package app wires the task list manager to its collaborators so the CLI
// and the terminal UI share one setup path.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/logging"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/timeutil"
	"tableflip.dev/daily/pkg/view"
)

// Service holds what every manager needs.
type Service struct {
	Persistence store.Persistence
	Locale      locale.Locale
	Clock       timeutil.Clock
	Location    *time.Location
}

// ErrNoPersistence is returned when the service has no store.
var ErrNoPersistence = errors.New("app: no persistence configured")

// Open builds a manager drawing into surface and initializes it. Init save
// failures are logged and do not fail Open.
func (s *Service) Open(ctx context.Context, surface tasklist.Surface) (*tasklist.Manager, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	log := logging.From(ctx)
	opts := []tasklist.Option{tasklist.WithLogger(log)}
	if !s.Locale.IsZero() {
		opts = append(opts, tasklist.WithLocale(s.Locale))
	}
	if s.Clock != nil {
		opts = append(opts, tasklist.WithClock(s.Clock))
	}
	if s.Location != nil {
		opts = append(opts, tasklist.WithLocation(s.Location))
	}
	m := tasklist.New(s.Persistence, surface, opts...)
	if err := m.Init(ctx); err != nil {
		log.Error(err, "could not write today's empty list")
	}
	return m, nil
}

// Target names a row either by 1-based display position or by task id.
type Target struct {
	Index int
	ID    int64
}

// Resolve returns the task id Target points at on doc.
func (t Target) Resolve(doc *view.Model) (int64, error) {
	if t.ID != 0 {
		return t.ID, nil
	}
	row, ok := doc.Row(t.Index - 1)
	if !ok {
		return 0, fmt.Errorf("app: no task #%d (list has %d)", t.Index, doc.Len())
	}
	return row.ID, nil
}
