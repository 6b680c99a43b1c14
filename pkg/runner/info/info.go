// Package info reports where daily keeps its state.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/timeutil"
)

// Info prints the config and what is stored.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Clock       timeutil.Clock
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv("DAILY_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "DAILY_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "DAILY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	fmt.Fprintln(out, "Config.locale:", n.Config.Locale())

	if n.Persistence == nil {
		return fmt.Errorf("info: no persistence")
	}
	clock := n.Clock
	if clock == nil {
		clock = timeutil.System
	}

	r, err := n.Persistence.Load(ctx)
	switch {
	case err != nil:
		fmt.Fprintln(out, "Record: unreadable:", err)
	case r == nil:
		fmt.Fprintln(out, "Record: none")
	default:
		fmt.Fprintf(out, "Record: %s, %d tasks (%s)\n", r.Date, len(r.Tasks), freshness(r.Date, clock.Now()))
	}
	return nil
}

// freshness describes how old a stored date-tag is relative to now.
func freshness(tag string, now time.Time) string {
	today := timeutil.DateTag(now)
	if tag == today {
		return "current"
	}
	day, err := timeutil.ParseDateTag(tag)
	if err != nil {
		return "unknown date, resets on next open"
	}
	midnight, _ := timeutil.ParseDateTag(today)
	switch days := int(midnight.Sub(day).Hours() / 24); {
	case days < 0:
		return "dated ahead of today, resets on next open"
	case days == 1:
		return "1 day old, resets on next open"
	default:
		return fmt.Sprintf("%d days old, resets on next open", days)
	}
}
