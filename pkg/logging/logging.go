// Package logging builds the logr.Logger shared by commands, runners and the
// task list manager.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// FileName is the log file written next to the store while the UI owns the
// terminal.
const FileName = "daily.log"

// New returns a logger writing to w. Verbosity enables V(n) logs for n <= v.
func New(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "daily: ", log.LstdFlags), stdr.Options{LogCaller: stdr.Error})
}

// ToFile opens (appending) dir/FileName and returns a logger writing to it.
// The returned closer must be called when done.
func ToFile(dir string, verbosity int) (logr.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logr.Discard(), nil, fmt.Errorf("logging: ensure dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("logging: open: %w", err)
	}
	return New(f, verbosity), f, nil
}

// Into stores l on ctx.
func Into(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// From returns the logger on ctx, or a discarding logger.
func From(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
