package commands

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/logging"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/timeutil"
)

// session is what a command needs after config has been read.
type session struct {
	ctx       context.Context
	config    store.Config
	verbosity int
	service   *app.Service
}

// open loads config, applies the global flags, opens the store and puts a
// stderr logger on the context.
func open(cmd *cobra.Command, g *options.GlobalOptions) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	lang := cfg.Locale()
	if g.Locale != "" {
		lang = g.Locale
	}
	l, err := locale.Parse(lang)
	if err != nil {
		return nil, err
	}

	verbosity := cfg.Verbosity()
	if f := cmd.Flags().Lookup("verbosity"); f != nil && f.Changed {
		verbosity = g.Verbosity
	}

	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	if !isTerminal(cmd) {
		color.NoColor = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.Into(ctx, logging.New(cmd.ErrOrStderr(), verbosity))

	return &session{
		ctx:       ctx,
		config:    cfg,
		verbosity: verbosity,
		service: &app.Service{
			Persistence: p,
			Locale:      l,
			Clock:       timeutil.System,
			Location:    time.Local,
		},
	}, nil
}

func (s *session) withLogger(l logr.Logger) {
	s.ctx = logging.Into(s.ctx, l)
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
