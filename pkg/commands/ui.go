package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/logging"
	teaui "tableflip.dev/daily/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command, g *options.GlobalOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list.",
		Example: `
daily ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd) {
				return errors.New("ui needs a terminal, try `daily list`")
			}
			s, err := open(cmd, g)
			if err != nil {
				return err
			}
			l, closer, err := logging.ToFile(s.config.BasePath(), s.verbosity)
			if err != nil {
				return err
			}
			defer closer.Close()
			s.withLogger(l)

			i := teaui.UI{Service: s.service}
			return i.Do(s.ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
