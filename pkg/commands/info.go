package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, g *options.GlobalOptions) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where daily keeps its list.",
		Example: `
daily info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, g)
			if err != nil {
				return err
			}
			i := info.Info{
				Config:      s.config,
				Persistence: s.service.Persistence,
				Clock:       s.service.Clock,
				Out:         cmd.OutOrStdout(),
			}
			return i.Do(s.ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
