package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command, g *options.GlobalOptions) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <number>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Mark a task complete, or open again if it already is.",
		Example: `
daily done 1
daily done --id 1760864400000
`,
		ValidArgsFunction: taskCompletions(),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ido.ParseIndex(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := open(cmd, g)
			if err != nil {
				return oo.HandleError(err)
			}
			c := complete.Complete{
				Target:  ido.Target(),
				Service: s.service,
				Output:  printOptions(cmd, oo, ido),
			}
			return oo.HandleError(c.Do(s.ctx))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddIDArgs(cmd, ido)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
