package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, g *options.GlobalOptions) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"delete", "strike"},
		Short:   "Delete a task. There is no undo.",
		Example: `
daily rm 2
daily rm --id 1760864400000
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
			r := remove.Remove{
				Target:  ido.Target(),
				Service: s.service,
				Output:  printOptions(cmd, oo, ido),
			}
			return oo.HandleError(r.Do(s.ctx))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddIDArgs(cmd, ido)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
