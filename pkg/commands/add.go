package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, g *options.GlobalOptions) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to today's list.",
		Example: `
daily add call the bank
daily add "pick up the dry cleaning"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := open(cmd, g)
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Message: strings.Join(args, " "),
				Service: s.service,
				Output:  printOptions(cmd, oo, ido),
			}
			return oo.HandleError(a.Do(s.ctx))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
