package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/runner/list"
)

func addList(topLevel *cobra.Command, g *options.GlobalOptions) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "Show today's tasks.",
		Example: `
daily list
daily list --show-id
daily list --json
`,
		Args: cobra.NoArgs,
		RunE: listRunE(g, oo, ido),
	}
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

func listRunE(g *options.GlobalOptions, oo *options.OutputOptions, ido *options.IDOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		oo.Out = cmd.OutOrStdout()
		s, err := open(cmd, g)
		if err != nil {
			return oo.HandleError(err)
		}
		l := list.List{
			Service: s.service,
			Output:  printOptions(cmd, oo, ido),
		}
		return oo.HandleError(l.Do(s.ctx))
	}
}

func printOptions(cmd *cobra.Command, oo *options.OutputOptions, ido *options.IDOptions) printers.Options {
	return printers.Options{
		ShowID: ido.ShowID,
		JSON:   oo.JSON,
		Out:    cmd.OutOrStdout(),
	}
}
