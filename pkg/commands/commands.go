package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
)

func New() *cobra.Command {
	g := &options.GlobalOptions{}
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "daily",
		Short: options.Wrap80("A to-do list for today. Tasks reset every day."),
		Example: `
daily
daily add call the bank
daily done 1
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         listRunE(g, oo, ido),
	}
	options.AddGlobalArgs(cmd, g)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, ido)

	AddCommands(cmd, g)
	return cmd
}

func AddCommands(topLevel *cobra.Command, g *options.GlobalOptions) {
	addList(topLevel, g)
	addAdd(topLevel, g)
	addComplete(topLevel, g)
	addRemove(topLevel, g)
	addUI(topLevel, g)
	addInfo(topLevel, g)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
