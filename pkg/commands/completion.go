package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/task"
	"tableflip.dev/daily/pkg/timeutil"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daily completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daily completion)
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers the display numbers of today's tasks. It only reads
// the store, so completing never triggers the daily reset.
func taskCompletions() func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		p, err := store.Load(cfg)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return numbered(context.Background(), p, timeutil.System), cobra.ShellCompDirectiveNoFileComp
	}
}

func numbered(ctx context.Context, p store.Persistence, clock timeutil.Clock) []string {
	r, err := p.Load(ctx)
	if err != nil || r == nil || r.Date != timeutil.DateTag(clock.Now()) {
		return nil
	}
	tasks := make([]task.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		if t.Valid() && task.Find(tasks, t.ID) < 0 {
			tasks = append(tasks, t)
		}
	}
	task.Sort(tasks)
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, fmt.Sprintf("%d\t%s %s", i+1, t.Glyph().Symbol, t.Text))
	}
	return out
}
