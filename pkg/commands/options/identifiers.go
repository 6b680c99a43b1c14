package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/app"
)

// IDOptions selects a task by display number or by id.
type IDOptions struct {
	ShowID bool
	ID     int64
	Index  int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0,
		"Specify the id of a task instead of its number.")
}

// ParseIndex reads the task number from args unless --id was given.
func (o *IDOptions) ParseIndex(args []string) error {
	if o.ID != 0 {
		if len(args) > 0 {
			return errors.New("give either a task number or --id, not both")
		}
		return nil
	}
	if len(args) != 1 {
		return errors.New("requires a task number")
	}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(args[0]), "#"))
	if err != nil || n < 1 {
		return fmt.Errorf("invalid task number %q", args[0])
	}
	o.Index = n
	return nil
}

// Target converts the options to an app.Target.
func (o *IDOptions) Target() app.Target {
	return app.Target{Index: o.Index, ID: o.ID}
}
