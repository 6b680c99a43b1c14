package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are flags every command accepts.
type GlobalOptions struct {
	Locale    string
	Verbosity int
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Locale, "locale", "",
		Wrap80("Language for the date and completion banners, like ko-KR or en-US. Defaults to the configured locale."))
	cmd.PersistentFlags().IntVarP(&o.Verbosity, "verbosity", "v", 0,
		"Log verbosity.")
}
