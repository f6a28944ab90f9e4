package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions
type SearchOptions struct {
	Search string
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only show entries containing this text, ignoring case.")
}
