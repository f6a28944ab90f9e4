package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete the entry for a day.",
		Example: `
gratitude delete --on 2026-10-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := remove.Remove{
				On:      date,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
