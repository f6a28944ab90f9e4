package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/affirm"
)

func addAffirmation(topLevel *cobra.Command) {
	var (
		next int
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "affirmation",
		Aliases: []string{"affirm"},
		Short:   "Print today's affirmation.",
		Example: `
gratitude affirmation
gratitude affirmation --next 2
gratitude affirmation --next -1
gratitude affirmation --all
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := affirm.Affirm{
				On:   time.Now(),
				Skip: next,
				All:  all,
				JSON: output.JSON,
				Out:  cmd.OutOrStdout(),
			}
			err := r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&next, "next", "n", 0, "Flip this many cards past today's, negative goes back.")
	cmd.Flags().BoolVar(&all, "all", false, "Print the whole deck.")

	topLevel.AddCommand(cmd)
}
