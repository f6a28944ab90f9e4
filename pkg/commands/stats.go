package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"insights"},
		Short:   "Show the writing streak and mood chart.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := stats.Stats{
				JSON:    output.JSON,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
