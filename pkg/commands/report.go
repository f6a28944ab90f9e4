package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/report"
	"tableflip.dev/gratitude/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent entries grouped by month",
		Long: `Report lists the entries written within the specified window, grouped by
month, followed by the mood chart for that window.

Examples:
  gratitude report
  gratitude report --last 3d
  gratitude report --last 1mo2w`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := report.Report{
				Window:  last,
				Now:     time.Now(),
				JSON:    output.JSON,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
				Locale:  s.Locale,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w, 2mo)")
	topLevel.AddCommand(cmd)
}
