package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/reminder"
	"tableflip.dev/gratitude/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	var (
		at    string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the daily reminder if it is due.",
		Long: `Remind prints the daily nudge once the reminder time has passed and
nothing has been written today. Put it in your shell profile or a cron job.

The time comes from --at, or the "reminder" config key (default 20:00).`,
		Example: `
gratitude remind
gratitude remind --at 21:30 --quiet
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if at == "" {
				at = s.Config.Reminder()
			}
			schedule, err := reminder.Parse(at)
			if err != nil {
				return err
			}
			r := remind.Remind{
				Schedule: schedule,
				Now:      time.Now(),
				Quiet:    quiet,
				Service:  s.Service,
				Out:      cmd.OutOrStdout(),
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Reminder time as HH:MM, overrides the config.")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing unless the reminder is due.")

	topLevel.AddCommand(cmd)
}
