package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/show"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var follow bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's affirmation and entry.",
		Example: `
gratitude today
gratitude today --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runShow(cmd, time.Now(), true, follow, io.ShowID)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep running and reprint when the journal changes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the entry for a day.",
		Example: `
gratitude show --on yesterday
gratitude show --on 2026-10-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			return runShow(cmd, date, false, false, io.ShowID)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, date time.Time, affirm, follow, showID bool) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	if follow {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	r := show.Show{
		On:          date,
		Affirmation: affirm,
		Follow:      follow,
		ShowID:      showID,
		Journal:     s.Journal,
		Backend:     s.Backend,
		Out:         cmd.OutOrStdout(),
		Locale:      s.Locale,
	}
	if output.JSON && !follow {
		e, ok := s.Journal.EntryForDate(date)
		if !ok {
			return options.PrintJSON(cmd.OutOrStdout(), nil)
		}
		return options.PrintJSON(cmd.OutOrStdout(), e)
	}
	err = r.Do(ctx)
	return output.HandleError(err)
}
