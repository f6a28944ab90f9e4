package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	mo := &options.MoodOptions{}
	po := &options.PromptOptions{}

	cmd := &cobra.Command{
		Use:     "write",
		Aliases: []string{"w", "add"},
		Short:   "Write or update the entry for a day.",
		Long: `Write answers the three daily prompts. Writing again on the same day
replaces that day's answers and mood.

When no prompt flag is set the answers are read from stdin, one per line.`,
		Example: `
gratitude write -g "my family" -t "a long walk" -m happy
gratitude write --on yesterday -a "the sunset"
printf 'coffee\nfinish the book\n' | gratitude write
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			m, err := mo.GetMood()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			w := write.Write{
				On:            date,
				Mood:          m,
				GratefulFor:   po.GratefulFor,
				MakeGreat:     po.MakeGreat,
				AmazingThings: po.AmazingThings,
				Service:       s.Service,
				Out:           cmd.OutOrStdout(),
				Locale:        s.Locale,
			}
			if po.Empty() {
				w.In = cmd.InOrStdin()
				w.Ask = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			}
			err = w.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddMoodArgs(cmd, mo, "How you feel.")
	options.AddPromptArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
