package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/export"
	"tableflip.dev/gratitude/pkg/runner/exporter"
)

func addExport(topLevel *cobra.Command) {
	so := &options.SearchOptions{}
	mo := &options.MoodOptions{}
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as markdown, html or json.",
		Example: `
gratitude export > journal.md
gratitude export --format html --file journal.html
gratitude export --format json --mood loved
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := export.ParseFormat(format)
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

			out := cmd.OutOrStdout()
			if file != "" {
				fh, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("create %s: %w", file, err)
				}
				defer fh.Close()
				out = fh
			}

			x := exporter.Exporter{
				Format:  f,
				Search:  so.Search,
				Mood:    m,
				Service: s.Service,
				Out:     out,
				Locale:  s.Locale,
			}
			err = x.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatMarkdown), "One of markdown, html or json.")
	cmd.Flags().StringVarP(&file, "file", "o", "", "Write to this file instead of stdout.")
	options.AddSearchArgs(cmd, so)
	options.AddMoodArgs(cmd, mo, "Only export entries with this mood.")

	topLevel.AddCommand(cmd)
}
