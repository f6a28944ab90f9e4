package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the journal is stored.",
		Example: `
gratitude info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			n := info.Info{
				Config:  s.Config,
				Backend: s.Backend,
				Journal: s.Journal,
				Out:     cmd.OutOrStdout(),
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
