package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gratitude/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gratitude",
		Short: base.Wrap80("A daily gratitude journal on the command line."),
		Long: base.Wrap80("Write one entry per day answering three prompts, tag it with a mood, " +
			"and look back over your streak, history and mood chart."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addToday(topLevel)
	addShow(topLevel)
	addHistory(topLevel)
	addStats(topLevel)
	addReport(topLevel)
	addDelete(topLevel)
	addAffirmation(topLevel)
	addRemind(topLevel)
	addExport(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
