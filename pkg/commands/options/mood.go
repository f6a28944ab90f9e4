package options

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/mood"
)

// MoodOptions
type MoodOptions struct {
	Mood string
}

func moodNames() string {
	names := make([]string, 0, 5)
	for _, m := range mood.All() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions, usage string) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		base.Wrap80(usage+" One of: "+moodNames()+"."))
	_ = cmd.RegisterFlagCompletionFunc("mood", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		all := make([]string, 0, 5)
		for _, m := range mood.All() {
			all = append(all, string(m))
		}
		return all, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetMood returns nil when the flag was not given.
func (o *MoodOptions) GetMood() (*mood.Mood, error) {
	return mood.ParseOptional(o.Mood)
}
