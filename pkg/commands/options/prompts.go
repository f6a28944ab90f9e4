package options

import (
	"github.com/spf13/cobra"
)

// PromptOptions holds the answers to the three daily prompts.
type PromptOptions struct {
	GratefulFor   string
	MakeGreat     string
	AmazingThings string
}

func AddPromptArgs(cmd *cobra.Command, o *PromptOptions) {
	cmd.Flags().StringVarP(&o.GratefulFor, "grateful", "g", "",
		"What are you grateful for?")
	cmd.Flags().StringVarP(&o.MakeGreat, "great", "t", "",
		"What would make today great?")
	cmd.Flags().StringVarP(&o.AmazingThings, "amazing", "a", "",
		"What amazing things happened today?")
}

func (o *PromptOptions) Empty() bool {
	return o.GratefulFor == "" && o.MakeGreat == "" && o.AmazingThings == ""
}
