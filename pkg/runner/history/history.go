package history

import (
	"context"
	"errors"
	"io"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/printers"
)

type History struct {
	Search  string
	Mood    *mood.Mood
	Full    bool
	ShowID  bool
	JSON    bool
	Service *app.Service
	Out     io.Writer
	Locale  language.Tag
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list history, no journal")
	}
	entries, err := n.Service.History(ctx, n.Search, n.Mood)
	if err != nil {
		return err
	}
	if n.JSON {
		if entries == nil {
			entries = []*entry.Entry{}
		}
		return options.PrintJSON(n.Out, entries)
	}

	pp := printers.PrettyPrint{Out: n.Out, Locale: n.Locale, ShowID: n.ShowID}
	pp.TitleWithCount("History", len(entries))
	if !n.Full {
		pp.Entries(entries...)
		return nil
	}
	for _, e := range entries {
		pp.Entry(e)
	}
	return nil
}
