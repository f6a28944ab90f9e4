package show

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/affirmation"
	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
)

// Show prints the entry for one day. With Follow it keeps running and
// reprints whenever the backing store changes.
type Show struct {
	On          time.Time
	Affirmation bool
	Follow      bool
	ShowID      bool
	Journal     *journal.Journal
	Backend     store.Backend
	Out         io.Writer
	Locale      language.Tag
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show, no journal")
	}
	n.print(ctx)
	if !n.Follow {
		return nil
	}
	if n.Backend == nil {
		return errors.New("can not follow, no store")
	}

	events, err := store.Watch(ctx, n.Backend)
	if err != nil {
		return err
	}
	for range events {
		if err := n.Journal.Reload(); err != nil {
			slog.Warn("reload failed", "error", err)
			continue
		}
		n.print(ctx)
	}
	return nil
}

func (n *Show) print(ctx context.Context) {
	pp := printers.PrettyPrint{Out: n.Out, Locale: n.Locale, ShowID: n.ShowID}
	svc := app.Service{Journal: n.Journal}
	if n.Affirmation {
		pp.Affirmation(affirmation.DefaultDeck().Daily(n.On))
		pp.NewLine()
	}
	e, ok, err := svc.On(ctx, n.On)
	if err != nil || !ok {
		pp.Empty("No entry yet for this day.")
		pp.NewLine()
		return
	}
	pp.Entry(e)
}
