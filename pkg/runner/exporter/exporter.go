package exporter

import (
	"context"
	"errors"
	"io"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/export"
	"tableflip.dev/gratitude/pkg/mood"
)

type Exporter struct {
	Format  export.Format
	Search  string
	Mood    *mood.Mood
	Service *app.Service
	Out     io.Writer
	Locale  language.Tag
}

func (n *Exporter) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no journal")
	}
	entries, err := n.Service.History(ctx, n.Search, n.Mood)
	if err != nil {
		return err
	}
	return export.Write(n.Out, n.Format, entries, n.Locale)
}
