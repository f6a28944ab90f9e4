package stats

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/printers"
)

type Stats struct {
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute stats, no journal")
	}
	result, err := n.Service.Stats(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return options.PrintJSON(n.Out, result)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.TitleWithCount("Insights", result.Total)
	pp.Streak(result.Streak)
	pp.NewLine()
	pp.Chart(result.Moods)
	return nil
}
