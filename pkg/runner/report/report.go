package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/timeutil"
)

// Report lists the entries written in the last Window, grouped by month.
type Report struct {
	Window  string
	Now     time.Time
	JSON    bool
	Service *app.Service
	Out     io.Writer
	Locale  language.Tag
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no journal")
	}
	duration, label, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	until := n.Now
	if until.IsZero() {
		until = time.Now()
	}
	result, err := n.Service.Report(ctx, until.Add(-duration), until)
	if err != nil {
		return err
	}
	if n.JSON {
		return options.PrintJSON(n.Out, result)
	}

	since := result.Since.Local().Format("2006-01-02")
	_, _ = fmt.Fprintf(n.Out, "Report · last %s (%s → %s)\n\n", label, since, result.Until.Local().Format("2006-01-02"))

	pp := printers.PrettyPrint{Out: n.Out, Locale: n.Locale}
	if result.Total == 0 {
		pp.Empty("No entries found in this window.")
		pp.NewLine()
		return nil
	}
	for _, section := range result.Sections {
		pp.TitleWithCount(section.Month, len(section.Entries))
		pp.Entries(section.Entries...)
	}
	pp.Chart(result.Moods)
	return nil
}
