package remind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/reminder"
)

// Remind prints the daily nudge when it is due, otherwise when it next fires.
type Remind struct {
	Schedule reminder.Schedule
	Now      time.Time
	Quiet    bool
	Service  *app.Service
	Out      io.Writer
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remind, no journal")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	_, wrote, err := n.Service.On(ctx, now)
	if err != nil {
		return err
	}

	if n.Schedule.Due(now, wrote) {
		_, _ = fmt.Fprintf(n.Out, "%s\n%s\n", reminder.Title, reminder.Body)
		return nil
	}
	if n.Quiet {
		return nil
	}
	if wrote {
		_, _ = fmt.Fprintln(n.Out, "Today's entry is written.")
	}
	next := n.Schedule.Next(now)
	_, _ = fmt.Fprintf(n.Out, "Next reminder at %s.\n", next.Format("2006-01-02 15:04"))
	return nil
}
