package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/gratitude/pkg/app"
)

type Remove struct {
	On      time.Time
	Service *app.Service
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal")
	}
	removed, err := n.Service.Delete(ctx, n.On)
	if err != nil {
		return err
	}
	day := n.On.Format("2006-01-02")
	if !removed {
		_, _ = fmt.Fprintf(n.Out, "No entry for %s.\n", day)
		return nil
	}
	_, _ = fmt.Fprintf(n.Out, "Deleted the entry for %s.\n", day)
	return nil
}
