package affirm

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"tableflip.dev/gratitude/pkg/affirmation"
	"tableflip.dev/gratitude/pkg/printers"
)

// Affirm prints the day's affirmation, or one Skip cards away from it.
type Affirm struct {
	On   time.Time
	Skip int
	All  bool
	JSON bool
	Out  io.Writer
}

func (n *Affirm) Do(_ context.Context) error {
	deck := affirmation.DefaultDeck()
	if n.All {
		if n.JSON {
			return json.NewEncoder(n.Out).Encode(deck)
		}
		pp := printers.PrettyPrint{Out: n.Out}
		for _, a := range deck {
			pp.Affirmation(a)
			pp.NewLine()
		}
		return nil
	}

	c := affirmation.NewCarousel(deck, n.On)
	a := c.Skip(n.Skip)
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(a)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Affirmation(a)
	return nil
}
