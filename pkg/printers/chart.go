package printers

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/mood"
)

const (
	barRune     = "█"
	maxBarWidth = 30
	unsetColor  = "#9e9e9e"
)

// Pastel softens a hex colour toward white. Invalid input comes back as-is.
func Pastel(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, 0.35).Clamped().Hex()
}

func moodColor(label string) string {
	m, err := mood.Parse(label)
	if err != nil {
		return Pastel(unsetColor)
	}
	return Pastel(m.Glyph().Color)
}

// Chart draws one horizontal bar per mood, scaled to the largest count.
func (pp *PrettyPrint) Chart(counts []app.MoodCount) {
	if len(counts) == 0 {
		pp.Empty("No mood data yet")
		return
	}
	out := termenv.NewOutput(pp.out())

	widest, largest := 0, 0
	for _, c := range counts {
		if len(c.Label) > widest {
			widest = len(c.Label)
		}
		if c.Count > largest {
			largest = c.Count
		}
	}

	for _, c := range counts {
		n := c.Count * maxBarWidth / largest
		if n == 0 && c.Count > 0 {
			n = 1
		}
		bar := out.String(strings.Repeat(barRune, n)).Foreground(out.Color(moodColor(c.Label)))
		_, _ = fmt.Fprintf(pp.out(), "%-*s %s %d\n", widest, c.Label, bar, c.Count)
	}
}

func (pp *PrettyPrint) Streak(days int) {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	_, _ = fmt.Fprintf(pp.out(), "Streak: %d %s\n", days, unit)
}

func (pp *PrettyPrint) Empty(msg string) {
	_, _ = fmt.Fprintf(pp.out(), " %s\n", msg)
}
