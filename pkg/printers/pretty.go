package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/affirmation"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
)

const defaultWidth = 72

type PrettyPrint struct {
	Out    io.Writer
	Locale language.Tag
	Width  int
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entry prints one day as a card: heading, mood, and the wrapped reflections.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	h := color.New(color.Bold)
	f := color.New(color.Faint, color.Italic)

	_, _ = h.Fprintf(pp.out(), "%s, %s", e.DayName(pp.Locale), e.FormattedDate(pp.Locale))
	if e.Mood != nil {
		g := e.Mood.Glyph()
		_, _ = fmt.Fprintf(pp.out(), "  %s %s", g.Emoji, g.Mood)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
	if pp.ShowID {
		_, _ = f.Fprintln(pp.out(), e.ID)
	}

	body := wordwrap.String(e.CompositeText(), pp.width()-2)
	if e.IsEmpty() {
		_, _ = f.Fprintln(pp.out(), indent.String(body, 2))
	} else {
		_, _ = fmt.Fprintln(pp.out(), indent.String(body, 2))
	}
	pp.NewLine()
}

// Entries prints a compact table, one row per day.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width())
	tbl.Wrap = true
	for _, e := range entries {
		emoji := " "
		if e.Mood != nil {
			emoji = e.Mood.Glyph().Emoji
		}
		row := []interface{}{e.ShortFormattedDate(pp.Locale), emoji, summary(e)}
		if pp.ShowID {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// summary is the first answered prompt, used as a one-line preview.
func summary(e *entry.Entry) string {
	for _, field := range []string{e.GratefulFor, e.MakeGreat, e.AmazingThings} {
		if field != "" {
			return strings.ReplaceAll(field, "\n", " ")
		}
	}
	return entry.Placeholder
}

func (pp *PrettyPrint) Affirmation(a affirmation.Affirmation) {
	q := color.New(color.Italic)
	f := color.New(color.Faint)
	_, _ = q.Fprintln(pp.out(), wordwrap.String(`"`+a.Text+`"`, pp.width()))
	_, _ = f.Fprintf(pp.out(), "- %s -\n", a.Author)
}

// MoodLabel renders an optional mood with its emoji.
func MoodLabel(m *mood.Mood) string {
	if m == nil {
		return mood.UnsetLabel
	}
	return m.Glyph().Emoji + " " + string(*m)
}
