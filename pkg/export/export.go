// Package export renders journal entries as Markdown, HTML, or the raw JSON
// persistence format.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/entry"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", "md", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", raw)
	}
}

// Markdown writes one section per entry in the given order.
func Markdown(entries []*entry.Entry, tag language.Tag) string {
	var b strings.Builder
	b.WriteString("# Gratitude Journal\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s, %s\n\n", e.DayName(tag), e.FormattedDate(tag))
		if e.Mood != nil {
			fmt.Fprintf(&b, "*Mood: %s %s*\n\n", e.Mood.Glyph().Emoji, *e.Mood)
		}
		writeField(&b, entry.GratefulForLabel, e.GratefulFor)
		writeField(&b, entry.MakeGreatLabel, e.MakeGreat)
		writeField(&b, entry.AmazingThingsLabel, e.AmazingThings)
		if e.IsEmpty() {
			fmt.Fprintf(&b, "_%s_\n", entry.Placeholder)
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- **%s** %s\n", strings.TrimSpace(label), value)
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts the Markdown rendering to an HTML fragment.
func HTML(entries []*entry.Entry, tag language.Tag) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(entries, tag)), &buf); err != nil {
		return nil, fmt.Errorf("export: render html: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders entries in format f to w.
func Write(w io.Writer, f Format, entries []*entry.Entry, tag language.Tag) error {
	var data []byte
	switch f {
	case FormatMarkdown:
		data = []byte(Markdown(entries, tag))
	case FormatHTML:
		html, err := HTML(entries, tag)
		if err != nil {
			return err
		}
		data = html
	case FormatJSON:
		list, err := entry.MarshalList(entries)
		if err != nil {
			return fmt.Errorf("export: encode json: %w", err)
		}
		data = append(list, '\n')
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
	_, err := w.Write(data)
	return err
}
