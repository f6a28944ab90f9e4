package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
)

func sample() []*entry.Entry {
	return []*entry.Entry{
		entry.New(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)).With(mood.Ptr(mood.Calm), "my family", "", "sunset"),
		entry.New(time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)),
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown(sample(), language.English)
	for _, want := range []string{
		"## Thursday, October 15, 2026",
		"*Mood: 🧘 Calm*",
		"- **I'm grateful for:** my family",
		"- **Amazing things today:** sunset",
		"_No entry yet today_",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "What would make today great") {
		t.Fatal("empty prompt should be skipped")
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML(sample(), language.English)
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !bytes.Contains(got, []byte("<h2>Thursday, October 15, 2026</h2>")) {
		t.Fatalf("expected heading in:\n%s", got)
	}
	if !bytes.Contains(got, []byte("<strong>I'm grateful for:</strong>")) && !bytes.Contains(got, []byte("<strong>I&rsquo;m grateful for:</strong>")) {
		t.Fatalf("expected bold label in:\n%s", got)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	in := sample()
	if err := Write(&buf, FormatJSON, in, language.English); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := entry.UnmarshalList(buf.Bytes())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range in {
		if !in[i].Equal(out[i]) {
			t.Fatalf("entry %d differs", i)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatMarkdown, "MD": FormatMarkdown, "html": FormatHTML, "json": FormatJSON} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatal("expected error for pdf")
	}
}
