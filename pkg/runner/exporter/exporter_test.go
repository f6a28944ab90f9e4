package exporter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/export"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/runner/internal/fixture"
)

func TestExportMarkdown(t *testing.T) {
	svc, _ := fixture.Service(t)
	fixture.Write(t, svc, 0, mood.Strong, "finished the marathon")
	fixture.Write(t, svc, 1, "", "quiet day")

	var out bytes.Buffer
	x := &Exporter{Format: export.FormatMarkdown, Search: "marathon", Service: svc, Out: &out, Locale: language.English}
	if err := x.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "# Gratitude Journal") || !strings.Contains(got, "finished the marathon") {
		t.Fatalf("unexpected markdown:\n%s", got)
	}
	if strings.Contains(got, "quiet day") {
		t.Fatalf("search should have filtered the second entry:\n%s", got)
	}
}

func TestExportHTML(t *testing.T) {
	svc, _ := fixture.Service(t)
	fixture.Write(t, svc, 0, "", "friends")

	var out bytes.Buffer
	x := &Exporter{Format: export.FormatHTML, Service: svc, Out: &out, Locale: language.English}
	if err := x.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "<h1>Gratitude Journal</h1>") {
		t.Fatalf("unexpected html:\n%s", out.String())
	}
}
