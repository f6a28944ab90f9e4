package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/runner/internal/fixture"
)

func TestReportWindow(t *testing.T) {
	svc, _ := fixture.Service(t)
	fixture.Write(t, svc, 0, mood.Loved, "in window")
	fixture.Write(t, svc, 6, "", "edge of window")
	fixture.Write(t, svc, 20, "", "too old")

	var out bytes.Buffer
	r := &Report{Window: "1w", Now: fixture.Now, JSON: true, Service: svc, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got app.ReportResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", got.Total)
	}
	if len(got.Sections) != 1 || got.Sections[0].Month != "October 2026" {
		t.Fatalf("unexpected sections %+v", got.Sections)
	}
}

func TestReportPrettyEmpty(t *testing.T) {
	svc, _ := fixture.Service(t)
	var out bytes.Buffer
	r := &Report{Window: "3d", Now: fixture.Now, Service: svc, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "last 3d") || !strings.Contains(out.String(), "No entries found") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestReportBadWindow(t *testing.T) {
	svc, _ := fixture.Service(t)
	r := &Report{Window: "soon", Service: svc, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a bad window")
	}
}
