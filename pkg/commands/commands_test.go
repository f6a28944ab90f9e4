package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/store"
)

func init() {
	color.NoColor = true
}

func useTempJournal(t *testing.T, driver string) {
	t.Helper()
	sessionConfig = store.StaticConfig{Path: t.TempDir(), Store: driver}
	t.Cleanup(func() { sessionConfig = nil })
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("gratitude %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestWriteThenHistory(t *testing.T) {
	for _, driver := range []string{store.DriverDiskv, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			useTempJournal(t, driver)

			got := run(t, "", "write", "-g", "my family", "-m", "happy", "--on", "yesterday")
			if !strings.Contains(got, "Saved") {
				t.Fatalf("unexpected write output:\n%s", got)
			}
			run(t, "warm socks\n", "write")

			list, err := entry.UnmarshalList([]byte(run(t, "", "history", "--json")))
			if err != nil {
				t.Fatalf("decode history: %v", err)
			}
			if len(list) != 2 {
				t.Fatalf("expected 2 entries, got %d", len(list))
			}
			if list[0].GratefulFor != "warm socks" || list[1].GratefulFor != "my family" {
				t.Fatalf("unexpected order: %q, %q", list[0].GratefulFor, list[1].GratefulFor)
			}
			if list[1].Mood == nil || *list[1].Mood != "Happy" {
				t.Fatalf("expected Happy, got %v", list[1].Mood)
			}
		})
	}
}

func TestDeleteAndStats(t *testing.T) {
	useTempJournal(t, store.DriverDiskv)

	run(t, "", "write", "-g", "one")
	run(t, "", "write", "-g", "two", "--on", "yesterday")

	if got := run(t, "", "stats"); !strings.Contains(got, "Streak: 2 days") {
		t.Fatalf("unexpected stats:\n%s", got)
	}
	if got := run(t, "", "delete"); !strings.Contains(got, "Deleted") {
		t.Fatalf("unexpected delete output:\n%s", got)
	}
	if got := run(t, "", "stats"); !strings.Contains(got, "Streak: 1 day\n") {
		t.Fatalf("expected the streak to shrink:\n%s", got)
	}
}

func TestExportMarkdown(t *testing.T) {
	useTempJournal(t, store.DriverDiskv)
	run(t, "", "write", "-g", "the ocean", "-a", "saw a whale")

	got := run(t, "", "export")
	for _, want := range []string{"# Gratitude Journal", "the ocean", "saw a whale"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBadMoodFlag(t *testing.T) {
	useTempJournal(t, store.DriverDiskv)
	cmd := New()
	cmd.SetArgs([]string{"write", "-g", "x", "-m", "grumpy"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown mood")
	}
}

func TestVersion(t *testing.T) {
	if got := run(t, "", "version", "--short"); !strings.Contains(got, "dev") {
		t.Fatalf("unexpected version output %q", got)
	}
}
