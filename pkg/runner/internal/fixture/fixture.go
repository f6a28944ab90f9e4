// Package fixture builds in-memory journals for runner tests.
package fixture

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/store"
)

// Now is the fixed clock every fixture journal runs on.
var Now = time.Date(2026, 10, 15, 19, 30, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

// Service returns a service over an empty in-memory journal and its store.
func Service(t *testing.T) (*app.Service, *store.Memory) {
	t.Helper()
	blobs := store.NewMemory()
	j := journal.Open(blobs,
		journal.WithClock(func() time.Time { return Now }),
		journal.WithLocation(time.UTC),
		journal.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return &app.Service{Journal: j}, blobs
}

// Write stores an entry daysAgo before Now with only the grateful prompt set.
func Write(t *testing.T, s *app.Service, daysAgo int, m mood.Mood, text string) {
	t.Helper()
	var mp *mood.Mood
	if m != "" {
		mp = mood.Ptr(m)
	}
	if err := s.Journal.Upsert(Now.AddDate(0, 0, -daysAgo), mp, text, "", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
}
