package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/store"
)

var now = time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	j := journal.Open(store.NewMemory(),
		journal.WithClock(func() time.Time { return now }),
		journal.WithLocation(time.UTC),
		journal.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return &Service{Journal: j}
}

func write(t *testing.T, s *Service, daysAgo int, m *mood.Mood, text string) {
	t.Helper()
	if _, _, err := s.Write(context.Background(), now.AddDate(0, 0, -daysAgo), m, text, "", ""); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWriteReportsCreation(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	e, created, err := s.Write(ctx, now, nil, "family", "", "")
	if err != nil || !created {
		t.Fatalf("expected creation, got %v %v", created, err)
	}
	if e.GratefulFor != "family" {
		t.Fatalf("unexpected entry %+v", e)
	}
	_, created, err = s.Write(ctx, now, nil, "friends", "", "")
	if err != nil || created {
		t.Fatalf("expected update, got %v %v", created, err)
	}
}

func TestWriteEmpty(t *testing.T) {
	s := newService(t)
	if _, _, err := s.Write(context.Background(), now, nil, " ", "", ""); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
}

func TestWriteBlankOverExisting(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	write(t, s, 0, mood.Ptr(mood.Calm), "family")

	e, created, err := s.Write(ctx, now, mood.Ptr(mood.Happy), "  ", "\n", "")
	if !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if e != nil || created {
		t.Fatalf("expected no entry back, got %+v %v", e, created)
	}
	kept, _, _ := s.On(ctx, now)
	if kept.GratefulFor != "family" || *kept.Mood != mood.Calm {
		t.Fatalf("expected the entry untouched, got %+v", kept)
	}
}

func TestNoJournal(t *testing.T) {
	s := &Service{}
	if _, err := s.Stats(context.Background()); !errors.Is(err, ErrNoJournal) {
		t.Fatalf("expected ErrNoJournal, got %v", err)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := newService(t)
	write(t, s, 1, nil, "b")
	write(t, s, 5, nil, "c")
	write(t, s, 0, nil, "a")

	got, err := s.History(context.Background(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].GratefulFor != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].GratefulFor)
		}
	}
}

func TestStatsRanksMoods(t *testing.T) {
	s := newService(t)
	write(t, s, 0, mood.Ptr(mood.Happy), "x")
	write(t, s, 1, mood.Ptr(mood.Happy), "x")
	write(t, s, 2, mood.Ptr(mood.Calm), "x")
	write(t, s, 4, nil, "x")

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 4 || stats.Streak != 3 {
		t.Fatalf("unexpected totals %+v", stats)
	}
	want := []MoodCount{{"Happy", 2}, {"Calm", 1}, {"Unknown", 1}}
	for i := range want {
		if stats.Moods[i] != want[i] {
			t.Fatalf("rank %d: expected %+v, got %+v", i, want[i], stats.Moods[i])
		}
	}
}

func TestReportWindow(t *testing.T) {
	s := newService(t)
	write(t, s, 0, mood.Ptr(mood.Happy), "today")
	write(t, s, 6, nil, "last week")
	write(t, s, 20, mood.Ptr(mood.Calm), "september")
	write(t, s, 40, nil, "too old")

	result, err := s.Report(context.Background(), now, now.AddDate(0, 0, -21))
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 entries, got %d", result.Total)
	}
	if len(result.Sections) != 2 || result.Sections[0].Month != "October 2026" || result.Sections[1].Month != "September 2026" {
		t.Fatalf("unexpected sections %+v", result.Sections)
	}
	if got := result.Sections[0].Entries[0].GratefulFor; got != "today" {
		t.Fatalf("expected newest first, got %q", got)
	}
}

func TestReportMonthBoundary(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	for _, d := range []time.Time{
		time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 22, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	} {
		if _, _, err := s.Write(ctx, d, nil, d.Format("Jan 2"), "", ""); err != nil {
			t.Fatal(err)
		}
	}

	result, err := s.Report(ctx, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), now)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Sections) != 2 {
		t.Fatalf("expected two months, got %+v", result.Sections)
	}
	if got := len(result.Sections[1].Entries); got != 2 || result.Sections[1].Month != "September 2026" {
		t.Fatalf("expected both September entries together, got %d in %s", got, result.Sections[1].Month)
	}
}
