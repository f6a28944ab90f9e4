package app

import (
	"context"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/mood"
)

// ReportSection groups entries by calendar month.
type ReportSection struct {
	Month   string         `json:"month"`
	Entries []*entry.Entry `json:"entries"`
}

// ReportResult encapsulates the entries written inside a time window.
type ReportResult struct {
	Since    time.Time       `json:"since"`
	Until    time.Time       `json:"until"`
	Sections []ReportSection `json:"sections"`
	Moods    []MoodCount     `json:"moods"`
	Total    int             `json:"total"`
}

// Report returns entries whose day overlaps [since, until], newest first,
// grouped by month.
func (s *Service) Report(_ context.Context, since, until time.Time) (ReportResult, error) {
	if s.Journal == nil {
		return ReportResult{}, ErrNoJournal
	}
	if since.After(until) {
		since, until = until, since
	}
	from := entry.StartOfDay(since)

	all := s.Journal.Entries()
	journal.SortNewestFirst(all)

	result := ReportResult{Since: since, Until: until}
	dist := make(map[string]int)
	for _, e := range all {
		if e.Date.Before(from) || e.Date.After(until) {
			continue
		}
		if n := len(result.Sections); n == 0 || !result.Sections[n-1].Entries[0].Date.SameMonth(e.Date.Time) {
			result.Sections = append(result.Sections, ReportSection{Month: e.Date.Format("January 2006")})
		}
		last := &result.Sections[len(result.Sections)-1]
		last.Entries = append(last.Entries, e)
		dist[mood.Label(e.Mood)]++
		result.Total++
	}
	result.Moods = RankMoods(dist)
	return result, nil
}
