package app

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/mood"
)

// Service provides high-level operations over a journal.
// It keeps ordering and ranking rules in one place so CLIs and UIs share them.
type Service struct {
	Journal *journal.Journal
}

var (
	ErrNoJournal = errors.New("app: no journal configured")
	// ErrEmptyEntry is returned by Write when every prompt was left blank.
	ErrEmptyEntry = errors.New("app: nothing to save, all prompts are empty")
)

// Write saves the day's reflections and returns the stored entry. created
// reports whether the day had no entry before.
func (s *Service) Write(_ context.Context, date time.Time, m *mood.Mood, gratefulFor, makeGreat, amazingThings string) (e *entry.Entry, created bool, err error) {
	if s.Journal == nil {
		return nil, false, ErrNoJournal
	}
	gratefulFor = strings.TrimSpace(gratefulFor)
	makeGreat = strings.TrimSpace(makeGreat)
	amazingThings = strings.TrimSpace(amazingThings)
	if gratefulFor == "" && makeGreat == "" && amazingThings == "" {
		return nil, false, ErrEmptyEntry
	}
	_, existed := s.Journal.EntryForDate(date)
	if err := s.Journal.Upsert(date, m, gratefulFor, makeGreat, amazingThings); err != nil {
		return nil, false, err
	}
	e, ok := s.Journal.EntryForDate(date)
	if !ok {
		return nil, false, ErrEmptyEntry
	}
	return e, !existed, nil
}

// Today returns today's entry, if any.
func (s *Service) Today(_ context.Context) (*entry.Entry, bool, error) {
	if s.Journal == nil {
		return nil, false, ErrNoJournal
	}
	e, ok := s.Journal.EntryForToday()
	return e, ok, nil
}

// On returns the entry for the calendar day of date, if any.
func (s *Service) On(_ context.Context, date time.Time) (*entry.Entry, bool, error) {
	if s.Journal == nil {
		return nil, false, ErrNoJournal
	}
	e, ok := s.Journal.EntryForDate(date)
	return e, ok, nil
}

// Delete removes the entry for the calendar day of date.
func (s *Service) Delete(_ context.Context, date time.Time) (bool, error) {
	if s.Journal == nil {
		return false, ErrNoJournal
	}
	return s.Journal.Delete(date)
}

// History lists matching entries, newest first.
func (s *Service) History(_ context.Context, search string, m *mood.Mood) ([]*entry.Entry, error) {
	if s.Journal == nil {
		return nil, ErrNoJournal
	}
	entries := s.Journal.FilteredEntries(search, m)
	journal.SortNewestFirst(entries)
	return entries, nil
}

// MoodCount is one bar of the mood chart.
type MoodCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsResult summarizes the whole journal.
type StatsResult struct {
	Total  int         `json:"total"`
	Streak int         `json:"streak"`
	Moods  []MoodCount `json:"moods"`
}

// Stats returns the streak and the mood distribution ranked by count.
func (s *Service) Stats(_ context.Context) (StatsResult, error) {
	if s.Journal == nil {
		return StatsResult{}, ErrNoJournal
	}
	return StatsResult{
		Total:  s.Journal.Len(),
		Streak: s.Journal.StreakDays(),
		Moods:  RankMoods(s.Journal.MoodDistribution()),
	}, nil
}

// RankMoods sorts a distribution by count descending, then label.
func RankMoods(dist map[string]int) []MoodCount {
	ranked := make([]MoodCount, 0, len(dist))
	for label, count := range dist {
		ranked = append(ranked, MoodCount{Label: label, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Label < ranked[j].Label
	})
	return ranked
}
