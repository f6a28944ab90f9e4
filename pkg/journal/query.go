package journal

import (
	"sort"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
)

func (j *Journal) EntryForToday() (*entry.Entry, bool) {
	return j.EntryForDate(j.now())
}

// EntryForDate returns the entry for the calendar day containing date.
func (j *Journal) EntryForDate(date time.Time) (*entry.Entry, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if i := j.indexOf(j.day(date)); i >= 0 {
		return j.entries[i].Clone(), true
	}
	return nil, false
}

// StreakDays counts consecutive calendar days with an entry, walking back from
// the most recent entry. The run does not have to reach today: a streak that
// ended last week still reports its length.
func (j *Journal) StreakDays() int {
	j.mu.RLock()
	days := make([]time.Time, 0, len(j.entries))
	for _, e := range j.entries {
		days = append(days, j.day(e.Date.Time))
	}
	j.mu.RUnlock()

	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(a, b int) bool { return days[a].After(days[b]) })

	streak := 1
	prev := days[0]
	for _, d := range days[1:] {
		if d.Equal(prev) {
			continue
		}
		if !prev.AddDate(0, 0, -1).Equal(d) {
			break
		}
		streak++
		prev = d
	}
	return streak
}

// MoodDistribution counts entries per mood, with mood.UnsetLabel for entries
// that have none.
func (j *Journal) MoodDistribution() map[string]int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	dist := make(map[string]int)
	for _, e := range j.entries {
		dist[mood.Label(e.Mood)]++
	}
	return dist
}

// FilteredEntries returns entries whose reflections contain search (ignoring
// case) and, when filter is set, whose mood equals it. Order is the
// collection's order.
func (j *Journal) FilteredEntries(search string, filter *mood.Mood) []*entry.Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*entry.Entry, 0)
	for _, e := range j.entries {
		if !e.Contains(search) {
			continue
		}
		if filter != nil && (e.Mood == nil || *e.Mood != *filter) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

// SortNewestFirst orders entries by date, most recent first.
func SortNewestFirst(entries []*entry.Entry) {
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Date.After(entries[b].Date.Time)
	})
}
