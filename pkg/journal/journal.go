// Package journal owns the in-memory collection of gratitude entries, keeps
// one entry per calendar day, and writes the whole collection back to a blob
// store after every mutation.
package journal

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/store"
)

// StorageKey is the blob key holding the serialized collection.
const StorageKey = "gratitude_entries"

type Option func(*Journal)

// WithClock overrides time.Now, used for "today".
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithLocation sets the location calendar days are computed in.
func WithLocation(loc *time.Location) Option {
	return func(j *Journal) { j.loc = loc }
}

// WithKey stores the collection under a key other than StorageKey.
func WithKey(key string) Option {
	return func(j *Journal) { j.key = key }
}

func WithLogger(l *slog.Logger) Option {
	return func(j *Journal) { j.log = l }
}

// Journal is safe for concurrent use. Mutations replace the entries slice
// wholesale, so readers never observe a half-applied update.
type Journal struct {
	mu      sync.RWMutex
	entries []*entry.Entry

	blobs store.Blobs
	key   string
	now   func() time.Time
	loc   *time.Location
	log   *slog.Logger
}

// Open builds a journal over blobs and loads any saved collection. A missing
// or undecodable blob yields an empty journal.
func Open(blobs store.Blobs, opts ...Option) *Journal {
	j := &Journal{
		blobs: blobs,
		key:   StorageKey,
		now:   time.Now,
		loc:   time.Local,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(j)
	}

	entries, err := j.read()
	if err != nil {
		j.log.Warn("journal: starting empty", "key", j.key, "error", err)
		entries = []*entry.Entry{}
	}
	j.entries = entries
	return j
}

// read loads and decodes the blob; a missing key is an empty collection.
func (j *Journal) read() ([]*entry.Entry, error) {
	data, err := j.blobs.Read(j.key)
	if errors.Is(err, store.ErrNotFound) {
		return []*entry.Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries, err := entry.UnmarshalList(data)
	if err != nil {
		return nil, fmt.Errorf("journal: decode %s: %w", j.key, err)
	}
	return j.dedupe(entries), nil
}

// dedupe drops later entries for a day already seen, keeping the one-per-day
// invariant even if the blob was edited by hand.
func (j *Journal) dedupe(entries []*entry.Entry) []*entry.Entry {
	seen := make(map[time.Time]bool, len(entries))
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		day := j.day(e.Date.Time)
		if seen[day] {
			j.log.Warn("journal: dropping duplicate entry", "id", e.ID, "day", day.Format("2006-01-02"))
			continue
		}
		seen[day] = true
		out = append(out, e)
	}
	return out
}

func (j *Journal) day(t time.Time) time.Time {
	return entry.StartOfDay(t.In(j.loc))
}

// Today is the start of the current calendar day.
func (j *Journal) Today() time.Time {
	return j.day(j.now())
}

func (j *Journal) indexOf(day time.Time) int {
	for i, e := range j.entries {
		if (entry.Timestamp{Time: e.Date.In(j.loc)}).SameDay(day) {
			return i
		}
	}
	return -1
}

// Upsert writes the reflections for the day containing date. Text is trimmed;
// if all three fields end up empty nothing happens. An existing entry for the
// day is replaced in place, a new one goes to the front. The collection is
// saved before Upsert returns and a failed save is reported, although the
// in-memory change is kept.
func (j *Journal) Upsert(date time.Time, m *mood.Mood, gratefulFor, makeGreat, amazingThings string) error {
	gratefulFor = strings.TrimSpace(gratefulFor)
	makeGreat = strings.TrimSpace(makeGreat)
	amazingThings = strings.TrimSpace(amazingThings)
	if gratefulFor == "" && makeGreat == "" && amazingThings == "" {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	day := j.day(date)
	next := make([]*entry.Entry, 0, len(j.entries)+1)
	if i := j.indexOf(day); i >= 0 {
		next = append(next, j.entries...)
		next[i] = j.entries[i].With(m, gratefulFor, makeGreat, amazingThings)
	} else {
		next = append(next, entry.New(day).With(m, gratefulFor, makeGreat, amazingThings))
		next = append(next, j.entries...)
	}
	j.entries = next
	return j.saveLocked()
}

// Delete removes the entry for the day containing date, reporting whether
// there was one.
func (j *Journal) Delete(date time.Time) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexOf(j.day(date))
	if i < 0 {
		return false, nil
	}
	next := make([]*entry.Entry, 0, len(j.entries)-1)
	next = append(next, j.entries[:i]...)
	next = append(next, j.entries[i+1:]...)
	j.entries = next
	return true, j.saveLocked()
}

// Save serializes the whole collection and writes it to the blob store.
func (j *Journal) Save() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.saveLocked()
}

// saveLocked runs under the write lock so saves land in mutation order.
func (j *Journal) saveLocked() error {
	data, err := entry.MarshalList(j.entries)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if err := j.blobs.Write(j.key, data); err != nil {
		j.log.Error("journal: save failed", "key", j.key, "entries", len(j.entries), "error", err)
		return fmt.Errorf("journal: save: %w", err)
	}
	j.log.Debug("journal: saved", "key", j.key, "entries", len(j.entries))
	return nil
}

// Reload replaces the collection with what is currently stored. Unlike Open,
// a corrupt blob is an error and the current collection is kept.
func (j *Journal) Reload() error {
	entries, err := j.read()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.entries = entries
	j.mu.Unlock()
	return nil
}

// Entries returns a copy of the collection in its current order.
func (j *Journal) Entries() []*entry.Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return cloneAll(j.entries)
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

func cloneAll(entries []*entry.Entry) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}
