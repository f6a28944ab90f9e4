// Package entry models one calendar day of the gratitude journal.
package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/gratitude/pkg/mood"
)

const (
	GratefulForLabel   = "I'm grateful for: "
	MakeGreatLabel     = "What would make today great: "
	AmazingThingsLabel = "Amazing things today: "

	// Placeholder is the composite text of an entry with no reflections.
	Placeholder = "No entry yet today"
)

// New creates an empty entry for the calendar day containing date.
func New(date time.Time) *Entry {
	return &Entry{
		ID:   uuid.NewString(),
		Date: Timestamp{Time: StartOfDay(date)},
	}
}

// Entry is one day's reflection. The three text fields answer the daily prompts.
type Entry struct {
	ID            string     `json:"id"`
	Date          Timestamp  `json:"date"`
	Mood          *mood.Mood `json:"mood"`
	GratefulFor   string     `json:"gratefulFor"`
	MakeGreat     string     `json:"makeGreat"`
	AmazingThings string     `json:"amazingThings"`
}

// With returns a new entry for the same day and ID carrying the given content.
// The receiver is left untouched.
func (e *Entry) With(m *mood.Mood, gratefulFor, makeGreat, amazingThings string) *Entry {
	next := &Entry{
		ID:            e.ID,
		Date:          e.Date,
		GratefulFor:   gratefulFor,
		MakeGreat:     makeGreat,
		AmazingThings: amazingThings,
	}
	if m != nil {
		next.Mood = mood.Ptr(*m)
	}
	return next
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return e.With(e.Mood, e.GratefulFor, e.MakeGreat, e.AmazingThings)
}

// Equal compares entries field by field; dates compare as instants.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == nil && o == nil
	}
	return e.ID == o.ID &&
		e.Date.Equal(o.Date.Time) &&
		mood.Equal(e.Mood, o.Mood) &&
		e.GratefulFor == o.GratefulFor &&
		e.MakeGreat == o.MakeGreat &&
		e.AmazingThings == o.AmazingThings
}

// Contains reports whether any reflection field holds needle, ignoring case.
func (e *Entry) Contains(needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, field := range []string{e.GratefulFor, e.MakeGreat, e.AmazingThings} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// IsEmpty is true when none of the prompts were answered.
func (e *Entry) IsEmpty() bool {
	return e.GratefulFor == "" && e.MakeGreat == "" && e.AmazingThings == ""
}

// CompositeText joins the answered prompts, each behind its label, with a
// blank line between them.
func (e *Entry) CompositeText() string {
	parts := make([]string, 0, 3)
	if e.GratefulFor != "" {
		parts = append(parts, GratefulForLabel+e.GratefulFor)
	}
	if e.MakeGreat != "" {
		parts = append(parts, MakeGreatLabel+e.MakeGreat)
	}
	if e.AmazingThings != "" {
		parts = append(parts, AmazingThingsLabel+e.AmazingThings)
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, "\n\n")
}

func (e *Entry) String() string {
	return e.Date.Format("2006-01-02") + " " + mood.Label(e.Mood)
}
