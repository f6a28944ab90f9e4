// Package reminder computes when the daily "write your journal" nudge is due.
package reminder

import (
	"fmt"
	"time"
)

const (
	Title = "Gratitude Time!"
	Body  = "What are you grateful for today?"
)

// Schedule fires once a day at Hour:Minute local time.
type Schedule struct {
	Hour   int
	Minute int
}

// Parse reads "HH:MM" in 24h form.
func Parse(raw string) (Schedule, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return Schedule{}, fmt.Errorf("reminder: invalid time %q, want HH:MM", raw)
	}
	return Schedule{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// At is the reminder time on the calendar day of now.
func (s Schedule) At(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, s.Hour, s.Minute, 0, 0, now.Location())
}

// Next is the first reminder strictly after now.
func (s Schedule) Next(now time.Time) time.Time {
	at := s.At(now)
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// Due reports whether the reminder should show: today's time has passed and
// nothing has been written today.
func (s Schedule) Due(now time.Time, wroteToday bool) bool {
	return !wroteToday && !now.Before(s.At(now))
}

func (s Schedule) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}
