// Package affirmation provides the daily affirmation deck and a carousel for
// flipping through it.
package affirmation

import (
	"fmt"
	"time"
)

type Affirmation struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (a Affirmation) String() string {
	return fmt.Sprintf("%q - %s", a.Text, a.Author)
}

// Deck is an ordered, non-empty set of affirmations.
type Deck []Affirmation

func DefaultDeck() Deck {
	return Deck{
		{Text: "You are enough, exactly as you are.", Author: "Your Heart"},
		{Text: "Your energy creates your reality.", Author: "Universe"},
		{Text: "Peace begins with a single breath.", Author: "Inner Calm"},
		{Text: "You are growing in beautiful ways.", Author: "Growth"},
		{Text: "Today is full of quiet miracles.", Author: "Hope"},
		{Text: "You deserve rest and kindness.", Author: "Self Love"},
		{Text: "Your presence lights up the world.", Author: "The World"},
		{Text: "You are becoming your highest self.", Author: "Destiny"},
	}
}

// DailyIndex picks the deck position for the calendar day of date. Every day
// of the year moves one card along, so the pick is stable within a day.
func (d Deck) DailyIndex(date time.Time) int {
	if len(d) == 0 {
		return 0
	}
	days := date.Year()*366 + date.YearDay()
	return days % len(d)
}

// Daily is the day's affirmation; an empty deck falls back to DefaultDeck.
func (d Deck) Daily(date time.Time) Affirmation {
	if len(d) == 0 {
		d = DefaultDeck()
	}
	return d[d.DailyIndex(date)]
}

// Carousel walks a deck with wrap-around in both directions.
type Carousel struct {
	deck Deck
	pos  int
}

// NewCarousel starts at the day's affirmation.
func NewCarousel(d Deck, date time.Time) *Carousel {
	if len(d) == 0 {
		d = DefaultDeck()
	}
	return &Carousel{deck: d, pos: d.DailyIndex(date)}
}

func (c *Carousel) Current() Affirmation {
	return c.deck[c.pos]
}

func (c *Carousel) Next() Affirmation {
	c.pos = (c.pos + 1) % len(c.deck)
	return c.Current()
}

func (c *Carousel) Previous() Affirmation {
	c.pos = (c.pos - 1 + len(c.deck)) % len(c.deck)
	return c.Current()
}

// Skip moves n cards, backwards when n is negative.
func (c *Carousel) Skip(n int) Affirmation {
	size := len(c.deck)
	c.pos = ((c.pos+n)%size + size) % size
	return c.Current()
}
