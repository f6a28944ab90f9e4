// Package mood defines the closed vocabulary of moods an entry can carry.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is a single label from the fixed mood vocabulary.
type Mood string

const (
	Grateful Mood = "Grateful"
	Happy    Mood = "Happy"
	Calm     Mood = "Calm"
	Loved    Mood = "Loved"
	Strong   Mood = "Strong"
)

// UnsetLabel is the distribution bucket for entries without a mood. It is not
// itself a valid Mood.
const UnsetLabel = "Unknown"

// ErrUnknown is returned by Parse for labels outside the vocabulary.
var ErrUnknown = errors.New("mood: unknown mood")

// Glyph describes how a mood is presented.
type Glyph struct {
	Mood    Mood
	Emoji   string
	Color   string
	Aliases []string
}

func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Mood:    Grateful,
		Emoji:   "🙏",
		Color:   "#7fb8a4",
		Aliases: []string{"thankful", "syukur"},
	}, {
		Mood:    Happy,
		Emoji:   "😊",
		Color:   "#f2c14e",
		Aliases: []string{"joy", "senang"},
	}, {
		Mood:    Calm,
		Emoji:   "🧘",
		Color:   "#80cccc",
		Aliases: []string{"peaceful", "tenang"},
	}, {
		Mood:    Loved,
		Emoji:   "❤️",
		Color:   "#e57a8a",
		Aliases: []string{"love", "dicintai"},
	}, {
		Mood:    Strong,
		Emoji:   "💪",
		Color:   "#9b8fd9",
		Aliases: []string{"brave", "kuat"},
	}}
}

// All returns the vocabulary in display order.
func All() []Mood {
	glyphs := DefaultGlyphs()
	all := make([]Mood, 0, len(glyphs))
	for _, g := range glyphs {
		all = append(all, g.Mood)
	}
	return all
}

// Parse resolves a label, emoji, or alias to a Mood.
func Parse(raw string) (Mood, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("%w: empty label", ErrUnknown)
	}
	for _, g := range DefaultGlyphs() {
		if strings.ToLower(string(g.Mood)) == needle || g.Emoji == needle {
			return g.Mood, nil
		}
		for _, alias := range g.Aliases {
			if alias == needle {
				return g.Mood, nil
			}
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknown, raw)
}

// ParseOptional is Parse for optional flags: an empty label yields nil.
func ParseOptional(raw string) (*Mood, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Ptr returns a pointer to m.
func Ptr(m Mood) *Mood {
	return &m
}

// Label renders an optional mood, using UnsetLabel when m is nil.
func Label(m *Mood) string {
	if m == nil {
		return UnsetLabel
	}
	return string(*m)
}

// Equal reports whether two optional moods are both unset or carry the same label.
func Equal(a, b *Mood) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m Mood) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Mood == m {
			return g
		}
	}
	return Glyph{Mood: m}
}

func (m Mood) String() string {
	return string(m)
}
