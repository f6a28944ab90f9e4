package affirm

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/affirmation"
)

var day = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func TestAffirmSkip(t *testing.T) {
	deck := affirmation.DefaultDeck()
	var out bytes.Buffer
	a := &Affirm{On: day, Skip: 1, JSON: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got affirmation.Affirmation
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := deck[(deck.DailyIndex(day)+1)%len(deck)]
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAffirmAll(t *testing.T) {
	var out bytes.Buffer
	a := &Affirm{On: day, All: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, aff := range affirmation.DefaultDeck() {
		if !strings.Contains(out.String(), aff.Author) {
			t.Errorf("missing %q", aff.Author)
		}
	}
}
