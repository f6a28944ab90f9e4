package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != Week {
		t.Fatalf("expected %v, got %v", Week, dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1y 2mo 3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Year + 2*Month + 3*Day
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1y2mo3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowNormalizes(t *testing.T) {
	_, label, err := ParseWindow("10days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "1w3d" {
		t.Fatalf("expected 1w3d, got %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "2w!"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestFormatWindowShort(t *testing.T) {
	if got := FormatWindow(5 * time.Hour); got != "0d" {
		t.Fatalf("expected 0d, got %s", got)
	}
}
