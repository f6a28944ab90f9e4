package reminder

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	s, err := Parse("20:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Hour != 20 || s.Minute != 0 || s.String() != "20:00" {
		t.Fatalf("unexpected schedule %+v", s)
	}
	if _, err := Parse("8pm"); err == nil {
		t.Fatal("expected error for 8pm")
	}
}

func TestNext(t *testing.T) {
	s := Schedule{Hour: 20}
	before := time.Date(2026, 10, 15, 19, 0, 0, 0, time.UTC)
	if got := s.Next(before); !got.Equal(time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected next %v", got)
	}
	exactly := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	if got := s.Next(exactly); !got.Equal(time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected next %v", got)
	}
}

func TestDue(t *testing.T) {
	s := Schedule{Hour: 20, Minute: 30}
	early := time.Date(2026, 10, 15, 20, 29, 0, 0, time.UTC)
	late := time.Date(2026, 10, 15, 21, 0, 0, 0, time.UTC)
	if s.Due(early, false) {
		t.Fatal("not due before the reminder time")
	}
	if !s.Due(late, false) {
		t.Fatal("due after the reminder time")
	}
	if s.Due(late, true) {
		t.Fatal("not due once written")
	}
}
