package remind

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/gratitude/pkg/reminder"
	"tableflip.dev/gratitude/pkg/runner/internal/fixture"
)

func TestRemind(t *testing.T) {
	evening := reminder.Schedule{Hour: 19, Minute: 0}
	late := reminder.Schedule{Hour: 21, Minute: 0}

	tests := map[string]struct {
		schedule reminder.Schedule
		wrote    bool
		quiet    bool
		want     string
	}{
		"due":           {schedule: evening, want: reminder.Body},
		"not yet":       {schedule: late, want: "Next reminder at 2026-10-15 21:00"},
		"already":       {schedule: evening, wrote: true, want: "Today's entry is written."},
		"quiet":         {schedule: late, quiet: true, want: ""},
		"quiet but due": {schedule: evening, quiet: true, want: reminder.Title},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := fixture.Service(t)
			if tc.wrote {
				fixture.Write(t, svc, 0, "", "done")
			}
			var out bytes.Buffer
			r := &Remind{Schedule: tc.schedule, Now: fixture.Now, Quiet: tc.quiet, Service: svc, Out: &out}
			if err := r.Do(context.Background()); err != nil {
				t.Fatalf("do: %v", err)
			}
			if tc.want == "" {
				if out.Len() != 0 {
					t.Fatalf("expected no output, got %q", out.String())
				}
				return
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, out.String())
			}
		})
	}
}

func TestRemindNextDay(t *testing.T) {
	svc, _ := fixture.Service(t)
	fixture.Write(t, svc, 0, "", "done")
	var out bytes.Buffer
	r := &Remind{Schedule: reminder.Schedule{Hour: 8}, Now: fixture.Now, Service: svc, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	want := fixture.Now.AddDate(0, 0, 1).Format("2006-01-02") + " 08:00"
	if !strings.Contains(out.String(), want) {
		t.Fatalf("expected %q in %q", want, out.String())
	}
}
