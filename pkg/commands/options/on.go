package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the journal day a command works on.
type OnOptions struct {
	OnString string

	// Now is used for relative dates; nil means time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-10-15", --on="10/15" or --on=yesterday.`)
}

func (o *OnOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// GetOn resolves the flag to a local date; an empty flag means today.
func (o *OnOptions) GetOn() (time.Time, error) {
	now := o.now()
	switch strings.ToLower(strings.TrimSpace(o.OnString)) {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-M-D, M/D, today or yesterday", o.OnString)
		}
		short := t
		t = time.Date(now.Year(), short.Month(), short.Day(), 0, 0, 0, 0, now.Location())
		// A journal looks back: 12/30 typed in January means last December.
		if t.After(now) {
			t = time.Date(now.Year()-1, short.Month(), short.Day(), 0, 0, 0, 0, now.Location())
		}
		if t.Month() != short.Month() || t.Day() != short.Day() {
			return time.Time{}, fmt.Errorf("invalid date %q, %d has no %s %d", o.OnString, t.Year(), short.Month(), short.Day())
		}
	}
	return t, nil
}
