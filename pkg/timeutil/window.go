package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the report window used when none is provided.
	DefaultWindow = "1w"

	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      Day,
		"day":    Day,
		"days":   Day,
		"w":      Week,
		"wk":     Week,
		"wks":    Week,
		"week":   Week,
		"weeks":  Week,
		"mo":     Month,
		"month":  Month,
		"months": Month,
		"y":      Year,
		"yr":     Year,
		"year":   Year,
		"years":  Year,
	}
)

// ParseWindow parses a journal window such as "1w", "3d" or "1y2mo" and
// returns its duration along with a compact label. Entries are whole days,
// so the smallest unit is a day. An empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(strings.TrimSpace(remaining)) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}

		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a window using year/month/week/day tokens. Anything
// shorter than a day is dropped.
func FormatWindow(d time.Duration) string {
	units := []struct {
		label string
		value time.Duration
	}{
		{"y", Year},
		{"mo", Month},
		{"w", Week},
		{"d", Day},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}
