package entry

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// referenceEpoch is 2001-01-01T00:00:00Z in Unix seconds, the zero point of
// numeric dates in legacy blobs.
const referenceEpoch = 978307200

// Timestamp is a time that serializes as RFC3339 keeping its UTC offset, so
// the calendar day survives a round trip.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	then = then.In(t.Location())
	if t.Day() == then.Day() &&
		t.Month() == then.Month() &&
		t.Year() == then.Year() {
		return true
	}
	return false
}

func (t Timestamp) SameMonth(then time.Time) bool {
	then = then.In(t.Location())
	if t.Month() == then.Month() &&
		t.Year() == then.Year() {
		return true
	}
	return false
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		// Older blobs carried seconds since the 2001-01-01 reference date.
		var seconds float64
		if err2 := json.Unmarshal(b, &seconds); err2 != nil {
			return err
		}
		sec, frac := math.Modf(seconds)
		t.Time = time.Unix(referenceEpoch+int64(sec), int64(frac*1e9)).Local()
		return nil
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Format(time.RFC3339)
}
