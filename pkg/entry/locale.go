package entry

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type calendarNames struct {
	days        [7]string
	months      [12]string
	shortMonths [12]string
	long        func(day int, month string, year int) string
}

var (
	supportedLocales = []language.Tag{language.English, language.Indonesian}
	localeMatcher    = language.NewMatcher(supportedLocales)

	localeNames = []calendarNames{{
		days: [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		shortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		long: func(day int, month string, year int) string {
			return fmt.Sprintf("%s %d, %d", month, day, year)
		},
	}, {
		days: [7]string{"minggu", "senin", "selasa", "rabu", "kamis", "jumat", "sabtu"},
		months: [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
			"Juli", "Agustus", "September", "Oktober", "November", "Desember"},
		shortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
		long: func(day int, month string, year int) string {
			return fmt.Sprintf("%d %s %d", day, month, year)
		},
	}}
)

// ParseLocale resolves a BCP 47 string to the closest supported locale,
// falling back to English.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx]
}

func namesFor(tag language.Tag) (calendarNames, language.Tag) {
	_, idx, _ := localeMatcher.Match(tag)
	return localeNames[idx], supportedLocales[idx]
}

// DayName is the capitalized weekday of the entry's date, e.g. "Kamis".
func (e *Entry) DayName(tag language.Tag) string {
	names, base := namesFor(tag)
	return cases.Title(base).String(names.days[e.Date.Weekday()])
}

// FormattedDate is the long form date, e.g. "October 15, 2026".
func (e *Entry) FormattedDate(tag language.Tag) string {
	return formatLong(e.Date.Time, tag)
}

// ShortFormattedDate is day and abbreviated month, e.g. "15 Oct".
func (e *Entry) ShortFormattedDate(tag language.Tag) string {
	names, _ := namesFor(tag)
	return fmt.Sprintf("%d %s", e.Date.Day(), names.shortMonths[e.Date.Month()-1])
}

func formatLong(t time.Time, tag language.Tag) string {
	names, _ := namesFor(tag)
	return names.long(t.Day(), names.months[t.Month()-1], t.Year())
}
