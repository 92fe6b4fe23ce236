package smsparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// The leading guard keeps "2024-01-15" from reading as 24-01-15.
	numericDateRe = regexp.MustCompile(`(?:^|\D)(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
	monthDateRe   = regexp.MustCompile(`(?i)(\d{1,2})[-\s](Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[-\s](\d{2,4})`)
	isoDateRe     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// dateExtractors are tried in order; the first calendar-valid date wins.
var dateExtractors = []func(string) (time.Time, bool){
	numericDate,
	monthNameDate,
	isoDate,
}

// ExtractDate returns the transaction date named in text, or the calendar
// day of now when no pattern yields a real date.
func ExtractDate(text string, now time.Time) time.Time {
	for _, extract := range dateExtractors {
		if d, ok := extract(text); ok {
			return d
		}
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 15-01-26, 15/1/2026
func numericDate(text string) (time.Time, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	return calendarDate(m[3], month, m[1])
}

// 15 Jan 2024, 15-jan-24
func monthNameDate(text string) (time.Time, bool) {
	m := monthDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return calendarDate(m[3], int(monthAbbrev[strings.ToLower(m[2])]), m[1])
}

// 2024-01-15
func isoDate(text string) (time.Time, bool) {
	m := isoDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	return calendarDate(m[1], month, m[3])
}

// calendarDate builds a UTC date and reports false if the parts do not name
// a real day. Two-digit years are taken to be in the 2000s.
func calendarDate(year string, month int, day string) (time.Time, bool) {
	switch len(year) {
	case 2:
		year = "20" + year
	case 4:
	default:
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(month), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow (Feb 30 -> Mar 2); reject that.
	if t.Day() != d || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}
