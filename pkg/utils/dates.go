package utils

import (
	"fmt"
	"strings"
	"time"
)

var timeLayouts = []string{TIME_LAYOUT, TIME_LAYOUT_SECS, TIME_LAYOUT_HHMM}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DATE_LAYOUT, strings.TrimSpace(date))
}

// ParseInstant combines a calendar date with an optional wall-clock time.
// A blank time means midnight. Times may be "15:04", "15:04:05" or "1504".
func ParseInstant(date, clock string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return day, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s", clock)
}

// DayDiff returns the number of calendar days from a to b
func DayDiff(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// YearOf returns the YYYY prefix of a date string, or "" when absent
func YearOf(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return date[:4]
}

// MonthOf returns the YYYY-MM prefix of a date string, or "" when absent
func MonthOf(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 7 || YearOf(date) == "" || date[4] != '-' {
		return ""
	}
	return date[:7]
}
