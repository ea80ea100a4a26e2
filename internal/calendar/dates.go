// Package calendar holds the date helpers the tracker works with. Dates are
// plain calendar days in YYYY-MM-DD form; weeks start on Monday.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var ErrInvalidDate = errors.New("calendar: invalid date")

// ParseDate parses a YYYY-MM-DD string into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM month key.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q", ErrInvalidDate, s)
	}
	return t, nil
}

func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// FormatDate renders the calendar day of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return FormatDate(now)
}

// day normalizes t to a UTC midnight carrying the same calendar day, so that
// day arithmetic never crosses DST transitions.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStartOf returns the Monday on or before t. Sunday belongs to the week
// of the Monday six days earlier.
func WeekStartOf(t time.Time) time.Time {
	t = day(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekStart is WeekStartOf for a YYYY-MM-DD date.
func WeekStart(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(WeekStartOf(t)), nil
}

// WeekEnd returns the Sunday closing the week that contains date.
func WeekEnd(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(WeekStartOf(t).AddDate(0, 0, 6)), nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// MonthKey returns the YYYY-MM key of a YYYY-MM-DD date.
func MonthKey(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(MonthLayout), nil
}
