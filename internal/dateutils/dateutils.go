// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutFeed     = "02 Jan 2006" // bank feed export format
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
)

// feedFormats is the ordered list of layouts tried when parsing feed
// dates. The feed's own format comes first.
var feedFormats = []string{
	DateLayoutFeed,
	DateLayoutISO,
	DateLayoutEuropean,
	"02/01/2006",
	"2 January 2006",
	"Jan 2, 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims a date string and collapses repeated whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString parses a date string from a transaction feed, trying
// the feed format first and falling back to other common layouts.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range feedFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToFeedFormat formats a time.Time the way the bank feed writes dates.
func ToFeedFormat(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutFeed)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Truncate drops the time-of-day component of a date.
func Truncate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// WithinRange reports whether date falls inside the inclusive [from, to]
// range. A zero from or to leaves that side of the range open.
func WithinRange(date, from, to time.Time) bool {
	d := Truncate(date)
	if !from.IsZero() && d.Before(Truncate(from)) {
		return false
	}
	if !to.IsZero() && d.After(Truncate(to)) {
		return false
	}
	return true
}
