// Package dateutils provides the date operations used throughout the application:
// layout-based parsing for user supplied reference dates and natural-language
// date extraction from transcripts.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	time.RFC3339,
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
	"02/01/2006",
	DateLayoutWithMonth,
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format. Layouts without a zone are
// interpreted in loc (UTC when nil).
func ParseDate(dateStr string, loc *time.Location) (time.Time, string, error) {
	if loc == nil {
		loc = time.UTC
	}
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout
// If no layout is provided, DateLayoutISO is used
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToRFC3339 formats t for machine readable output; the zero time yields "".
func ToRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}

// StartOfDay returns midnight of the given date in its own location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// NextWeekday returns the first date on or after from that falls on day,
// keeping from's clock time.
func NextWeekday(from time.Time, day time.Weekday) time.Time {
	delta := (int(day) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}
