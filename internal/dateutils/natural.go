package dateutils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateMatch is a date phrase found in a transcript.
type DateMatch struct {
	Time time.Time
	// Text is the phrase exactly as it appears in the transcript, which is
	// text[Start:End].
	Text  string
	Start int
	End   int
}

// leadingOn is a preposition directly before a date phrase; it belongs to
// the phrase ("on friday") but the weekday rule does not capture it.
var leadingOn = regexp.MustCompile(`(?i)\bon\s+$`)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// Extractor finds the first date or time expression in free text.
type Extractor struct {
	parser       *when.Parser
	forwardDates bool
}

// dateRules is the English rule set minus the casual time-of-day rule; in
// spoken expenses a meal word names a category, not a time.
var dateRules = []rules.Rule{
	en.Weekday(rules.Override),
	en.CasualDate(rules.Override),
	en.Hour(rules.Override),
	en.HourMinute(rules.Override),
	en.Deadline(rules.Override),
	en.PastTime(rules.Override),
	en.ExactMonthDate(rules.Override),
}

// NewExtractor creates an Extractor with the English and common rule sets.
// With forwardDates set, a bare weekday resolves to its next occurrence on or
// after the reference day instead of the parser's own choice.
func NewExtractor(forwardDates bool) *Extractor {
	w := when.New(nil)
	w.Add(dateRules...)
	w.Add(common.All...)
	return &Extractor{parser: w, forwardDates: forwardDates}
}

// Extract returns the first date phrase of text resolved against now.
func (e *Extractor) Extract(text string, now time.Time) (DateMatch, bool) {
	if strings.TrimSpace(text) == "" {
		return DateMatch{}, false
	}

	r, err := e.parser.Parse(text, now)
	if err != nil || r == nil {
		return DateMatch{}, false
	}

	start, end := r.Index, r.Index+len(r.Text)
	if start < 0 || end > len(text) {
		return DateMatch{}, false
	}
	// rule captures may carry surrounding spaces or punctuation
	for start < end {
		c, size := utf8.DecodeRuneInString(text[start:end])
		if isWordRune(c) {
			break
		}
		start += size
	}
	for end > start {
		c, size := utf8.DecodeLastRuneInString(text[start:end])
		if isWordRune(c) {
			break
		}
		end -= size
	}
	if start == end {
		return DateMatch{}, false
	}
	if loc := leadingOn.FindStringIndex(text[:start]); loc != nil {
		start = loc[0]
	}
	phrase := text[start:end]

	resolved := r.Time
	if e.forwardDates {
		if day, ok := bareWeekday(phrase); ok {
			resolved = NextWeekday(now, day)
		}
	}

	return DateMatch{Time: resolved, Text: phrase, Start: start, End: end}, true
}

func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// bareWeekday reports whether phrase is a weekday name with at most an "on"
// in front of it.
func bareWeekday(phrase string) (time.Weekday, bool) {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 2 && words[0] == "on" {
		words = words[1:]
	}
	if len(words) != 1 {
		return 0, false
	}
	day, ok := weekdays[words[0]]
	return day, ok
}
