// Package textutils provides text cleanup utilities for transcripts.
package textutils

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"fjacquet/voice-ledger/internal/models"
)

var (
	currencyWords = regexp.MustCompile(`(?i)[₹$€]|\brs\b\.?|\brupees?\b|\brupay\b|\binr\b|\bdollars?\b|\busd\b|\beuros?\b|\beur\b`)
)

// DescriptionCleaner turns a transcript into a short human readable note.
// It is safe for concurrent use.
type DescriptionCleaner struct {
	fillers     *regexp.Regexp
	placeholder string
}

// NewDescriptionCleaner builds a cleaner removing the given filler words
// (whole words, any case). An empty placeholder falls back to
// models.DescriptionPlaceholder.
func NewDescriptionCleaner(fillers []string, placeholder string) *DescriptionCleaner {
	if placeholder == "" {
		placeholder = models.DescriptionPlaceholder
	}

	var quoted []string
	for _, f := range fillers {
		f = strings.TrimSpace(f)
		if f != "" {
			quoted = append(quoted, regexp.QuoteMeta(f))
		}
	}

	c := &DescriptionCleaner{placeholder: placeholder}
	if len(quoted) > 0 {
		c.fillers = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return c
}

// Placeholder returns the note used when nothing is left after cleanup.
func (c *DescriptionCleaner) Placeholder() string {
	return c.placeholder
}

// Span is a byte range [Start, End) of a transcript.
type Span struct {
	Start int
	End   int
}

// Clean removes the first occurrence of each span from raw, then the filler
// words and currency cues, and collapses whitespace. Spans go first so that
// a matched amount such as "rs 300" is excised whole.
func (c *DescriptionCleaner) Clean(raw string, spans ...string) string {
	var ranges []Span
	for _, span := range spans {
		if strings.TrimSpace(span) == "" {
			continue
		}
		if i := strings.Index(raw, span); i >= 0 {
			ranges = append(ranges, Span{Start: i, End: i + len(span)})
		}
	}
	return c.CleanSpans(raw, ranges...)
}

// CleanSpans is Clean with the excised parts given as byte offsets into raw.
// Out of range spans are ignored and overlapping spans are merged.
func (c *DescriptionCleaner) CleanSpans(raw string, spans ...Span) string {
	text := excise(raw, spans)

	if c.fillers != nil {
		text = c.fillers.ReplaceAllString(text, " ")
	}
	text = currencyWords.ReplaceAllString(text, " ")
	text = joinWords(text)

	if text == "" {
		return c.placeholder
	}
	return text
}

// joinWords collapses whitespace and drops tokens with no letter or digit,
// such as the "!" left behind by "lunch 300!".
func joinWords(text string) string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		if strings.IndexFunc(f, isWordRune) >= 0 {
			words = append(words, f)
		}
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func excise(raw string, spans []Span) string {
	valid := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start >= 0 && s.Start < s.End && s.End <= len(raw) {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return raw
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].Start < valid[j].Start })

	var b strings.Builder
	pos := 0
	for _, s := range valid {
		if s.End <= pos {
			continue
		}
		if s.Start > pos {
			b.WriteString(raw[pos:s.Start])
		}
		b.WriteString(" ")
		pos = s.End
	}
	b.WriteString(raw[pos:])
	return b.String()
}

var defaultCleaner = NewDescriptionCleaner(models.DefaultFillers(), models.DescriptionPlaceholder)

// CleanDescription cleans raw with the default filler list and placeholder.
func CleanDescription(raw string, spans ...string) string {
	return defaultCleaner.Clean(raw, spans...)
}
