package dateutils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-10 is a Wednesday.
var referenceNow = time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

func TestExtractor_Yesterday(t *testing.T) {
	e := NewExtractor(true)

	m, ok := e.Extract("spent 200 on groceries yesterday", referenceNow)
	require.True(t, ok)
	assert.Equal(t, "2024-01-09", ToISODate(m.Time))
	assert.Equal(t, "yesterday", m.Text)
}

func TestExtractor_ForwardWeekday(t *testing.T) {
	e := NewExtractor(true)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"upcoming monday", "pay rent monday", "2024-01-15"},
		{"with on", "pay rent on friday", "2024-01-12"},
		{"same day counts", "dinner wednesday", "2024-01-10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := e.Extract(tc.input, referenceNow)
			require.True(t, ok)
			assert.Equal(t, tc.expected, ToISODate(m.Time))
			assert.True(t, strings.Contains(tc.input, m.Text), "span %q must come from the input", m.Text)
		})
	}
}

func TestExtractor_SpanFromMatchOffset(t *testing.T) {
	e := NewExtractor(true)

	tests := []struct {
		name     string
		input    string
		text     string
		expected string
	}{
		{"word containing the phrase", "spent 300 at todays market today", "today", "2024-01-10"},
		{"multibyte text before phrase", "İstanbul trip 300 monday", "monday", "2024-01-15"},
		{"leading on included", "paid 500 on monday", "on monday", "2024-01-15"},
		{"leading on any case", "Dinner On Friday", "On Friday", "2024-01-12"},
		{"trailing punctuation trimmed", "taxi yesterday!", "yesterday", "2024-01-09"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := e.Extract(tc.input, referenceNow)
			require.True(t, ok)
			assert.Equal(t, tc.text, m.Text)
			assert.Equal(t, tc.text, tc.input[m.Start:m.End])
			assert.Equal(t, tc.expected, ToISODate(m.Time))
		})
	}
}

func TestExtractor_TextKeepsOriginalCase(t *testing.T) {
	e := NewExtractor(true)

	m, ok := e.Extract("Lunch Yesterday 150", referenceNow)
	require.True(t, ok)
	assert.Equal(t, "Yesterday", m.Text)
}

func TestExtractor_NoDate(t *testing.T) {
	e := NewExtractor(true)

	for _, input := range []string{"add dinner ₹300", "", "   ", "paanch sau rupees groceries"} {
		_, ok := e.Extract(input, referenceNow)
		assert.False(t, ok, input)
	}
}

func TestBareWeekday(t *testing.T) {
	day, ok := bareWeekday("on Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, day)

	_, ok = bareWeekday("next monday")
	assert.False(t, ok)
}
