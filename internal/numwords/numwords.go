// Package numwords converts spelled-out quantities into numbers.
//
// The vocabulary covers English and Hindi/Hinglish (Latin transliteration)
// units, tens and the scale words hundred/sau, thousand/hazaar/k, lakh and
// million. Digits found among the tokens take precedence over words.
package numwords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// scaleThreshold is the smallest value treated as a multiplier.
const scaleThreshold = 100

var vocabulary = map[string]int64{
	// English units and teens
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,

	// English tens
	"twenty":  20,
	"thirty":  30,
	"forty":   40,
	"fifty":   50,
	"sixty":   60,
	"seventy": 70,
	"eighty":  80,
	"ninety":  90,

	// Hindi/Hinglish units and teens
	"shunya":  0,
	"ek":      1,
	"do":      2,
	"teen":    3,
	"char":    4,
	"chaar":   4,
	"paanch":  5,
	"panch":   5,
	"chhe":    6,
	"saat":    7,
	"aath":    8,
	"nau":     9,
	"das":     10,
	"gyarah":  11,
	"barah":   12,
	"baarah":  12,
	"treh":    13,
	"terah":   13,
	"chaudah": 14,
	"pandrah": 15,
	"solah":   16,
	"satrah":  17,
	"atharah": 18,
	"unnis":   19,

	// Hindi/Hinglish tens
	"bees":    20,
	"tees":    30,
	"chaalis": 40,
	"pachaas": 50,
	"pachas":  50,
	"saath":   60,
	"sattar":  70,
	"assi":    80,
	"nabbe":   90,

	// Scale words
	"hundred":  100,
	"sau":      100,
	"thousand": 1000,
	"hazaar":   1000,
	"hazar":    1000,
	"k":        1000,
	"lakh":     100000,
	"lakhs":    100000,
	"million":  1000000,
}

var (
	plainNumber    = regexp.MustCompile(`^\d+(\.\d+)?$`)
	thousandSuffix = regexp.MustCompile(`^(\d+(?:\.\d+)?)k$`)
	currencyNoise  = regexp.MustCompile(`₹|\brs\b\.?|\brupees?\b|\brupay\b`)
	tokenSeparator = regexp.MustCompile(`[\s\-]+`)
)

// IsNumberWord reports whether token (any case) belongs to the vocabulary.
func IsNumberWord(token string) bool {
	_, ok := vocabulary[strings.ToLower(token)]
	return ok
}

// Words returns the vocabulary, longest words first, for building matchers.
func Words() []string {
	words := make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}

// Tokenize lowercases text, drops rupee cues and commas and splits it on
// whitespace and hyphens.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = currencyNoise.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, ",", " ")

	var tokens []string
	for _, t := range tokenSeparator.Split(text, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Normalize returns the quantity spelled out in text.
//
// A purely numeric token (optionally with a "k" suffix) short-circuits the
// word arithmetic. Otherwise unit and tens words add into a running group,
// and each scale word multiplies the group (an empty group counts as one)
// into the total. The second result is false when no number was recognised;
// an explicit "zero" or "shunya" yields (0, true).
func Normalize(text string) (decimal.Decimal, bool) {
	tokens := Tokenize(text)

	for _, t := range tokens {
		if plainNumber.MatchString(t) {
			d, err := decimal.NewFromString(t)
			if err == nil {
				return d, true
			}
		}
		if m := thousandSuffix.FindStringSubmatch(t); m != nil {
			d, err := decimal.NewFromString(m[1])
			if err == nil {
				return d.Mul(decimal.NewFromInt(1000)), true
			}
		}
	}

	var total, current int64
	found := false
	for _, t := range tokens {
		val, ok := vocabulary[t]
		if !ok {
			continue
		}
		found = true
		if val >= scaleThreshold {
			if current == 0 {
				current = 1
			}
			total += current * val
			current = 0
			continue
		}
		current += val
	}

	if !found {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(total + current), true
}
