// Package sentiment scores message text against an AFINN-style valence
// lexicon and buckets the result into the coarse labels the escalation
// policy consumes.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
	lowCeiling        = 0.2
	mediumCeiling     = 0.5
)

// Analyze scores text and derives label and magnitude buckets. It is pure
// and accepts any string; an empty input yields a neutral/low result.
func Analyze(text string) domain.Sentiment {
	tokens := tokenize(text)

	var score float64
	for _, token := range tokens {
		score += lexicon[token]
	}

	var comparative float64
	if len(tokens) > 0 {
		comparative = score / float64(len(tokens))
	}

	return domain.Sentiment{
		Score:       score,
		Comparative: comparative,
		Label:       labelFor(comparative),
		Magnitude:   magnitudeFor(comparative),
	}
}

func labelFor(comparative float64) domain.SentimentLabel {
	switch {
	case comparative > positiveThreshold:
		return domain.SentimentPositive
	case comparative < negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func magnitudeFor(comparative float64) domain.SentimentMagnitude {
	abs := comparative
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < lowCeiling:
		return domain.MagnitudeLow
	case abs < mediumCeiling:
		return domain.MagnitudeMedium
	default:
		return domain.MagnitudeHigh
	}
}

// tokenize lowercases the input, strips everything except letters and
// digits, and splits on whitespace.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}
