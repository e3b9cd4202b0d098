package domain

// SentimentLabel buckets the polarity direction of a message.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentMagnitude buckets how strongly polarized a message is.
type SentimentMagnitude string

const (
	MagnitudeLow    SentimentMagnitude = "low"
	MagnitudeMedium SentimentMagnitude = "medium"
	MagnitudeHigh   SentimentMagnitude = "high"
)

// Sentiment is the structured annotation produced by the scorer.
// Comparative is the raw score normalized by token count.
type Sentiment struct {
	Score       float64
	Comparative float64
	Label       SentimentLabel
	Magnitude   SentimentMagnitude
}
