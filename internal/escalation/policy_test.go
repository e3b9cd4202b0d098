package escalation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

func neutralSentiment() *domain.Sentiment {
	return &domain.Sentiment{Label: domain.SentimentNeutral, Magnitude: domain.MagnitudeLow}
}

func TestShouldEscalate_BotAdmitsDefeat(t *testing.T) {
	assert.True(t, ShouldEscalate("I cannot help with that request", "what about my account", neutralSentiment()))
	assert.True(t, ShouldEscalate("This seems like a complex issue", "hello", neutralSentiment()))
}

func TestShouldEscalate_UserAsksForHuman(t *testing.T) {
	assert.True(t, ShouldEscalate("here is some info", "I need to speak to a manager", neutralSentiment()))
	assert.True(t, ShouldEscalate("here is some info", "get me a representative", neutralSentiment()))
	assert.True(t, ShouldEscalate("here is some info", "this is an EMERGENCY", neutralSentiment()))
}

func TestShouldEscalate_StrongNegativeSentiment(t *testing.T) {
	hot := &domain.Sentiment{Label: domain.SentimentNegative, Magnitude: domain.MagnitudeHigh}
	assert.True(t, ShouldEscalate("here is some info", "nothing keyword related here", hot))
}

func TestShouldEscalate_NegativeButMildStaysWithBot(t *testing.T) {
	mild := &domain.Sentiment{Label: domain.SentimentNegative, Magnitude: domain.MagnitudeMedium}
	assert.False(t, ShouldEscalate("here is some info", "nothing keyword related here", mild))
}

func TestShouldEscalate_HighPositiveStaysWithBot(t *testing.T) {
	happy := &domain.Sentiment{Label: domain.SentimentPositive, Magnitude: domain.MagnitudeHigh}
	assert.False(t, ShouldEscalate("here is some info", "nothing keyword related here", happy))
}

func TestShouldEscalate_NoSignals(t *testing.T) {
	assert.False(t, ShouldEscalate("your balance is shown in the mobile app", "thanks for the info", neutralSentiment()))
	assert.False(t, ShouldEscalate("your balance is shown in the mobile app", "thanks for the info", nil))
}
