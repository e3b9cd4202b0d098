// Package escalation decides when a conversation needs a human. The
// decision is a logical OR of three independent triggers; a single
// matching turn is enough. Deduplicating repeat detections within one
// conversation is the caller's responsibility.
package escalation

import (
	"strings"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// botKeywords are phrases indicating the bot cannot resolve the enquiry.
var botKeywords = []string{
	"cannot help",
	"can't help",
	"unable to assist",
	"need human",
	"speak to someone",
	"talk to agent",
	"transfer",
	"escalate",
	"complex issue",
	"not sure",
	"unclear",
}

// userKeywords are phrases by which a customer explicitly requests a human.
var userKeywords = []string{
	"speak to human",
	"talk to person",
	"agent",
	"representative",
	"manager",
	"supervisor",
	"escalate",
	"transfer",
	"complex",
	"complicated",
	"urgent",
	"emergency",
}

// ShouldEscalate reports whether the current turn requires human follow-up.
// userSentiment may be nil when the message carried no text to score.
func ShouldEscalate(botReply, userMessage string, userSentiment *domain.Sentiment) bool {
	if containsAny(strings.ToLower(botReply), botKeywords) {
		return true
	}
	if containsAny(strings.ToLower(userMessage), userKeywords) {
		return true
	}
	return userSentiment != nil &&
		userSentiment.Label == domain.SentimentNegative &&
		userSentiment.Magnitude == domain.MagnitudeHigh
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
