package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-chat-service/internal/assistant"
	"github.com/spec-kit/support-chat-service/internal/banking"
	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/escalation"
	"github.com/spec-kit/support-chat-service/internal/sentiment"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// ChatService runs one conversation turn end to end: sentiment analysis,
// assistant reply, banking query detection, escalation decision, and
// persistence of both turns.
type ChatService struct {
	assistant assistant.Client
	cases     *CaseService
	history   *HistoryService
	logger    *zap.Logger
}

// NewChatService constructs the service.
func NewChatService(client assistant.Client, cases *CaseService, history *HistoryService, logger *zap.Logger) *ChatService {
	return &ChatService{
		assistant: client,
		cases:     cases,
		history:   history,
		logger:    logger,
	}
}

// ChatInput is one user turn plus the conversation so far.
type ChatInput struct {
	SessionID string
	UserID    string
	Message   string
	// History is the prior conversation, oldest first, excluding Message.
	History  []domain.CaseMessage
	Language string
	// EscalatedCaseID is the case already opened for this conversation, if
	// any. When set, a further escalation signal does not open another case.
	EscalatedCaseID *string
	ContactEmail    *string
	ContactPhone    *string
}

// ChatResult is the outcome of one turn.
type ChatResult struct {
	Reply     string
	Sentiment domain.Sentiment
	Detection banking.Detection
	Escalated bool
	// CaseID is set when this turn opened a new escalated case.
	CaseID *string
}

// Handle processes one user message and returns the assistant turn.
func (s *ChatService) Handle(ctx context.Context, input ChatInput) (*ChatResult, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, errorutil.NewValidationError("message is required", nil)
	}

	userSentiment := sentiment.Analyze(message)

	conversation := append(append([]domain.CaseMessage{}, input.History...), domain.CaseMessage{
		Sender: domain.SenderUser,
		Text:   message,
	})

	reply, err := s.assistant.Reply(ctx, conversation, input.Language)
	if err != nil {
		return nil, err
	}

	detection := banking.Detect(message)

	result := &ChatResult{
		Reply:     reply,
		Sentiment: userSentiment,
		Detection: detection,
	}

	if escalation.ShouldEscalate(reply, message, &userSentiment) {
		result.Escalated = true
		// One case per conversation: later escalation signals reuse it.
		if input.EscalatedCaseID != nil && *input.EscalatedCaseID != "" {
			result.CaseID = input.EscalatedCaseID
		} else {
			snapshot := append(conversation, domain.CaseMessage{
				Sender: domain.SenderBot,
				Text:   reply,
			})
			c, err := s.cases.Escalate(ctx, CaseCreateInput{
				Messages:     snapshot,
				ContactEmail: input.ContactEmail,
				ContactPhone: input.ContactPhone,
			})
			if err != nil {
				s.logger.Error("failed to open escalated case", zap.Error(err))
				return nil, err
			}
			result.CaseID = &c.ID
		}
	}

	if input.SessionID != "" {
		if err := s.persistTurn(ctx, input.SessionID, message, reply); err != nil {
			s.logger.Error("failed to persist conversation turn",
				zap.String("session_id", input.SessionID), zap.Error(err))
			return nil, err
		}
	}

	return result, nil
}

// persistTurn saves both halves of the exchange.
func (s *ChatService) persistTurn(ctx context.Context, sessionID, userMessage, reply string) error {
	if _, err := s.history.SaveMessage(ctx, SaveMessageInput{
		SessionID: sessionID,
		Sender:    domain.SenderUser,
		Text:      userMessage,
	}); err != nil {
		return err
	}
	_, err := s.history.SaveMessage(ctx, SaveMessageInput{
		SessionID: sessionID,
		Sender:    domain.SenderBot,
		Text:      reply,
	})
	return err
}
