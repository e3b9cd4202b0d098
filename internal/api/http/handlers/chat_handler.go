package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-chat-service/internal/api/dto"
	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/service"
	apperrors "github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// ChatHandler runs the conversational endpoint.
type ChatHandler struct {
	chat    *service.ChatService
	history *service.HistoryService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService, historyService *service.HistoryService) *ChatHandler {
	return &ChatHandler{chat: chatService, history: historyService}
}

// Handle POST /api/chat.
func (h *ChatHandler) Handle(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	// Checked before session creation so a rejected message cannot leave
	// behind an empty session.
	if strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("message is required", nil)
	}

	// A missing session id starts a fresh conversation for the user.
	sessionID := req.SessionID
	if sessionID == "" {
		session, err := h.history.CreateSession(c.UserContext(), req.UserID, nil)
		if err != nil {
			return err
		}
		sessionID = session.ID
	}

	history := make([]domain.CaseMessage, 0, len(req.History))
	for _, msg := range req.History {
		var ts time.Time
		if msg.Timestamp != nil {
			ts = *msg.Timestamp
		}
		history = append(history, domain.CaseMessage{
			Sender:    domain.Sender(msg.Sender),
			Text:      msg.Text,
			Timestamp: ts,
		})
	}

	result, err := h.chat.Handle(c.UserContext(), service.ChatInput{
		SessionID:       sessionID,
		UserID:          req.UserID,
		Message:         req.Message,
		History:         history,
		Language:        req.Language,
		EscalatedCaseID: req.EscalatedCaseID,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		return err
	}

	resp := dto.ChatResponse{
		Message:   result.Reply,
		Sentiment: dto.NewSentimentResponse(result.Sentiment),
		QueryType: result.Detection.Type,
		Guide:     result.Detection.Guide,
		Links:     result.Detection.Links,
		Escalated: result.Escalated,
		CaseID:    result.CaseID,
		SessionID: sessionID,
	}
	return c.JSON(resp)
}
