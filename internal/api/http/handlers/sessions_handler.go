package handlers

import (
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-chat-service/internal/api/dto"
	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/service"
	apperrors "github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// SessionsHandler manages chat history endpoints.
type SessionsHandler struct {
	history *service.HistoryService
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(historyService *service.HistoryService) *SessionsHandler {
	return &SessionsHandler{history: historyService}
}

// CreateSession POST /api/chat/sessions.
func (h *SessionsHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	session, err := h.history.CreateSession(c.UserContext(), req.UserID, req.Title)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": dto.NewSessionResponse(*session)})
}

// SaveMessage POST /api/chat/messages.
func (h *SessionsHandler) SaveMessage(c *fiber.Ctx) error {
	var req dto.SaveMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	sessionID := req.SessionID
	if sessionID == "" || req.CreateNewSession {
		session, err := h.history.CreateSession(c.UserContext(), req.UserID, nil)
		if err != nil {
			return err
		}
		sessionID = session.ID
	}

	attachments := make([]service.AttachmentInput, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		attachments = append(attachments, service.AttachmentInput{
			ID:       att.ID,
			FileName: att.FileName,
			MimeType: att.MimeType,
			Data:     att.Data,
		})
	}

	if _, err := h.history.SaveMessage(c.UserContext(), service.SaveMessageInput{
		SessionID:   sessionID,
		Sender:      domain.Sender(req.Sender),
		Text:        req.Text,
		Attachments: attachments,
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"sessionId": sessionID,
		"userId":    req.UserID,
	})
}

// ListSessions GET /api/chat/sessions.
func (h *SessionsHandler) ListSessions(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}

	sessions, err := h.history.ListSessions(c.UserContext(), userID, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"sessions": sessionResponses(sessions),
		"userId":   userID,
	})
}

// SearchSessions GET /api/chat/sessions/search.
func (h *SessionsHandler) SearchSessions(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}

	sessions, err := h.history.SearchSessions(c.UserContext(), userID, c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sessions": sessionResponses(sessions)})
}

// ListBookmarked GET /api/chat/sessions/bookmarked.
func (h *SessionsHandler) ListBookmarked(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}

	sessions, err := h.history.ListBookmarked(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sessions": sessionResponses(sessions)})
}

// GetSession GET /api/chat/sessions/:id.
func (h *SessionsHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}

	session, err := h.history.GetSession(c.UserContext(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"session": sessionWithMessages(session)})
}

// Bookmark PATCH /api/chat/sessions/:id/bookmark.
func (h *SessionsHandler) Bookmark(c *fiber.Ctx) error {
	var req dto.BookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	bookmarked, err := h.history.ToggleBookmark(c.UserContext(), c.Params("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"isBookmarked": bookmarked})
}

// Rename PATCH /api/chat/sessions/:id/title.
func (h *SessionsHandler) Rename(c *fiber.Ctx) error {
	var req dto.RenameSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if err := h.history.RenameSession(c.UserContext(), c.Params("id"), req.UserID, req.Title); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteSession DELETE /api/chat/sessions/:id.
func (h *SessionsHandler) DeleteSession(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}

	if err := h.history.DeleteSession(c.UserContext(), c.Params("id"), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Export GET /api/chat/sessions/:id/export.
func (h *SessionsHandler) Export(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperrors.NewValidationError("userId query parameter is required", nil)
	}
	sessionID := c.Params("id")

	switch c.Query("format", "json") {
	case "csv":
		csvBytes, err := h.history.ExportSessionCSV(c.UserContext(), sessionID, userID)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="chat-%s.csv"`, sessionID))
		return c.Send(csvBytes)
	case "json":
		session, err := h.history.ExportSessionJSON(c.UserContext(), sessionID, userID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"session": sessionWithMessages(session)})
	default:
		return apperrors.NewValidationError("format must be csv or json", nil)
	}
}

func sessionResponses(sessions []domain.ChatSession) []dto.SessionResponse {
	items := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, dto.NewSessionResponse(s))
	}
	return items
}

func sessionWithMessages(s *domain.ChatSessionWithMessages) dto.SessionWithMessagesResponse {
	messages := make([]dto.ChatMessageResponse, 0, len(s.Messages))
	for _, msg := range s.Messages {
		item := dto.ChatMessageResponse{
			ID:          msg.ID,
			SessionID:   msg.SessionID,
			Sender:      string(msg.Sender),
			Text:        msg.Text,
			Timestamp:   msg.Timestamp,
			Attachments: make([]dto.AttachmentResponse, 0, len(msg.Attachments)),
		}
		if msg.Sentiment != nil {
			sentiment := dto.NewSentimentResponse(*msg.Sentiment)
			item.Sentiment = &sentiment
		}
		for _, att := range msg.Attachments {
			item.Attachments = append(item.Attachments, dto.AttachmentResponse{
				ID:        att.ID,
				FileName:  att.FileName,
				MimeType:  att.MimeType,
				FileSize:  att.FileSize,
				Data:      base64.StdEncoding.EncodeToString(att.Data),
				CreatedAt: att.CreatedAt,
			})
		}
		messages = append(messages, item)
	}
	return dto.SessionWithMessagesResponse{
		SessionResponse: dto.NewSessionResponse(s.ChatSession),
		Messages:        messages,
	}
}
