package dto

import (
	"time"

	"github.com/spec-kit/support-chat-service/internal/banking"
	"github.com/spec-kit/support-chat-service/internal/domain"
)

// ChatRequest is one user turn plus conversation context.
type ChatRequest struct {
	SessionID       string               `json:"sessionId"`
	UserID          string               `json:"userId" validate:"required"`
	Message         string               `json:"message" validate:"required"`
	History         []CaseMessagePayload `json:"history" validate:"dive"`
	Language        string               `json:"language" validate:"omitempty,oneof=en zh"`
	EscalatedCaseID *string              `json:"escalatedCaseId"`
	ContactEmail    *string              `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone    *string              `json:"contactPhone"`
}

// SentimentResponse mirrors a computed sentiment.
type SentimentResponse struct {
	Score       float64 `json:"score"`
	Comparative float64 `json:"comparative"`
	Label       string  `json:"label"`
	Magnitude   string  `json:"magnitude"`
}

// ChatResponse is the assistant turn with routing metadata.
type ChatResponse struct {
	Message   string                    `json:"message"`
	Sentiment SentimentResponse         `json:"sentiment"`
	QueryType string                    `json:"queryType,omitempty"`
	Guide     *banking.Guide            `json:"guide,omitempty"`
	Links     []banking.SelfServiceLink `json:"links"`
	Escalated bool                      `json:"escalated"`
	CaseID    *string                   `json:"caseId,omitempty"`
	SessionID string                    `json:"sessionId,omitempty"`
}

// CreateSessionRequest payload.
type CreateSessionRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Title  *string `json:"title"`
}

// AttachmentPayload is one base64-encoded file on an incoming message.
type AttachmentPayload struct {
	ID       string `json:"id"`
	FileName string `json:"fileName" validate:"required"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data" validate:"required"`
}

// SaveMessageRequest payload.
type SaveMessageRequest struct {
	SessionID        string              `json:"sessionId"`
	UserID           string              `json:"userId" validate:"required"`
	Sender           string              `json:"sender" validate:"required,oneof=user bot"`
	Text             string              `json:"text"`
	Attachments      []AttachmentPayload `json:"attachments" validate:"max=5,dive"`
	CreateNewSession bool                `json:"createNewSession"`
}

// RenameSessionRequest payload.
type RenameSessionRequest struct {
	UserID string `json:"userId" validate:"required"`
	Title  string `json:"title" validate:"required"`
}

// BookmarkRequest payload.
type BookmarkRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// SessionResponse represents a chat session summary.
type SessionResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Title              *string    `json:"title"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	IsBookmarked       bool       `json:"isBookmarked"`
	LastMessagePreview *string    `json:"lastMessagePreview"`
	MessageCount       int        `json:"messageCount"`
}

// AttachmentResponse carries attachment content as base64.
type AttachmentResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	MimeType  string    `json:"mimeType"`
	FileSize  int64     `json:"fileSize"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessageResponse represents one stored turn.
type ChatMessageResponse struct {
	ID          int64                `json:"id"`
	SessionID   string               `json:"sessionId"`
	Sender      string               `json:"sender"`
	Text        string               `json:"text"`
	Timestamp   time.Time            `json:"timestamp"`
	Sentiment   *SentimentResponse   `json:"sentiment,omitempty"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// SessionWithMessagesResponse is a session plus its transcript.
type SessionWithMessagesResponse struct {
	SessionResponse
	Messages []ChatMessageResponse `json:"messages"`
}

// NewSentimentResponse maps a domain sentiment.
func NewSentimentResponse(s domain.Sentiment) SentimentResponse {
	return SentimentResponse{
		Score:       s.Score,
		Comparative: s.Comparative,
		Label:       string(s.Label),
		Magnitude:   string(s.Magnitude),
	}
}

// NewSessionResponse maps a domain session.
func NewSessionResponse(s domain.ChatSession) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		UserID:             s.UserID,
		Title:              s.Title,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		IsBookmarked:       s.IsBookmarked,
		LastMessagePreview: s.LastMessagePreview,
		MessageCount:       s.MessageCount,
	}
}
