package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// CaseMessagePayload is one conversation turn supplied by the client.
type CaseMessagePayload struct {
	Sender    string     `json:"sender" validate:"required,oneof=user bot"`
	Text      string     `json:"text" validate:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

// CreateCaseRequest payload.
type CreateCaseRequest struct {
	Messages     []CaseMessagePayload `json:"messages" validate:"required,min=1,dive"`
	Summary      string               `json:"summary"`
	ContactEmail *string              `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string              `json:"contactPhone"`
}

// EscalateCaseRequest payload. Reason is the caller-facing name for the
// case summary on the escalation path; an explicit summary wins when both
// are present.
type EscalateCaseRequest struct {
	CreateCaseRequest
	Reason string `json:"reason"`
}

// EffectiveSummary resolves the summary for an escalation payload.
func (r EscalateCaseRequest) EffectiveSummary() string {
	if strings.TrimSpace(r.Summary) != "" {
		return r.Summary
	}
	return r.Reason
}

// UpdateCaseStatusRequest payload.
type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open escalated resolved"`
}

// CaseMessageResponse represents one snapshotted turn.
type CaseMessageResponse struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CaseResponse represents a case with its conversation.
type CaseResponse struct {
	ID           string                `json:"id"`
	CreatedAt    time.Time             `json:"createdAt"`
	Status       domain.CaseStatus     `json:"status"`
	Summary      string                `json:"summary"`
	ContactEmail *string               `json:"contactEmail"`
	ContactPhone *string               `json:"contactPhone"`
	EscalatedAt  *time.Time            `json:"escalatedAt"`
	Messages     []CaseMessageResponse `json:"messages"`
}

// QRCodeResponse carries the hand-off image for a case.
type QRCodeResponse struct {
	CaseID  string `json:"caseId"`
	CaseURL string `json:"caseUrl"`
	QRCode  string `json:"qrCode"`
}

// NewCaseResponse maps a domain case.
func NewCaseResponse(c *domain.Case) CaseResponse {
	messages := make([]CaseMessageResponse, 0, len(c.Messages))
	for _, msg := range c.Messages {
		messages = append(messages, CaseMessageResponse{
			Sender:    string(msg.Sender),
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		})
	}
	return CaseResponse{
		ID:           c.ID,
		CreatedAt:    c.CreatedAt,
		Status:       c.Status,
		Summary:      c.Summary,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		EscalatedAt:  c.EscalatedAt,
		Messages:     messages,
	}
}
