package events

import (
	"time"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCaseCreated       EventType = "case_created"
	EventCaseEscalated     EventType = "case_escalated"
	EventCaseStatusChanged EventType = "case_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CaseID    string      `json:"case_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CaseCreatedPayload payload.
type CaseCreatedPayload struct {
	Status       domain.CaseStatus `json:"status"`
	Summary      string            `json:"summary"`
	MessageCount int               `json:"message_count"`
}

// CaseEscalatedPayload payload.
type CaseEscalatedPayload struct {
	Summary      string  `json:"summary"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// CaseStatusChangedPayload payload.
type CaseStatusChangedPayload struct {
	OldStatus domain.CaseStatus `json:"old_status"`
	NewStatus domain.CaseStatus `json:"new_status"`
}
