package domain

import "time"

// CaseStatus enumerates lifecycle states for support cases.
type CaseStatus string

const (
	CaseStatusOpen      CaseStatus = "open"
	CaseStatusEscalated CaseStatus = "escalated"
	CaseStatusResolved  CaseStatus = "resolved"
)

// ValidCaseStatus reports whether s is a known status value.
func ValidCaseStatus(s CaseStatus) bool {
	switch s {
	case CaseStatusOpen, CaseStatusEscalated, CaseStatusResolved:
		return true
	}
	return false
}

// CaseMessage is one conversation turn snapshotted into a case. Cases own
// an immutable copy of the conversation that produced them, not a live
// reference to the session.
type CaseMessage struct {
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// Case is the aggregate for a tracked, potentially human-handled support issue.
type Case struct {
	ID           string
	CreatedAt    time.Time
	Status       CaseStatus
	Summary      string
	ContactEmail *string
	ContactPhone *string
	// EscalatedAt is set the first time Status becomes escalated and is
	// never cleared or moved afterwards.
	EscalatedAt *time.Time
	Messages    []CaseMessage
}
