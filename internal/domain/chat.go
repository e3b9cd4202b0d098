package domain

import "time"

// Sender identifies who authored a conversation turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ValidSender reports whether s is a known sender value.
func ValidSender(s Sender) bool {
	return s == SenderUser || s == SenderBot
}

// Attachment is a binary file owned by a single chat message. Data carries
// the raw bytes; the API boundary exchanges it as base64 text.
type Attachment struct {
	ID        string
	MessageID int64
	FileName  string
	MimeType  string
	FileSize  int64
	Data      []byte
	CreatedAt time.Time
}

// ChatMessage is one turn in a chat session. The store assigns the
// sequential ID at insertion; attachments are keyed to it.
type ChatMessage struct {
	ID        int64
	SessionID string
	Sender    Sender
	Text      string
	Timestamp time.Time
	// Sentiment is computed for user messages only and may be absent on
	// deployments whose schema predates the sentiment columns.
	Sentiment   *Sentiment
	Attachments []Attachment
}

// ChatSession is a persisted conversation tied to a client-generated
// identity. Title is an optional user-assigned label; the UI falls back
// to LastMessagePreview when it is nil.
type ChatSession struct {
	ID                 string
	UserID             string
	Title              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	IsBookmarked       bool
	LastMessagePreview *string
	MessageCount       int
}

// ChatSessionWithMessages bundles a session with its ordered messages.
type ChatSessionWithMessages struct {
	ChatSession
	Messages []ChatMessage
}
