package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/repository"
	"github.com/spec-kit/support-chat-service/internal/sentiment"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

const (
	// MaxAttachmentsPerMessage caps how many files one message may carry.
	MaxAttachmentsPerMessage = 5
	// MaxAttachmentSize caps one decoded attachment at 5 MiB.
	MaxAttachmentSize = 5 * 1024 * 1024

	previewLength      = 100
	defaultSessionList = 50
	defaultSearchLimit = 20
)

// HistoryService manages chat sessions and their messages.
type HistoryService struct {
	sessions    repository.SessionRepository
	messages    repository.ChatMessageRepository
	attachments repository.AttachmentRepository
	tx          repository.TxRunner
	now         func() time.Time
}

// HistoryDependencies bundles repositories for the history service.
type HistoryDependencies struct {
	SessionRepo    repository.SessionRepository
	MessageRepo    repository.ChatMessageRepository
	AttachmentRepo repository.AttachmentRepository
	Tx             repository.TxRunner
}

// NewHistoryService constructs the service.
func NewHistoryService(deps HistoryDependencies) *HistoryService {
	return &HistoryService{
		sessions:    deps.SessionRepo,
		messages:    deps.MessageRepo,
		attachments: deps.AttachmentRepo,
		tx:          deps.Tx,
		now:         time.Now,
	}
}

// AttachmentInput carries one base64-encoded file on an incoming message.
type AttachmentInput struct {
	ID       string
	FileName string
	MimeType string
	Data     string
}

// SaveMessageInput describes one chat turn to persist.
type SaveMessageInput struct {
	SessionID   string
	Sender      domain.Sender
	Text        string
	Attachments []AttachmentInput
}

// CreateSession opens a new conversation for the given user.
func (s *HistoryService) CreateSession(ctx context.Context, userID string, title *string) (*domain.ChatSession, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errorutil.NewValidationError("user id is required", nil)
	}

	now := s.now()
	session := &domain.ChatSession{
		ID:        generateSessionID(now),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SaveMessage persists one turn. Sentiment is computed for user messages
// only. The message row, its attachments and the session preview update
// commit in a single transaction so a failed attachment write never leaves
// a half-saved turn.
func (s *HistoryService) SaveMessage(ctx context.Context, input SaveMessageInput) (*domain.ChatMessage, error) {
	if strings.TrimSpace(input.SessionID) == "" {
		return nil, errorutil.NewValidationError("session id is required", nil)
	}
	if !domain.ValidSender(input.Sender) {
		return nil, errorutil.NewValidationError(fmt.Sprintf("invalid sender %q", input.Sender), nil)
	}
	if strings.TrimSpace(input.Text) == "" && len(input.Attachments) == 0 {
		return nil, errorutil.NewValidationError("message text or attachments required", nil)
	}
	if len(input.Attachments) > MaxAttachmentsPerMessage {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("too many attachments: %d exceeds limit of %d", len(input.Attachments), MaxAttachmentsPerMessage), nil)
	}

	now := s.now()
	attachments := make([]domain.Attachment, 0, len(input.Attachments))
	for _, in := range input.Attachments {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return nil, errorutil.NewValidationError(fmt.Sprintf("attachment %q is not valid base64", in.FileName), nil)
		}
		if len(data) > MaxAttachmentSize {
			return nil, errorutil.NewValidationError(
				fmt.Sprintf("attachment %q exceeds size limit of %d bytes", in.FileName, MaxAttachmentSize), nil)
		}
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		mimeType := in.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		attachments = append(attachments, domain.Attachment{
			ID:        id,
			FileName:  in.FileName,
			MimeType:  mimeType,
			FileSize:  int64(len(data)),
			Data:      data,
			CreatedAt: now,
		})
	}

	msg := &domain.ChatMessage{
		SessionID: input.SessionID,
		Sender:    input.Sender,
		Text:      input.Text,
		Timestamp: now,
	}
	if input.Sender == domain.SenderUser {
		result := sentiment.Analyze(input.Text)
		msg.Sentiment = &result
	}

	err := s.tx.InTx(ctx, func(q repository.Querier) error {
		id, err := s.messages.Insert(ctx, q, msg)
		if err != nil {
			return err
		}
		msg.ID = id

		for i := range attachments {
			attachments[i].MessageID = id
			if err := s.attachments.Insert(ctx, q, &attachments[i]); err != nil {
				return err
			}
		}

		return s.sessions.TouchPreview(ctx, q, input.SessionID, previewOf(input.Text))
	})
	if err != nil {
		return nil, err
	}

	msg.Attachments = attachments
	return msg, nil
}

// GetSession returns a session with its ordered messages and attachments.
func (s *HistoryService) GetSession(ctx context.Context, sessionID, userID string) (*domain.ChatSessionWithMessages, error) {
	session, err := s.sessions.GetByID(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		atts, err := s.attachments.ListByMessage(ctx, messages[i].ID)
		if err != nil {
			return nil, err
		}
		messages[i].Attachments = atts
	}

	return &domain.ChatSessionWithMessages{
		ChatSession: *session,
		Messages:    messages,
	}, nil
}

// ListSessions returns a user's sessions, most recently active first.
func (s *HistoryService) ListSessions(ctx context.Context, userID string, limit, offset int) ([]domain.ChatSession, error) {
	if limit <= 0 {
		limit = defaultSessionList
	}
	if offset < 0 {
		offset = 0
	}
	return s.sessions.ListByUser(ctx, userID, limit, offset)
}

// SearchSessions matches a query against titles, previews and message text.
func (s *HistoryService) SearchSessions(ctx context.Context, userID, query string, limit int) ([]domain.ChatSession, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errorutil.NewValidationError("search query is required", nil)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.sessions.Search(ctx, userID, query, limit)
}

// ListBookmarked returns the user's bookmarked sessions.
func (s *HistoryService) ListBookmarked(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	return s.sessions.ListBookmarked(ctx, userID)
}

// ToggleBookmark flips the bookmark flag and returns the new state.
func (s *HistoryService) ToggleBookmark(ctx context.Context, sessionID, userID string) (bool, error) {
	return s.sessions.ToggleBookmark(ctx, sessionID, userID)
}

// RenameSession sets a user-assigned title.
func (s *HistoryService) RenameSession(ctx context.Context, sessionID, userID, title string) error {
	if strings.TrimSpace(title) == "" {
		return errorutil.NewValidationError("title is required", nil)
	}
	return s.sessions.Rename(ctx, sessionID, userID, title)
}

// DeleteSession removes a session together with its messages and attachments.
func (s *HistoryService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	return s.sessions.Delete(ctx, sessionID, userID)
}

// ExportSessionCSV renders a session transcript as CSV.
func (s *HistoryService) ExportSessionCSV(ctx context.Context, sessionID, userID string) ([]byte, error) {
	session, err := s.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Timestamp", "Sender", "Message"}}
	for _, msg := range session.Messages {
		records = append(records, []string{
			msg.Timestamp.UTC().Format(time.RFC3339),
			string(msg.Sender),
			msg.Text,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportSessionJSON returns the session with messages for JSON rendering.
func (s *HistoryService) ExportSessionJSON(ctx context.Context, sessionID, userID string) (*domain.ChatSessionWithMessages, error) {
	return s.GetSession(ctx, sessionID, userID)
}

// previewOf truncates text to the stored session preview length.
func previewOf(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

// generateSessionID mirrors the established session identifier shape:
// session-<unix millis>-<9 lowercase chars>.
func generateSessionID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session-%d-%s", now.UnixMilli(), random)
}
