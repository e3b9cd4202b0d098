package service

import (
	"context"
	"encoding/base64"
	"sort"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/repository"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.ChatSession
	previews map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.ChatSession{}, previews: map[string]string{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *domain.ChatSession) error {
	stored := *s
	r.sessions[s.ID] = &stored
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	s := *stored
	return &s, nil
}

func (r *fakeSessionRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Search(ctx context.Context, userID, query string, limit int) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range r.sessions {
		if s.UserID != userID {
			continue
		}
		if s.Title != nil && strings.Contains(strings.ToLower(*s.Title), strings.ToLower(query)) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListBookmarked(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsBookmarked {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ToggleBookmark(ctx context.Context, sessionID, userID string) (bool, error) {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return false, pgx.ErrNoRows
	}
	stored.IsBookmarked = !stored.IsBookmarked
	return stored.IsBookmarked, nil
}

func (r *fakeSessionRepo) Rename(ctx context.Context, sessionID, userID, title string) error {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return pgx.ErrNoRows
	}
	stored.Title = &title
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID, userID string) error {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeSessionRepo) TouchPreview(ctx context.Context, q repository.Querier, sessionID, preview string) error {
	r.previews[sessionID] = preview
	if stored, ok := r.sessions[sessionID]; ok {
		stored.LastMessagePreview = &preview
	}
	return nil
}

type fakeMessageRepo struct {
	nextID    int64
	messages  []domain.ChatMessage
	insertErr error
}

func (r *fakeMessageRepo) Insert(ctx context.Context, q repository.Querier, msg *domain.ChatMessage) (int64, error) {
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	r.nextID++
	stored := *msg
	stored.ID = r.nextID
	r.messages = append(r.messages, stored)
	return r.nextID, nil
}

// ListBySession mirrors the store's id ordering.
func (r *fakeMessageRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, msg := range r.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeAttachmentRepo struct {
	attachments []domain.Attachment
}

func (r *fakeAttachmentRepo) Insert(ctx context.Context, q repository.Querier, att *domain.Attachment) error {
	r.attachments = append(r.attachments, *att)
	return nil
}

func (r *fakeAttachmentRepo) ListByMessage(ctx context.Context, messageID int64) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for _, att := range r.attachments {
		if att.MessageID == messageID {
			out = append(out, att)
		}
	}
	return out, nil
}

type fakeTxRunner struct{}

func (fakeTxRunner) InTx(ctx context.Context, fn func(repository.Querier) error) error {
	return fn(nil)
}

type historyFixture struct {
	svc         *HistoryService
	sessions    *fakeSessionRepo
	messages    *fakeMessageRepo
	attachments *fakeAttachmentRepo
}

func newHistoryFixture() historyFixture {
	sessions := newFakeSessionRepo()
	messages := &fakeMessageRepo{}
	attachments := &fakeAttachmentRepo{}
	svc := NewHistoryService(HistoryDependencies{
		SessionRepo:    sessions,
		MessageRepo:    messages,
		AttachmentRepo: attachments,
		Tx:             fakeTxRunner{},
	})
	return historyFixture{svc: svc, sessions: sessions, messages: messages, attachments: attachments}
}

func (f historyFixture) newSession(t *testing.T, userID string) *domain.ChatSession {
	t.Helper()
	session, err := f.svc.CreateSession(context.Background(), userID, nil)
	require.NoError(t, err)
	return session
}

func TestHistoryService_CreateSession(t *testing.T) {
	f := newHistoryFixture()

	session := f.newSession(t, "user-1")
	assert.True(t, strings.HasPrefix(session.ID, "session-"))
	assert.Equal(t, "user-1", session.UserID)

	_, err := f.svc.CreateSession(context.Background(), "  ", nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorutil.ToDomainError(err).Code)
}

func TestHistoryService_SaveMessageScoresUserTurnsOnly(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	userMsg, err := f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      "this is terrible",
	})
	require.NoError(t, err)
	require.NotNil(t, userMsg.Sentiment)
	assert.Equal(t, domain.SentimentNegative, userMsg.Sentiment.Label)

	botMsg, err := f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderBot,
		Text:      "sorry to hear that",
	})
	require.NoError(t, err)
	assert.Nil(t, botMsg.Sentiment)
}

func TestHistoryService_SaveMessageUpdatesPreview(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	long := strings.Repeat("a", 150)
	_, err := f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      long,
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 100)+"...", f.sessions.previews[session.ID])

	exact := strings.Repeat("b", 100)
	_, err = f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      exact,
	})
	require.NoError(t, err)
	assert.Equal(t, exact, f.sessions.previews[session.ID], "text at the limit is not truncated")
}

func TestHistoryService_SaveMessageDecodesAttachments(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")

	payload := []byte("attachment bytes")
	msg, err := f.svc.SaveMessage(context.Background(), SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      "see attached",
		Attachments: []AttachmentInput{{
			FileName: "statement.pdf",
			Data:     base64.StdEncoding.EncodeToString(payload),
		}},
	})
	require.NoError(t, err)
	require.Len(t, msg.Attachments, 1)

	att := msg.Attachments[0]
	assert.Equal(t, payload, att.Data)
	assert.Equal(t, int64(len(payload)), att.FileSize)
	assert.Equal(t, "application/octet-stream", att.MimeType)
	assert.Equal(t, msg.ID, att.MessageID)
	assert.NotEmpty(t, att.ID)

	require.Len(t, f.attachments.attachments, 1)
}

func TestHistoryService_SaveMessageRejectsTooManyAttachments(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")

	attachments := make([]AttachmentInput, MaxAttachmentsPerMessage+1)
	for i := range attachments {
		attachments[i] = AttachmentInput{FileName: "f.bin", Data: base64.StdEncoding.EncodeToString([]byte("x"))}
	}

	_, err := f.svc.SaveMessage(context.Background(), SaveMessageInput{
		SessionID:   session.ID,
		Sender:      domain.SenderUser,
		Text:        "too many",
		Attachments: attachments,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorutil.ToDomainError(err).Code)
	assert.Empty(t, f.messages.messages, "nothing is written when validation fails")
	assert.Empty(t, f.attachments.attachments)
}

func TestHistoryService_SaveMessageRejectsBadInput(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	_, err := f.svc.SaveMessage(ctx, SaveMessageInput{SessionID: session.ID, Sender: "system", Text: "hi"})
	require.Error(t, err)

	_, err = f.svc.SaveMessage(ctx, SaveMessageInput{SessionID: session.ID, Sender: domain.SenderUser, Text: "   "})
	require.Error(t, err)

	_, err = f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID:   session.ID,
		Sender:      domain.SenderUser,
		Text:        "bad data",
		Attachments: []AttachmentInput{{FileName: "f.bin", Data: "not-base64!!"}},
	})
	require.Error(t, err)
}

func TestHistoryService_GetSessionScopedToOwner(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	_, err := f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      "hello",
	})
	require.NoError(t, err)

	found, err := f.svc.GetSession(ctx, session.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, found.Messages, 1)

	_, err = f.svc.GetSession(ctx, session.ID, "someone-else")
	require.Error(t, err)
	assert.True(t, errorutil.IsNotFound(errorutil.ToDomainError(err)))
}

func TestHistoryService_TranscriptKeepsInsertionOrder(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	texts := []string{"first", "second", "third", "fourth"}
	for i, text := range texts {
		sender := domain.SenderUser
		if i%2 == 1 {
			sender = domain.SenderBot
		}
		_, err := f.svc.SaveMessage(ctx, SaveMessageInput{SessionID: session.ID, Sender: sender, Text: text})
		require.NoError(t, err)
	}

	found, err := f.svc.GetSession(ctx, session.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, found.Messages, len(texts))
	for i, msg := range found.Messages {
		assert.Equal(t, texts[i], msg.Text)
		assert.Equal(t, int64(i+1), msg.ID, "transcript order follows insertion ids, not timestamps")
	}
}

func TestHistoryService_ExportSessionCSV(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	_, err := f.svc.SaveMessage(ctx, SaveMessageInput{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      `hello, "world"`,
	})
	require.NoError(t, err)

	out, err := f.svc.ExportSessionCSV(ctx, session.ID, "user-1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, "Timestamp,Sender,Message", lines[0])
	assert.Contains(t, string(out), `"hello, ""world"""`)
}

func TestHistoryService_BookmarkAndRename(t *testing.T) {
	f := newHistoryFixture()
	session := f.newSession(t, "user-1")
	ctx := context.Background()

	bookmarked, err := f.svc.ToggleBookmark(ctx, session.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = f.svc.ToggleBookmark(ctx, session.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	require.NoError(t, f.svc.RenameSession(ctx, session.ID, "user-1", "Card questions"))
	err = f.svc.RenameSession(ctx, session.ID, "user-1", "  ")
	require.Error(t, err)

	require.NoError(t, f.svc.DeleteSession(ctx, session.ID, "user-1"))
	err = f.svc.DeleteSession(ctx, session.ID, "user-1")
	require.Error(t, err)
}
