package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-chat-service/internal/api/http"
	"github.com/spec-kit/support-chat-service/internal/api/http/handlers"
	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/observability"
	"github.com/spec-kit/support-chat-service/internal/persistence"
	"github.com/spec-kit/support-chat-service/internal/repository"
	"github.com/spec-kit/support-chat-service/internal/service"
)

// testApp is a fully wired fiber app over in-memory stores.
type testApp struct {
	app      *fiber.App
	cases    *memCaseRepo
	sessions *memSessionRepo
}

func newTestApp(t *testing.T, assistantReply string) testApp {
	t.Helper()

	caseRepo := &memCaseRepo{cases: map[string]*domain.Case{}}
	caseSvc := service.NewCaseService(caseRepo, nil)

	sessions := &memSessionRepo{sessions: map[string]*domain.ChatSession{}}
	historySvc := service.NewHistoryService(service.HistoryDependencies{
		SessionRepo:    sessions,
		MessageRepo:    &memMessageRepo{},
		AttachmentRepo: &memAttachmentRepo{},
		Tx:             memTxRunner{},
	})

	chatSvc := service.NewChatService(&stubAssistant{reply: assistantReply}, caseSvc, historySvc, zap.NewNop())
	qrSvc := service.NewQRService(&persistence.Redis{}, "http://localhost:3000", zap.NewNop())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler("support-chat-service", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Chat:     handlers.NewChatHandler(chatSvc, historySvc),
		Cases:    handlers.NewCasesHandler(caseSvc, qrSvc),
		Sessions: handlers.NewSessionsHandler(historySvc),
	})

	return testApp{app: app, cases: caseRepo, sessions: sessions}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type stubAssistant struct {
	reply string
}

func (s *stubAssistant) Reply(ctx context.Context, messages []domain.CaseMessage, language string) (string, error) {
	return s.reply, nil
}

type memCaseRepo struct {
	cases map[string]*domain.Case
}

func (r *memCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	stored := *c
	stored.Messages = append([]domain.CaseMessage{}, c.Messages...)
	r.cases[c.ID] = &stored
	return nil
}

func (r *memCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	stored, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c := *stored
	return &c, nil
}

func (r *memCaseRepo) List(ctx context.Context) ([]domain.Case, error) {
	var out []domain.Case
	for _, stored := range r.cases {
		out = append(out, *stored)
	}
	return out, nil
}

func (r *memCaseRepo) ListSummaries(ctx context.Context, status *domain.CaseStatus) ([]repository.CaseSummary, error) {
	var out []repository.CaseSummary
	for _, stored := range r.cases {
		if status != nil && stored.Status != *status {
			continue
		}
		out = append(out, repository.CaseSummary{ID: stored.ID, Status: stored.Status, Summary: stored.Summary})
	}
	return out, nil
}

func (r *memCaseRepo) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) (*domain.Case, error) {
	stored, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	stored.Status = status
	if status == domain.CaseStatusEscalated && stored.EscalatedAt == nil {
		now := time.Now()
		stored.EscalatedAt = &now
	}
	return r.GetByID(ctx, id)
}

type memSessionRepo struct {
	sessions map[string]*domain.ChatSession
}

func (r *memSessionRepo) Create(ctx context.Context, s *domain.ChatSession) error {
	stored := *s
	r.sessions[s.ID] = &stored
	return nil
}

func (r *memSessionRepo) GetByID(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	s := *stored
	return &s, nil
}

func (r *memSessionRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Search(ctx context.Context, userID, query string, limit int) ([]domain.ChatSession, error) {
	return nil, nil
}

func (r *memSessionRepo) ListBookmarked(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	return nil, nil
}

func (r *memSessionRepo) ToggleBookmark(ctx context.Context, sessionID, userID string) (bool, error) {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return false, pgx.ErrNoRows
	}
	stored.IsBookmarked = !stored.IsBookmarked
	return stored.IsBookmarked, nil
}

func (r *memSessionRepo) Rename(ctx context.Context, sessionID, userID, title string) error {
	stored, ok := r.sessions[sessionID]
	if !ok || stored.UserID != userID {
		return pgx.ErrNoRows
	}
	stored.Title = &title
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, sessionID, userID string) error {
	if _, ok := r.sessions[sessionID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *memSessionRepo) TouchPreview(ctx context.Context, q repository.Querier, sessionID, preview string) error {
	if stored, ok := r.sessions[sessionID]; ok {
		stored.LastMessagePreview = &preview
	}
	return nil
}

type memMessageRepo struct {
	nextID   int64
	messages []domain.ChatMessage
}

func (r *memMessageRepo) Insert(ctx context.Context, q repository.Querier, msg *domain.ChatMessage) (int64, error) {
	r.nextID++
	stored := *msg
	stored.ID = r.nextID
	r.messages = append(r.messages, stored)
	return r.nextID, nil
}

func (r *memMessageRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, msg := range r.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memAttachmentRepo struct {
	attachments []domain.Attachment
}

func (r *memAttachmentRepo) Insert(ctx context.Context, q repository.Querier, att *domain.Attachment) error {
	r.attachments = append(r.attachments, *att)
	return nil
}

func (r *memAttachmentRepo) ListByMessage(ctx context.Context, messageID int64) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for _, att := range r.attachments {
		if att.MessageID == messageID {
			out = append(out, att)
		}
	}
	return out, nil
}

type memTxRunner struct{}

func (memTxRunner) InTx(ctx context.Context, fn func(repository.Querier) error) error {
	return fn(nil)
}
