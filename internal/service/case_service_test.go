package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/repository"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// fakeCaseRepo keeps cases in memory and mirrors the store's escalated_at
// write-once behavior.
type fakeCaseRepo struct {
	cases     map[string]*domain.Case
	now       func() time.Time
	createErr error
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: map[string]*domain.Case{}, now: time.Now}
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := *c
	stored.Messages = append([]domain.CaseMessage{}, c.Messages...)
	r.cases[c.ID] = &stored
	return nil
}

func (r *fakeCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	stored, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c := *stored
	c.Messages = append([]domain.CaseMessage{}, stored.Messages...)
	return &c, nil
}

func (r *fakeCaseRepo) List(ctx context.Context) ([]domain.Case, error) {
	var out []domain.Case
	for _, stored := range r.cases {
		out = append(out, *stored)
	}
	return out, nil
}

func (r *fakeCaseRepo) ListSummaries(ctx context.Context, status *domain.CaseStatus) ([]repository.CaseSummary, error) {
	var out []repository.CaseSummary
	for _, stored := range r.cases {
		if status != nil && stored.Status != *status {
			continue
		}
		out = append(out, repository.CaseSummary{
			ID:           stored.ID,
			CreatedAt:    stored.CreatedAt,
			Status:       stored.Status,
			Summary:      stored.Summary,
			ContactEmail: stored.ContactEmail,
			ContactPhone: stored.ContactPhone,
			EscalatedAt:  stored.EscalatedAt,
			MessageCount: len(stored.Messages),
		})
	}
	return out, nil
}

func (r *fakeCaseRepo) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) (*domain.Case, error) {
	stored, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	stored.Status = status
	if status == domain.CaseStatusEscalated && stored.EscalatedAt == nil {
		now := r.now()
		stored.EscalatedAt = &now
	}
	return r.GetByID(ctx, id)
}

func userTurn(text string) domain.CaseMessage {
	return domain.CaseMessage{Sender: domain.SenderUser, Text: text, Timestamp: time.Now()}
}

func TestCaseService_CreateDefaults(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)

	created, err := svc.Create(context.Background(), CaseCreateInput{
		Messages: []domain.CaseMessage{{Sender: domain.SenderUser, Text: "hello"}},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "CASE-"))
	assert.Equal(t, domain.CaseStatusOpen, created.Status)
	assert.Equal(t, DefaultCaseSummary, created.Summary)
	assert.Nil(t, created.EscalatedAt)
	require.Len(t, created.Messages, 1)
	assert.False(t, created.Messages[0].Timestamp.IsZero(), "missing message timestamps are filled in")
}

func TestCaseService_CreateRequiresMessages(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)

	_, err := svc.Create(context.Background(), CaseCreateInput{})
	require.Error(t, err)
	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestCaseService_EscalateSetsEscalatedAt(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)

	created, err := svc.Escalate(context.Background(), CaseCreateInput{
		Messages: []domain.CaseMessage{userTurn("I need a human")},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CaseStatusEscalated, created.Status)
	require.NotNil(t, created.EscalatedAt)
	assert.Equal(t, created.CreatedAt, *created.EscalatedAt)
}

func TestCaseService_EscalatedAtIsWrittenOnce(t *testing.T) {
	repo := newFakeCaseRepo()
	svc := NewCaseService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CaseCreateInput{
		Messages: []domain.CaseMessage{userTurn("hello")},
	})
	require.NoError(t, err)
	require.Nil(t, created.EscalatedAt)

	escalated, err := svc.UpdateStatus(ctx, created.ID, domain.CaseStatusEscalated)
	require.NoError(t, err)
	require.NotNil(t, escalated.EscalatedAt)
	firstEscalation := *escalated.EscalatedAt

	resolved, err := svc.UpdateStatus(ctx, created.ID, domain.CaseStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, resolved.EscalatedAt)
	assert.Equal(t, firstEscalation, *resolved.EscalatedAt)

	reEscalated, err := svc.UpdateStatus(ctx, created.ID, domain.CaseStatusEscalated)
	require.NoError(t, err)
	require.NotNil(t, reEscalated.EscalatedAt)
	assert.Equal(t, firstEscalation, *reEscalated.EscalatedAt, "a second escalation keeps the original timestamp")
}

func TestCaseService_UpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "CASE-1", domain.CaseStatus("archived"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorutil.ToDomainError(err).Code)
}

func TestCaseService_UpdateStatusUnknownCase(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "CASE-missing", domain.CaseStatusResolved)
	require.Error(t, err)
	assert.True(t, errorutil.IsNotFound(errorutil.ToDomainError(err)))
}

func TestCaseService_ExportCaseRoundTripsSpecialCharacters(t *testing.T) {
	svc := NewCaseService(newFakeCaseRepo(), nil)
	ctx := context.Background()

	tricky := `she said "it is broken", twice` + "\nsecond line"
	created, err := svc.Create(ctx, CaseCreateInput{
		Summary:  "quote, comma and newline handling",
		Messages: []domain.CaseMessage{userTurn(tricky)},
	})
	require.NoError(t, err)

	out, err := svc.ExportCase(ctx, created.ID)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(out)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Case ID", created.ID}, records[0])
	assert.Equal(t, []string{"Status", "open"}, records[1])

	last := records[len(records)-1]
	require.Len(t, last, 4)
	assert.Equal(t, "1", last[0])
	assert.Equal(t, "user", last[1])
	assert.Equal(t, tricky, last[2], "quotes, commas and newlines survive the round trip")
}

func TestCaseService_ExportAllFiltersByStatus(t *testing.T) {
	repo := newFakeCaseRepo()
	svc := NewCaseService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CaseCreateInput{Messages: []domain.CaseMessage{userTurn("open one")}})
	require.NoError(t, err)
	_, err = svc.Escalate(ctx, CaseCreateInput{Messages: []domain.CaseMessage{userTurn("escalated one")}})
	require.NoError(t, err)

	all, err := svc.ExportAll(ctx, "all")
	require.NoError(t, err)
	allRecords, err := csv.NewReader(strings.NewReader(string(all))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, allRecords, 3, "header plus both cases")

	escalatedOnly, err := svc.ExportAll(ctx, "escalated")
	require.NoError(t, err)
	escalatedRecords, err := csv.NewReader(strings.NewReader(string(escalatedOnly))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, escalatedRecords, 2, "header plus the escalated case")

	_, err = svc.ExportAll(ctx, "archived")
	require.Error(t, err)
}
