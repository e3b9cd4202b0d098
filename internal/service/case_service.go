package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/events"
	"github.com/spec-kit/support-chat-service/internal/repository"
	"github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// DefaultCaseSummary is used when a case is opened without an explicit summary.
const DefaultCaseSummary = "Customer enquiry requiring human assistance"

// CaseService coordinates support case workflows.
type CaseService struct {
	cases      repository.CaseRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewCaseService constructs the service.
func NewCaseService(cases repository.CaseRepository, dispatcher events.Dispatcher) *CaseService {
	return &CaseService{
		cases:      cases,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// CaseCreateInput describes case creation payload.
type CaseCreateInput struct {
	Messages     []domain.CaseMessage
	Summary      string
	ContactEmail *string
	ContactPhone *string
}

// Create opens a case in the open state.
func (s *CaseService) Create(ctx context.Context, input CaseCreateInput) (*domain.Case, error) {
	c, err := s.buildCase(input, domain.CaseStatusOpen)
	if err != nil {
		return nil, err
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventCaseCreated,
		CaseID: c.ID,
		Payload: events.CaseCreatedPayload{
			Status:       c.Status,
			Summary:      c.Summary,
			MessageCount: len(c.Messages),
		},
	})
	return c, nil
}

// Escalate opens a case already marked escalated, with escalated_at set to
// creation time. This is the path taken when a conversation trips the
// escalation policy.
func (s *CaseService) Escalate(ctx context.Context, input CaseCreateInput) (*domain.Case, error) {
	c, err := s.buildCase(input, domain.CaseStatusEscalated)
	if err != nil {
		return nil, err
	}
	escalatedAt := c.CreatedAt
	c.EscalatedAt = &escalatedAt

	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventCaseEscalated,
		CaseID: c.ID,
		Payload: events.CaseEscalatedPayload{
			Summary:      c.Summary,
			ContactEmail: c.ContactEmail,
			ContactPhone: c.ContactPhone,
		},
	})
	return c, nil
}

// Get fetches one case with its conversation snapshot.
func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errorutil.NewValidationError("case id is required", nil)
	}
	return s.cases.GetByID(ctx, id)
}

// List returns all cases, newest first.
func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.cases.List(ctx)
}

// UpdateStatus transitions a case and returns its fresh state.
func (s *CaseService) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) (*domain.Case, error) {
	if !domain.ValidCaseStatus(status) {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("invalid status %q", status),
			map[string]interface{}{"allowed": []domain.CaseStatus{domain.CaseStatusOpen, domain.CaseStatusEscalated, domain.CaseStatusResolved}},
		)
	}

	before, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.cases.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if before.Status != updated.Status {
		s.publishEvent(ctx, events.Event{
			Type:   events.EventCaseStatusChanged,
			CaseID: updated.ID,
			Payload: events.CaseStatusChangedPayload{
				OldStatus: before.Status,
				NewStatus: updated.Status,
			},
		})
	}
	return updated, nil
}

// ExportCase renders one case as CSV: a metadata block, a blank line, then
// the conversation transcript.
func (s *CaseService) ExportCase(ctx context.Context, id string) ([]byte, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Case ID", c.ID},
		{"Status", string(c.Status)},
		{"Summary", c.Summary},
		{"Contact Email", strValue(c.ContactEmail)},
		{"Contact Phone", strValue(c.ContactPhone)},
		{"Created At", c.CreatedAt.UTC().Format(time.RFC3339)},
		{"Escalated At", timeValue(c.EscalatedAt)},
		{},
		{"Message #", "Sender", "Text", "Timestamp"},
	}
	for i, msg := range c.Messages {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			string(msg.Sender),
			msg.Text,
			msg.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportAll renders every case (optionally filtered by status) as one CSV
// row per case. An empty filter or "all" means no filtering.
func (s *CaseService) ExportAll(ctx context.Context, statusFilter string) ([]byte, error) {
	var status *domain.CaseStatus
	if statusFilter != "" && statusFilter != "all" {
		st := domain.CaseStatus(statusFilter)
		if !domain.ValidCaseStatus(st) {
			return nil, errorutil.NewValidationError(fmt.Sprintf("invalid status %q", statusFilter), nil)
		}
		status = &st
	}

	summaries, err := s.cases.ListSummaries(ctx, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Case ID", "Created At", "Status", "Summary", "Contact Email", "Contact Phone", "Escalated At", "Message Count"},
	}
	for _, row := range summaries {
		records = append(records, []string{
			row.ID,
			row.CreatedAt.UTC().Format(time.RFC3339),
			string(row.Status),
			row.Summary,
			strValue(row.ContactEmail),
			strValue(row.ContactPhone),
			timeValue(row.EscalatedAt),
			strconv.Itoa(row.MessageCount),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *CaseService) buildCase(input CaseCreateInput, status domain.CaseStatus) (*domain.Case, error) {
	if len(input.Messages) == 0 {
		return nil, errorutil.NewValidationError("at least one message is required", nil)
	}
	for _, msg := range input.Messages {
		if !domain.ValidSender(msg.Sender) {
			return nil, errorutil.NewValidationError(fmt.Sprintf("invalid sender %q", msg.Sender), nil)
		}
	}

	now := s.now()
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = DefaultCaseSummary
	}

	messages := make([]domain.CaseMessage, len(input.Messages))
	copy(messages, input.Messages)
	for i := range messages {
		if messages[i].Timestamp.IsZero() {
			messages[i].Timestamp = now
		}
	}

	return &domain.Case{
		ID:           generateCaseID(now),
		CreatedAt:    now,
		Status:       status,
		Summary:      summary,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Messages:     messages,
	}, nil
}

func (s *CaseService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}

// generateCaseID mirrors the established case identifier shape so existing
// case references stay valid: CASE-<unix millis>-<9 uppercase chars>.
func generateCaseID(now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("CASE-%d-%s", now.UnixMilli(), random)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
