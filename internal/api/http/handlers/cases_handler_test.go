package handlers_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/service"
)

func TestCasesEscalate_ReasonBecomesSummary(t *testing.T) {
	ts := newTestApp(t, "ok")

	resp := postJSON(t, ts.app, "/api/cases/escalate", fiber.Map{
		"messages": []fiber.Map{{"sender": "user", "text": "I am locked out of my account"}},
		"reason":   "Customer locked out of online banking",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	caseID, _ := body["caseId"].(string)
	require.NotEmpty(t, caseID)

	stored, err := ts.cases.GetByID(context.Background(), caseID)
	require.NoError(t, err)
	assert.Equal(t, "Customer locked out of online banking", stored.Summary)
	assert.Equal(t, domain.CaseStatusEscalated, stored.Status)
}

func TestCasesEscalate_ExplicitSummaryWinsOverReason(t *testing.T) {
	ts := newTestApp(t, "ok")

	resp := postJSON(t, ts.app, "/api/cases/escalate", fiber.Map{
		"messages": []fiber.Map{{"sender": "user", "text": "help"}},
		"summary":  "Explicit summary",
		"reason":   "Reason text",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	stored, err := ts.cases.GetByID(context.Background(), body["caseId"].(string))
	require.NoError(t, err)
	assert.Equal(t, "Explicit summary", stored.Summary)
}

func TestCasesEscalate_DefaultSummaryWithoutReason(t *testing.T) {
	ts := newTestApp(t, "ok")

	resp := postJSON(t, ts.app, "/api/cases/escalate", fiber.Map{
		"messages": []fiber.Map{{"sender": "user", "text": "help"}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	stored, err := ts.cases.GetByID(context.Background(), body["caseId"].(string))
	require.NoError(t, err)
	assert.Equal(t, service.DefaultCaseSummary, stored.Summary)
}
