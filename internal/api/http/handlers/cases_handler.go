package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-chat-service/internal/api/dto"
	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/service"
	apperrors "github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

// CasesHandler manages support case endpoints.
type CasesHandler struct {
	cases *service.CaseService
	qr    *service.QRService
}

// NewCasesHandler constructs handler.
func NewCasesHandler(caseService *service.CaseService, qrService *service.QRService) *CasesHandler {
	return &CasesHandler{cases: caseService, qr: qrService}
}

// Create POST /api/cases.
func (h *CasesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	created, err := h.cases.Create(c.UserContext(), caseInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"caseId": created.ID,
		"case":   dto.NewCaseResponse(created),
	})
}

// Escalate POST /api/cases/escalate.
func (h *CasesHandler) Escalate(c *fiber.Ctx) error {
	var req dto.EscalateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	input := caseInput(req.CreateCaseRequest)
	input.Summary = req.EffectiveSummary()
	created, err := h.cases.Escalate(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"caseId": created.ID,
		"case":   dto.NewCaseResponse(created),
	})
}

// List GET /api/cases.
func (h *CasesHandler) List(c *fiber.Ctx) error {
	cases, err := h.cases.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		items = append(items, dto.NewCaseResponse(&cases[i]))
	}
	return c.JSON(fiber.Map{"cases": items})
}

// Get GET /api/cases/:id.
func (h *CasesHandler) Get(c *fiber.Ctx) error {
	found, err := h.cases.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"case": dto.NewCaseResponse(found)})
}

// UpdateStatus PATCH /api/cases/:id/status.
func (h *CasesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateCaseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	updated, err := h.cases.UpdateStatus(c.UserContext(), c.Params("id"), domain.CaseStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"case": dto.NewCaseResponse(updated)})
}

// Export GET /api/cases/:id/export.
func (h *CasesHandler) Export(c *fiber.Ctx) error {
	caseID := c.Params("id")
	csvBytes, err := h.cases.ExportCase(c.UserContext(), caseID)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="case-%s.csv"`, caseID))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(csvBytes)
}

// ExportAll GET /api/cases/export.
func (h *CasesHandler) ExportAll(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	if format != "csv" {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported format %q", format), nil)
	}

	csvBytes, err := h.cases.ExportAll(c.UserContext(), c.Query("status"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="cases-%d.csv"`, time.Now().UnixMilli()))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(csvBytes)
}

// QRCode GET /api/cases/qrcode.
func (h *CasesHandler) QRCode(c *fiber.Ctx) error {
	caseID := c.Query("caseId")
	if caseID == "" {
		return apperrors.NewValidationError("caseId query parameter is required", nil)
	}

	// Confirm the case exists before handing out a link to it.
	if _, err := h.cases.Get(c.UserContext(), caseID); err != nil {
		return err
	}

	dataURL, err := h.qr.DataURL(c.UserContext(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(dto.QRCodeResponse{
		CaseID:  caseID,
		CaseURL: h.qr.CaseURL(caseID),
		QRCode:  dataURL,
	})
}

func caseInput(req dto.CreateCaseRequest) service.CaseCreateInput {
	messages := make([]domain.CaseMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		var ts time.Time
		if msg.Timestamp != nil {
			ts = *msg.Timestamp
		}
		messages = append(messages, domain.CaseMessage{
			Sender:    domain.Sender(msg.Sender),
			Text:      msg.Text,
			Timestamp: ts,
		})
	}
	return service.CaseCreateInput{
		Messages:     messages,
		Summary:      req.Summary,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
}
