package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/api/dto"
	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/service"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// AdminSubmissionsHandler covers the office-side lifecycle endpoints.
type AdminSubmissionsHandler struct {
	service *service.SubmissionService
}

// NewAdminSubmissionsHandler constructs handler.
func NewAdminSubmissionsHandler(submissionService *service.SubmissionService) *AdminSubmissionsHandler {
	return &AdminSubmissionsHandler{service: submissionService}
}

// Inbox GET /api/admin/inbox. Defaults to actionable statuses.
func (h *AdminSubmissionsHandler) Inbox(c *fiber.Ctx) error {
	statuses := parseStatusQuery(c)
	limit, offset := parsePageQuery(c)

	submissions, err := h.service.ListInbox(c.UserContext(), statuses, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionResponses(submissions)})
}

// List GET /api/admin/submissions.
func (h *AdminSubmissionsHandler) List(c *fiber.Ctx) error {
	statuses := parseStatusQuery(c)
	limit, offset := parsePageQuery(c)

	submissions, err := h.service.ListAll(c.UserContext(), statuses, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionResponses(submissions)})
}

// Get GET /api/admin/submissions/:id.
func (h *AdminSubmissionsHandler) Get(c *fiber.Ctx) error {
	submission, history, err := h.service.GetForAdmin(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionDetailResponse(submission, history)})
}

// Process POST /api/admin/submissions/:id/process.
func (h *AdminSubmissionsHandler) Process(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	submission, err := h.service.Process(c.UserContext(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// Approve POST /api/admin/submissions/:id/approve.
func (h *AdminSubmissionsHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ApproveSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	submission, err := h.service.Approve(c.UserContext(), principal.User, c.Params("id"), req.DocumentURL)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// Reject POST /api/admin/submissions/:id/reject.
func (h *AdminSubmissionsHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	submission, err := h.service.Reject(c.UserContext(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// Dashboard GET /api/admin/dashboard.
func (h *AdminSubmissionsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
