package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/api/dto"
	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/service"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// SubmissionsHandler manages citizen-facing request endpoints.
type SubmissionsHandler struct {
	service *service.SubmissionService
}

// NewSubmissionsHandler constructs handler.
func NewSubmissionsHandler(submissionService *service.SubmissionService) *SubmissionsHandler {
	return &SubmissionsHandler{service: submissionService}
}

// Catalog GET /api/services. Public; the request form builds its
// options from this.
func (h *SubmissionsHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": domain.ServiceTypes()})
}

// Create POST /api/submissions.
func (h *SubmissionsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	submission, err := h.service.Create(c.UserContext(), principal.User, service.SubmissionCreateInput{
		ServiceType: req.ServiceType,
		Description: req.Description,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// List GET /api/submissions.
func (h *SubmissionsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	statuses := parseStatusQuery(c)
	limit, offset := parsePageQuery(c)

	submissions, err := h.service.ListForUser(c.UserContext(), principal.User.ID, statuses, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionResponses(submissions)})
}

// Get GET /api/submissions/:id.
func (h *SubmissionsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	submission, history, err := h.service.GetForUser(c.UserContext(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionDetailResponse(submission, history)})
}

func parseStatusQuery(c *fiber.Ctx) []domain.SubmissionStatus {
	statusStr := c.Query("status")
	if statusStr == "" {
		return nil
	}
	var statuses []domain.SubmissionStatus
	for _, part := range strings.Split(statusStr, ",") {
		statuses = append(statuses, domain.SubmissionStatus(strings.TrimSpace(part)))
	}
	return statuses
}

func parsePageQuery(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 50)
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func submissionResponses(submissions []domain.Submission) []dto.SubmissionResponse {
	items := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, dto.NewSubmissionResponse(&submissions[i]))
	}
	return items
}
