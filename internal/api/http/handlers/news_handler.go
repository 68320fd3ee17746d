package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/api/dto"
	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/service"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// NewsHandler serves announcements: public reads, admin writes.
type NewsHandler struct {
	service *service.NewsService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{service: newsService}
}

// List GET /api/news.
func (h *NewsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	responses := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.NewNewsResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Get GET /api/news/:id.
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNewsResponse(item)})
}

// Create POST /api/admin/news.
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.Create(c.UserContext(), principal.User.ID, service.NewsInput{
		Title:       req.Title,
		Image:       req.Image,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewNewsResponse(item)})
}

// Update PUT /api/admin/news/:id.
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.Update(c.UserContext(), c.Params("id"), service.NewsInput{
		Title:       req.Title,
		Image:       req.Image,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNewsResponse(item)})
}

// Delete DELETE /api/admin/news/:id.
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "news item deleted"})
}
