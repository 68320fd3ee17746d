package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/api/dto"
	"github.com/KoshiiX/Layanan-1/internal/service"
)

// UsersHandler serves the admin citizen directory.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// List GET /api/admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListCitizens(c.UserContext())
	if err != nil {
		return err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}
