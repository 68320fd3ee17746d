package dto

import "github.com/KoshiiX/Layanan-1/internal/domain"

// RegisterRequest payload for new citizen accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	NIK      string `json:"nik"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest payload. Identifier matches NIK or email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UpdateProfileRequest carries partial profile fields; absent fields
// stay unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse is the account shape returned to clients. The secret
// never leaves the roster.
type UserResponse struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	NIK     string      `json:"nik"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Role    domain.Role `json:"role"`
}

// NewUserResponse strips the credential hash from a roster entry.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		NIK:     user.NIK,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
		Role:    user.Role,
	}
}
