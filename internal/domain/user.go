package domain

import "time"

// Role enumerates access levels for portal accounts.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the domain model for a registered citizen or office admin.
// PasswordHash is never serialized into API responses or snapshots
// handed to clients; it only lives in the roster itself.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NIK          string    `json:"nik"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields. Role and NIK are
// immutable after registration.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// Apply merges non-nil fields into the user.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}
