package domain

import "time"

// NewsItem is an announcement published by the office. No lifecycle
// beyond create/edit/delete.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
