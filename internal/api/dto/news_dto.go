package dto

import "github.com/KoshiiX/Layanan-1/internal/domain"

// NewsRequest payload for creating or editing an announcement.
type NewsRequest struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// NewsResponse is the announcement shape returned to clients.
type NewsResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// NewNewsResponse maps the domain model.
func NewNewsResponse(item *domain.NewsItem) NewsResponse {
	return NewsResponse{
		ID:          item.ID,
		Title:       item.Title,
		Image:       item.Image,
		Date:        item.Date,
		Description: item.Description,
	}
}
