package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/events"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// NewsService manages office announcements.
type NewsService struct {
	news       repository.NewsRepository
	dispatcher events.Dispatcher
}

// NewNewsService constructs the service.
func NewNewsService(news repository.NewsRepository, dispatcher events.Dispatcher) *NewsService {
	return &NewsService{news: news, dispatcher: dispatcher}
}

// NewsInput carries the announcement form fields.
type NewsInput struct {
	Title       string
	Image       string
	Date        string
	Description string
}

func (in NewsInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return apperrors.NewValidationError("title and description required", nil)
	}
	if in.Date != "" {
		if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
			return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
		}
	}
	return nil
}

// List returns announcements newest first.
func (s *NewsService) List(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.news.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// Get fetches a single announcement.
func (s *NewsService) Get(ctx context.Context, id string) (*domain.NewsItem, error) {
	item, err := s.news.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NewNotFound("news item", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// Create publishes a new announcement. A missing date defaults to today.
func (s *NewsService) Create(ctx context.Context, adminID string, input NewsInput) (*domain.NewsItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	date := input.Date
	if date == "" {
		date = domain.FormatDate(time.Now())
	}
	item := &domain.NewsItem{
		Title:       strings.TrimSpace(input.Title),
		Image:       strings.TrimSpace(input.Image),
		Date:        date,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.news.Create(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventNewsPublished,
		ActorID: adminID,
		Payload: events.NewsPublishedPayload{NewsID: item.ID, Title: item.Title},
	})
	return item, nil
}

// Update edits an announcement in place.
func (s *NewsService) Update(ctx context.Context, id string, input NewsInput) (*domain.NewsItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Title = strings.TrimSpace(input.Title)
	item.Image = strings.TrimSpace(input.Image)
	if input.Date != "" {
		item.Date = input.Date
	}
	item.Description = strings.TrimSpace(input.Description)
	if err := s.news.Update(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// Delete removes exactly the given announcement.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.news.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NewNotFound("news item", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *NewsService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
