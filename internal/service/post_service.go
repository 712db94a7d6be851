package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/postdeck/internal/lifecycle"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/projection"
	"github.com/maheshrc27/postdeck/internal/store"
	"github.com/maheshrc27/postdeck/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Accepted schedule time formats: RFC 3339 from API clients, the short form
// from the dashboard's datetime-local inputs.
var scheduleTimeFormats = []string{time.RFC3339, "2006-01-02T15:04"}

type PostService interface {
	List(ctx context.Context, ownerID string, f projection.Filters) ([]*models.Post, error)
	PostInfo(ctx context.Context, ownerID, postID string) (*models.Post, error)
	Create(ctx context.Context, ownerID string, pc *transfer.PostCreation) (*models.Post, error)
	Update(ctx context.Context, ownerID, postID string, pu *transfer.PostUpdate) (*models.Post, error)
	Remove(ctx context.Context, ownerID, postID string) error
	Schedule(ctx context.Context, ownerID string) (map[string][]*models.Post, error)
	Upcoming(ctx context.Context, ownerID string) ([]*models.Post, error)
}

type postService struct {
	posts store.PostStore
}

func NewPostService(posts store.PostStore) PostService {
	return &postService{posts: posts}
}

func (s *postService) List(ctx context.Context, ownerID string, f projection.Filters) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return projection.Filter(posts, f), nil
}

func (s *postService) PostInfo(ctx context.Context, ownerID, postID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, ownerID, postID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, ownerID string, pc *transfer.PostCreation) (*models.Post, error) {
	if pc == nil {
		return nil, lifecycle.ErrEmptyContent
	}

	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	now := time.Now()
	post := &models.Post{
		Content:   pc.Content,
		ImageURL:  pc.ImageURL,
		Platform:  pc.Platform,
		Status:    status,
		Stats:     &models.PostStats{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if status == models.PostStatusScheduled {
		scheduledAt, err := parseScheduleTime(pc.ScheduledAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, lifecycle.ErrMissingSchedule
		}
		post.ScheduledAt = &scheduledAt
	}

	if err := lifecycle.Validate(post); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating post id: %w", err)
	}
	post.ID = id

	if err := s.posts.Insert(ctx, ownerID, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return post, nil
}

func (s *postService) Update(ctx context.Context, ownerID, postID string, pu *transfer.PostUpdate) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, ownerID, postID)
	if err != nil {
		return nil, err
	}

	if pu == nil {
		return post, nil
	}

	if pu.Content != nil {
		post.Content = *pu.Content
	}
	if pu.ImageURL != nil {
		post.ImageURL = *pu.ImageURL
	}
	if pu.Platform != nil {
		post.Platform = *pu.Platform
	}
	if pu.Status != nil {
		post.Status = *pu.Status
	}
	if pu.Stats != nil {
		stats := *pu.Stats
		post.Stats = &stats
	}
	if pu.ScheduledAt != nil {
		scheduledAt, err := parseScheduleTime(*pu.ScheduledAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, lifecycle.ErrMissingSchedule
		}
		post.ScheduledAt = &scheduledAt
	}

	// Leaving the scheduled state drops the schedule time, otherwise the
	// calendar keeps showing an entry that will never apply.
	if post.Status != models.PostStatusScheduled {
		post.ScheduledAt = nil
	}

	if err := lifecycle.Validate(post); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	post.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, ownerID, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Remove(ctx context.Context, ownerID, postID string) error {
	return s.posts.Delete(ctx, ownerID, postID)
}

// Schedule groups the owner's scheduled posts by calendar day for the
// calendar view.
func (s *postService) Schedule(ctx context.Context, ownerID string) (map[string][]*models.Post, error) {
	posts, err := s.posts.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return projection.GroupByScheduledDay(posts), nil
}

// Upcoming returns the owner's scheduled posts in ascending schedule order
// for the agenda view.
func (s *postService) Upcoming(ctx context.Context, ownerID string) ([]*models.Post, error) {
	posts, err := s.posts.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	scheduled := projection.Filter(posts, projection.Filters{Status: models.PostStatusScheduled})
	return projection.SortByScheduledAt(scheduled), nil
}

func parseScheduleTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("scheduled time is empty")
	}
	var err error
	for _, format := range scheduleTimeFormats {
		var t time.Time
		if t, err = time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid scheduled time format: %w", err)
}
