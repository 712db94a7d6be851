package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/postdeck/internal/analytics"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/projection"
	"github.com/maheshrc27/postdeck/internal/store"
)

type AnalyticsService interface {
	Series(ctx context.Context, ownerID string, days int) ([]models.AnalyticsDataPoint, error)
	Summary(ctx context.Context, ownerID string) (models.PostStats, error)
}

type analyticsService struct {
	source analytics.Source
	posts  store.PostStore
}

func NewAnalyticsService(source analytics.Source, posts store.PostStore) AnalyticsService {
	return &analyticsService{source: source, posts: posts}
}

func (s *analyticsService) Series(ctx context.Context, ownerID string, days int) ([]models.AnalyticsDataPoint, error) {
	series, err := s.source.Series(ctx, ownerID, days)
	if err != nil {
		return nil, store.Transient("fetching analytics series", err)
	}
	return series, nil
}

// Summary totals the engagement stats across the owner's posts, the figure
// shown on the dashboard header.
func (s *analyticsService) Summary(ctx context.Context, ownerID string) (models.PostStats, error) {
	posts, err := s.posts.List(ctx, ownerID)
	if err != nil {
		return models.PostStats{}, fmt.Errorf("listing posts: %w", err)
	}
	return projection.AggregateEngagement(posts), nil
}
