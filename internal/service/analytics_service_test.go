package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postdeck/internal/analytics"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

func TestAnalyticsSummary_SumsOwnerStats(t *testing.T) {
	memory := store.NewMemory()
	posts := NewPostService(memory)
	s := NewAnalyticsService(analytics.NewStaticSource(), memory)
	ctx := context.Background()

	// the demo partition carries one published post with 45/12/5
	summary, err := s.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.PostStats{Likes: 45, Comments: 12, Shares: 5}, summary)

	_, err = posts.Create(ctx, "alice", &transfer.PostCreation{
		Content:  "fresh draft, zero stats",
		Platform: models.PlatformFacebook,
	})
	require.NoError(t, err)

	summary, err = s.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.PostStats{Likes: 45, Comments: 12, Shares: 5}, summary)
}

func TestAnalyticsSeries_Length(t *testing.T) {
	s := NewAnalyticsService(analytics.NewStaticSource(), store.NewMemory())

	series, err := s.Series(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Len(t, series, 7)
}
