package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postdeck/internal/lifecycle"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/projection"
	"github.com/maheshrc27/postdeck/internal/store"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

const owner = "alice"

func newService() PostService {
	return NewPostService(store.NewMemory())
}

func strptr(s string) *string {
	return &s
}

func TestCreate_Draft(t *testing.T) {
	s := newService()

	post, err := s.Create(context.Background(), owner, &transfer.PostCreation{
		Content:  "hello",
		Platform: models.PlatformFacebook,
		Status:   models.PostStatusDraft,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Nil(t, post.ScheduledAt)
	require.NotNil(t, post.Stats)
	assert.Equal(t, models.PostStats{}, *post.Stats)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestCreate_DefaultsToDraft(t *testing.T) {
	s := newService()

	post, err := s.Create(context.Background(), owner, &transfer.PostCreation{
		Content:  "no status given",
		Platform: models.PlatformInstagram,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
}

func TestCreate_ValidationFailures(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Create(ctx, owner, &transfer.PostCreation{Content: "  ", Platform: models.PlatformFacebook})
	assert.ErrorIs(t, err, lifecycle.ErrEmptyContent)

	_, err = s.Create(ctx, owner, &transfer.PostCreation{Content: "x", Platform: "myspace"})
	assert.ErrorIs(t, err, lifecycle.ErrUnknownPlatform)

	_, err = s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "x",
		Platform: models.PlatformFacebook,
		Status:   models.PostStatusScheduled,
	})
	assert.ErrorIs(t, err, lifecycle.ErrMissingSchedule)

	_, err = s.Create(ctx, owner, &transfer.PostCreation{
		Content:     "x",
		Platform:    models.PlatformFacebook,
		Status:      models.PostStatusScheduled,
		ScheduledAt: "not-a-time",
	})
	assert.ErrorIs(t, err, lifecycle.ErrMissingSchedule)
}

func TestCreate_FailedValidationDoesNotCommit(t *testing.T) {
	s := newService()
	ctx := context.Background()

	before, err := s.List(ctx, owner, projection.Filters{})
	require.NoError(t, err)

	_, err = s.Create(ctx, owner, &transfer.PostCreation{Content: "", Platform: models.PlatformFacebook})
	require.Error(t, err)

	after, err := s.List(ctx, owner, projection.Filters{})
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreate_ScheduledAcceptsBothTimeFormats(t *testing.T) {
	s := newService()
	ctx := context.Background()

	for _, value := range []string{"2026-09-10T09:30:00Z", "2026-09-10T09:30"} {
		post, err := s.Create(ctx, owner, &transfer.PostCreation{
			Content:     "scheduled " + value,
			Platform:    models.PlatformFacebook,
			Status:      models.PostStatusScheduled,
			ScheduledAt: value,
		})
		require.NoError(t, err, value)
		require.NotNil(t, post.ScheduledAt)
	}
}

func TestUpdate_ScheduleThenGroup(t *testing.T) {
	s := newService()
	ctx := context.Background()

	post, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "hello",
		Platform: models.PlatformFacebook,
		Status:   models.PostStatusDraft,
	})
	require.NoError(t, err)

	tomorrow := time.Now().Add(24 * time.Hour)
	updated, err := s.Update(ctx, owner, post.ID, &transfer.PostUpdate{
		Status:      strptr(models.PostStatusScheduled),
		ScheduledAt: strptr(tomorrow.Format(time.RFC3339)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ScheduledAt)

	grouped, err := s.Schedule(ctx, owner)
	require.NoError(t, err)

	key := tomorrow.Local().Format(projection.DayKeyFormat)
	found := false
	for _, p := range grouped[key] {
		if p.ID == post.ID {
			found = true
		}
	}
	assert.True(t, found, "updated post should land under %s", key)
}

func TestUpdate_PreservesIdentityAndRefreshesUpdatedAt(t *testing.T) {
	s := newService()
	ctx := context.Background()

	post, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "original",
		Platform: models.PlatformFacebook,
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, owner, post.ID, &transfer.PostUpdate{Content: strptr("edited")})
	require.NoError(t, err)

	assert.Equal(t, post.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(post.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdate_LeavingScheduledClearsScheduleTime(t *testing.T) {
	s := newService()
	ctx := context.Background()

	post, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:     "will be published",
		Platform:    models.PlatformInstagram,
		Status:      models.PostStatusScheduled,
		ScheduledAt: time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.NotNil(t, post.ScheduledAt)

	updated, err := s.Update(ctx, owner, post.ID, &transfer.PostUpdate{
		Status: strptr(models.PostStatusPublished),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ScheduledAt, "schedule time must not go stale")

	grouped, err := s.Schedule(ctx, owner)
	require.NoError(t, err)
	for key, bucket := range grouped {
		for _, p := range bucket {
			assert.NotEqual(t, post.ID, p.ID, "published post lingering under %s", key)
		}
	}
}

func TestUpdate_Missing(t *testing.T) {
	s := newService()

	_, err := s.Update(context.Background(), owner, "no-such-id", &transfer.PostUpdate{
		Content: strptr("x"),
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdate_InvalidMergeRejected(t *testing.T) {
	s := newService()
	ctx := context.Background()

	post, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "fine",
		Platform: models.PlatformFacebook,
	})
	require.NoError(t, err)

	_, err = s.Update(ctx, owner, post.ID, &transfer.PostUpdate{Content: strptr("   ")})
	assert.ErrorIs(t, err, lifecycle.ErrEmptyContent)

	// the rejected merge must not have committed
	got, err := s.PostInfo(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "fine", got.Content)
}

func TestRemove_ThenPostInfo(t *testing.T) {
	s := newService()
	ctx := context.Background()

	post, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "short lived",
		Platform: models.PlatformFacebook,
	})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, owner, post.ID))

	_, err = s.PostInfo(ctx, owner, post.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Create(ctx, owner, &transfer.PostCreation{
		Content:  "findme unique marker",
		Platform: models.PlatformInstagram,
	})
	require.NoError(t, err)

	got, err := s.List(ctx, owner, projection.Filters{Search: "FINDME"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.PlatformInstagram, got[0].Platform)

	scheduled, err := s.List(ctx, owner, projection.Filters{Status: models.PostStatusScheduled})
	require.NoError(t, err)
	for _, p := range scheduled {
		assert.Equal(t, models.PostStatusScheduled, p.Status)
	}
}

func TestUpcoming_SortedAscending(t *testing.T) {
	s := newService()
	ctx := context.Background()

	base := time.Now().Add(48 * time.Hour)
	for i, offset := range []time.Duration{30 * time.Hour, 2 * time.Hour, 10 * time.Hour} {
		_, err := s.Create(ctx, owner, &transfer.PostCreation{
			Content:     "scheduled post",
			Platform:    models.PlatformFacebook,
			Status:      models.PostStatusScheduled,
			ScheduledAt: base.Add(offset).Format(time.RFC3339),
		})
		require.NoError(t, err, i)
	}

	upcoming, err := s.Upcoming(ctx, owner)
	require.NoError(t, err)
	require.NotEmpty(t, upcoming)

	for i := 1; i < len(upcoming); i++ {
		require.NotNil(t, upcoming[i].ScheduledAt)
		assert.False(t, upcoming[i].ScheduledAt.Before(*upcoming[i-1].ScheduledAt))
	}
	for _, p := range upcoming {
		assert.Equal(t, models.PostStatusScheduled, p.Status)
	}
}

func TestIDsUniqueWithinPartition(t *testing.T) {
	s := newService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		post, err := s.Create(ctx, owner, &transfer.PostCreation{
			Content:  "bulk",
			Platform: models.PlatformFacebook,
		})
		require.NoError(t, err)
		assert.False(t, seen[post.ID], "duplicate id %s", post.ID)
		seen[post.ID] = true
	}
}
