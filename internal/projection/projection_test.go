package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postdeck/internal/models"
)

func at(day string, hour int) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	t = t.Add(time.Duration(hour) * time.Hour)
	return &t
}

func fixture() []*models.Post {
	return []*models.Post{
		{ID: "a", Content: "Launch day announcement", Platform: models.PlatformFacebook, Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-02", 9)},
		{ID: "b", Content: "Behind the scenes", Platform: models.PlatformInstagram, Status: models.PostStatusPublished, Stats: &models.PostStats{Likes: 1, Comments: 2, Shares: 3}},
		{ID: "c", Content: "Draft notes for later", Platform: models.PlatformFacebook, Status: models.PostStatusDraft},
		{ID: "d", Content: "Evening LAUNCH recap", Platform: models.PlatformInstagram, Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-02", 18)},
		{ID: "e", Content: "Next week teaser", Platform: models.PlatformFacebook, Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-05", 12)},
	}
}

func ids(posts []*models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFilter_NoPredicates(t *testing.T) {
	posts := fixture()
	assert.Equal(t, ids(posts), ids(Filter(posts, Filters{})))
	assert.Equal(t, ids(posts), ids(Filter(posts, Filters{Status: All, Platform: All})))
}

func TestFilter_ByStatus(t *testing.T) {
	got := Filter(fixture(), Filters{Status: models.PostStatusScheduled})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, models.PostStatusScheduled, p.Status)
	}
}

func TestFilter_ByPlatform(t *testing.T) {
	got := Filter(fixture(), Filters{Platform: models.PlatformInstagram})
	assert.Equal(t, []string{"b", "d"}, ids(got))
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	got := Filter(fixture(), Filters{Search: "launch"})
	assert.Equal(t, []string{"a", "d"}, ids(got))
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	got := Filter(fixture(), Filters{Status: models.PostStatusScheduled, Platform: models.PlatformFacebook, Search: "launch"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilter_NeverGrows(t *testing.T) {
	posts := fixture()
	assert.LessOrEqual(t, len(Filter(posts, Filters{Status: models.PostStatusScheduled})), len(posts))
}

func TestGroupByScheduledDay(t *testing.T) {
	grouped := GroupByScheduledDay(fixture())

	require.Len(t, grouped, 2)
	assert.Equal(t, []string{"a", "d"}, ids(grouped["2026-09-02"]))
	assert.Equal(t, []string{"e"}, ids(grouped["2026-09-05"]))

	for key, bucket := range grouped {
		assert.NotEmpty(t, bucket, "bucket %s", key)
		for _, p := range bucket {
			assert.Equal(t, models.PostStatusScheduled, p.Status)
		}
	}
}

func TestGroupByScheduledDay_SkipsScheduledWithoutTime(t *testing.T) {
	posts := []*models.Post{
		{ID: "x", Status: models.PostStatusScheduled}, // no time, defensive
		{ID: "y", Status: models.PostStatusDraft},
	}
	assert.Empty(t, GroupByScheduledDay(posts))
}

func TestSortByScheduledAt(t *testing.T) {
	posts := []*models.Post{
		{ID: "late", Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-05", 12)},
		{ID: "early", Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-02", 9)},
		{ID: "mid", Status: models.PostStatusScheduled, ScheduledAt: at("2026-09-02", 18)},
	}

	got := SortByScheduledAt(posts)
	assert.Equal(t, []string{"early", "mid", "late"}, ids(got))
	// input untouched
	assert.Equal(t, []string{"late", "early", "mid"}, ids(posts))
}

func TestAggregateEngagement_Empty(t *testing.T) {
	assert.Equal(t, models.PostStats{}, AggregateEngagement(nil))
}

func TestAggregateEngagement_Sums(t *testing.T) {
	posts := []*models.Post{
		{ID: "a", Stats: &models.PostStats{Likes: 1, Comments: 2, Shares: 3}},
		{ID: "b", Stats: &models.PostStats{Likes: 4, Comments: 5, Shares: 6}},
		{ID: "c"}, // absent stats count as zero
	}
	assert.Equal(t, models.PostStats{Likes: 5, Comments: 7, Shares: 9}, AggregateEngagement(posts))
}
