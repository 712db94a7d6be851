// Package projection derives read-only views from a snapshot of posts. Every
// function is deterministic for a given input and never mutates the slice it
// is handed.
package projection

import (
	"sort"
	"strings"

	"github.com/maheshrc27/postdeck/internal/models"
)

// DayKeyFormat is the calendar-day grouping key, local time.
const DayKeyFormat = "2006-01-02"

// All disables a status or platform predicate.
const All = "all"

type Filters struct {
	Status   string
	Platform string
	Search   string
}

// Filter applies the provided predicates, ANDed. Empty or "all" status and
// platform match everything; Search is a case-insensitive substring match
// against the content body.
func Filter(posts []*models.Post, f Filters) []*models.Post {
	search := strings.ToLower(f.Search)

	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if f.Status != "" && f.Status != All && p.Status != f.Status {
			continue
		}
		if f.Platform != "" && f.Platform != All && p.Platform != f.Platform {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Content), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GroupByScheduledDay buckets scheduled posts by the calendar day of their
// scheduled time. Drafts, published posts and scheduled posts without a time
// are excluded, so every key maps to a non-empty bucket.
func GroupByScheduledDay(posts []*models.Post) map[string][]*models.Post {
	grouped := make(map[string][]*models.Post)
	for _, p := range posts {
		if p.Status != models.PostStatusScheduled || p.ScheduledAt == nil {
			continue
		}
		key := p.ScheduledAt.Local().Format(DayKeyFormat)
		grouped[key] = append(grouped[key], p)
	}
	return grouped
}

// SortByScheduledAt returns a new slice ordered by ascending scheduled time.
// Callers must pre-filter to scheduled posts: entries without a scheduled
// time sort to the front in input order rather than crashing, but their
// relative order is not part of the contract.
func SortByScheduledAt(posts []*models.Post) []*models.Post {
	out := make([]*models.Post, len(posts))
	copy(out, posts)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ScheduledAt == nil || out[j].ScheduledAt == nil {
			return out[j].ScheduledAt != nil
		}
		return out[i].ScheduledAt.Before(*out[j].ScheduledAt)
	})
	return out
}

// AggregateEngagement sums stats across posts, treating absent stats as
// zero. An empty snapshot yields all-zero totals.
func AggregateEngagement(posts []*models.Post) models.PostStats {
	var total models.PostStats
	for _, p := range posts {
		if p.Stats == nil {
			continue
		}
		total.Likes += p.Stats.Likes
		total.Comments += p.Stats.Comments
		total.Shares += p.Stats.Shares
	}
	return total
}
